package domain

import "fmt"

// SeatViolation is a field-addressable bounds failure, in the same shape the
// request validator reports its errors.
type SeatViolation struct {
	Field string
	Issue string
}

// ValidateSeat checks one (row, seat) pick against the hall grid. Both fields
// are checked so a caller gets the full picture in one pass instead of fixing
// the row only to be bounced on the seat.
func ValidateSeat(row, seat int, hall Hall) []SeatViolation {
	var violations []SeatViolation

	if row < 1 || row > hall.Rows {
		violations = append(violations, SeatViolation{
			Field: "row",
			Issue: fmt.Sprintf("must be between 1 and %d", hall.Rows),
		})
	}

	if seat < 1 || seat > hall.SeatsInRow {
		violations = append(violations, SeatViolation{
			Field: "seat",
			Issue: fmt.Sprintf("must be between 1 and %d", hall.SeatsInRow),
		})
	}

	return violations
}

// ValidateSeats validates every pick of a reservation request, prefixing each
// violation with the ticket index so the response stays addressable.
func ValidateSeats(hall Hall, seats []SeatRef) []SeatViolation {
	var violations []SeatViolation

	for i, s := range seats {
		for _, v := range ValidateSeat(s.Row, s.Seat, hall) {
			violations = append(violations, SeatViolation{
				Field: fmt.Sprintf("tickets[%d].%s", i, v.Field),
				Issue: v.Issue,
			})
		}
	}

	return violations
}
