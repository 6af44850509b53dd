package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrGenreAlreadyExists = errors.New("genre already exists")
)

// SeatTakenError reports a reservation attempt on a seat that already has a
// ticket for the same performance. It carries the first conflicting seat so
// the caller can surface it field by field.
type SeatTakenError struct {
	Row  int
	Seat int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) is already taken for this performance", e.Row, e.Seat)
}
