package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reservation groups the tickets bought by one user in one booking. A
// reservation and its tickets are created together in a single transaction
// and never mutated afterwards.
type Reservation struct {
	ID        int
	Reference string
	UserID    int
	Tickets   []Ticket
	CreatedAt time.Time
}

type Ticket struct {
	ID            int
	Row           int
	Seat          int
	PerformanceID int
}

// NewReservation binds the requested seats to the owning user. The reference
// is the public booking code; the numeric ID stays internal.
func NewReservation(userID, performanceID int, seats []SeatRef) Reservation {
	tickets := make([]Ticket, len(seats))
	for i, s := range seats {
		tickets[i] = Ticket{
			Row:           s.Row,
			Seat:          s.Seat,
			PerformanceID: performanceID,
		}
	}

	return Reservation{
		Reference: uuid.New().String(),
		UserID:    userID,
		Tickets:   tickets,
	}
}

// ReservationSummary is the per-user listing view: each ticket decorated with
// its performance context.
type ReservationSummary struct {
	ID        int
	Reference string
	CreatedAt time.Time
	Tickets   []TicketSummary
}

type TicketSummary struct {
	ID               int
	Row              int
	Seat             int
	PerformanceID    int
	PlayTitle        string
	HallName         string
	HallCapacity     int
	TicketsAvailable int
	ShowTime         time.Time
}

type ReservationRepository interface {
	// Create persists the reservation and all of its tickets atomically.
	// When any requested seat already has a ticket for the same performance,
	// it returns a *SeatTakenError and nothing is persisted.
	Create(ctx context.Context, reservation *Reservation) error
	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]ReservationSummary, *Metadata, error)
}
