package domain

import (
	"context"
	"time"
)

type Performance struct {
	ID       int
	PlayID   int
	HallID   int
	ShowTime time.Time
}

// PerformanceSummary is the listing view of a performance. TicketsAvailable
// is computed against committed tickets only, so it can never go below zero
// as long as the ticket uniqueness and bound invariants hold.
type PerformanceSummary struct {
	ID               int
	PlayTitle        string
	HallName         string
	HallCapacity     int
	TicketsAvailable int
	ShowTime         time.Time
}

// PerformanceDetail additionally carries the hall bounds and the committed
// (row, seat) pairs, replacing a graphical seat map.
type PerformanceDetail struct {
	ID               int
	Play             Play
	Hall             Hall
	TicketsAvailable int
	TakenSeats       []SeatRef
	ShowTime         time.Time
}

type SeatRef struct {
	Row  int
	Seat int
}

// PerformanceFilters narrows the performance listing; both filters combine.
type PerformanceFilters struct {
	Date   *time.Time // matches show_time on that calendar day
	PlayID int
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *Performance) error
	GetAll(ctx context.Context, filters PerformanceFilters) ([]PerformanceSummary, error)
	GetById(ctx context.Context, id int) (*PerformanceDetail, error)
	// GetHall returns the hall a performance takes place in, for seat bound
	// checks before a reservation attempt.
	GetHall(ctx context.Context, performanceID int) (*Hall, error)
}
