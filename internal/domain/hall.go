package domain

import "context"

// Hall is a physical venue with a fixed row/seat grid. Rows and SeatsInRow
// are immutable after creation; every seat bound check in the system derives
// from them.
type Hall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h Hall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type HallRepository interface {
	Create(ctx context.Context, hall *Hall) error
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
}
