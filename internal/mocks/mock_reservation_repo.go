package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepo) GetAllByUserId(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.ReservationSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}
