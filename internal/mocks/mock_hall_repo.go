package mocks

import (
	"context"

	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

type MockHallRepo struct {
	domain.HallRepository
	CreateFunc  func(ctx context.Context, hall *domain.Hall) error
	GetAllFunc  func(ctx context.Context) ([]domain.Hall, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Hall, error)
}

func (m *MockHallRepo) Create(ctx context.Context, hall *domain.Hall) error {
	return m.CreateFunc(ctx, hall)
}

func (m *MockHallRepo) GetAll(ctx context.Context) ([]domain.Hall, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockHallRepo) GetById(ctx context.Context, id int) (*domain.Hall, error) {
	return m.GetByIdFunc(ctx, id)
}
