package mocks

import (
	"context"

	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

type MockActorRepo struct {
	domain.ActorRepository
	CreateFunc func(ctx context.Context, actor *domain.Actor) error
	GetAllFunc func(ctx context.Context) ([]domain.Actor, error)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	return m.GetAllFunc(ctx)
}
