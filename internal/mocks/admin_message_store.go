package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MockAdminMessageStore implements store.AdminMessageStore for testing
type MockAdminMessageStore struct {
	CreateFn func(ctx context.Context, msg *domain.AdminMessage) error
	ListFn   func(ctx context.Context, isActive *bool) ([]domain.AdminMessage, error)
	ToggleFn func(ctx context.Context, id uuid.UUID) (*domain.AdminMessage, error)
}

var _ store.AdminMessageStore = (*MockAdminMessageStore)(nil)

func (m *MockAdminMessageStore) Create(ctx context.Context, msg *domain.AdminMessage) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	return nil
}

func (m *MockAdminMessageStore) List(ctx context.Context, isActive *bool) ([]domain.AdminMessage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, isActive)
	}
	return nil, nil
}

func (m *MockAdminMessageStore) Toggle(ctx context.Context, id uuid.UUID) (*domain.AdminMessage, error) {
	if m.ToggleFn != nil {
		return m.ToggleFn(ctx, id)
	}
	return nil, store.ErrMessageNotFound
}
