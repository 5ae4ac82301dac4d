package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MockSwapStore implements store.SwapStore for testing
type MockSwapStore struct {
	CreateFn      func(ctx context.Context, req *domain.SwapRequest) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error)
	UpdateFn      func(ctx context.Context, req *domain.SwapRequest) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	ListForUserFn func(ctx context.Context, userID uuid.UUID, params store.ListSwapsParams) ([]domain.SwapRequest, error)
	ListAllFn     func(ctx context.Context, params store.ListAllSwapsParams) ([]domain.SwapRequest, error)
}

var _ store.SwapStore = (*MockSwapStore)(nil)

func (m *MockSwapStore) Create(ctx context.Context, req *domain.SwapRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return nil
}

func (m *MockSwapStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrSwapNotFound
}

func (m *MockSwapStore) Update(ctx context.Context, req *domain.SwapRequest) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, req)
	}
	return nil
}

func (m *MockSwapStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockSwapStore) ListForUser(ctx context.Context, userID uuid.UUID, params store.ListSwapsParams) ([]domain.SwapRequest, error) {
	if m.ListForUserFn != nil {
		return m.ListForUserFn(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockSwapStore) ListAll(ctx context.Context, params store.ListAllSwapsParams) ([]domain.SwapRequest, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, params)
	}
	return nil, nil
}

func (m *MockSwapStore) WithTx(tx *sql.Tx) store.SwapStore {
	return m
}
