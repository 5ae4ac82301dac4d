package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MockFeedbackStore implements store.FeedbackStore for testing
type MockFeedbackStore struct {
	CreateFn          func(ctx context.Context, fb *domain.Feedback) error
	ListForReceiverFn func(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)
	ListForSwapFn     func(ctx context.Context, swapID uuid.UUID) ([]domain.Feedback, error)
}

var _ store.FeedbackStore = (*MockFeedbackStore)(nil)

func (m *MockFeedbackStore) Create(ctx context.Context, fb *domain.Feedback) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fb)
	}
	return nil
}

func (m *MockFeedbackStore) ListForReceiver(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	if m.ListForReceiverFn != nil {
		return m.ListForReceiverFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockFeedbackStore) ListForSwap(ctx context.Context, swapID uuid.UUID) ([]domain.Feedback, error) {
	if m.ListForSwapFn != nil {
		return m.ListForSwapFn(ctx, swapID)
	}
	return nil, nil
}

func (m *MockFeedbackStore) WithTx(tx *sql.Tx) store.FeedbackStore {
	return m
}
