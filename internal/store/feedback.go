package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
)

// FeedbackStore defines the interface for feedback persistence. Feedback is
// append-only: there is no update or delete.
type FeedbackStore interface {
	// Create saves a new feedback record.
	Create(ctx context.Context, fb *domain.Feedback) error

	// ListForReceiver returns feedback received by the user, newest first.
	ListForReceiver(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)

	// ListForSwap returns feedback attached to the swap request, newest first.
	ListForSwap(ctx context.Context, swapID uuid.UUID) ([]domain.Feedback, error)

	// WithTx returns a FeedbackStore bound to the provided transaction.
	WithTx(tx *sql.Tx) FeedbackStore
}
