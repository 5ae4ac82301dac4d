package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
)

// AdminMessageStore defines the interface for broadcast message persistence.
type AdminMessageStore interface {
	// Create saves a new admin message.
	Create(ctx context.Context, msg *domain.AdminMessage) error

	// List returns admin messages, newest first, optionally filtered by
	// active flag.
	List(ctx context.Context, isActive *bool) ([]domain.AdminMessage, error)

	// Toggle flips the message's active flag and returns the updated record.
	// Returns ErrMessageNotFound if the message does not exist.
	Toggle(ctx context.Context, id uuid.UUID) (*domain.AdminMessage, error)
}
