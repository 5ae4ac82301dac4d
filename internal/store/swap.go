package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
)

// SwapDirection selects which side of a swap request a user listing matches.
type SwapDirection string

// Valid swap listing directions.
const (
	DirectionSent     SwapDirection = "sent"
	DirectionReceived SwapDirection = "received"
	DirectionAll      SwapDirection = "all"
)

// ListSwapsParams restricts a per-user swap request listing.
type ListSwapsParams struct {
	Status    *domain.SwapStatus
	Direction SwapDirection
}

// ListAllSwapsParams restricts an administrative swap request listing.
type ListAllSwapsParams struct {
	Status *domain.SwapStatus
	Limit  int
	Offset int
}

// SwapStore defines the interface for swap request persistence.
type SwapStore interface {
	// Create saves a new swap request. A partial unique index over
	// (requester, requested, skill offered, skill wanted) with status
	// 'pending' serializes concurrent duplicate creations: the second
	// committer gets ErrDuplicatePendingSwap.
	Create(ctx context.Context, req *domain.SwapRequest) error

	// GetByID retrieves a swap request by its unique ID.
	// Returns ErrSwapNotFound if the request does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error)

	// Update persists the request's status, message, and updated timestamp.
	// Returns ErrSwapNotFound if the request does not exist.
	Update(ctx context.Context, req *domain.SwapRequest) error

	// Delete removes a swap request.
	// Returns ErrSwapNotFound if the request does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForUser returns the user's swap requests matching the params,
	// ordered by creation time descending.
	ListForUser(ctx context.Context, userID uuid.UUID, params ListSwapsParams) ([]domain.SwapRequest, error)

	// ListAll returns swap requests across all users for administrative
	// listing, ordered by creation time descending.
	ListAll(ctx context.Context, params ListAllSwapsParams) ([]domain.SwapRequest, error)

	// WithTx returns a SwapStore bound to the provided transaction.
	WithTx(tx *sql.Tx) SwapStore
}
