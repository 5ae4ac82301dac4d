// Package swap implements the swap request engine: creation validation, the
// status state machine, and per-transition actor authorization.
package swap

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// CreateSwapParams carries the caller-supplied fields for a new swap request.
// The requester identity comes from the authenticated session, never the
// payload.
type CreateSwapParams struct {
	RequestedID    uuid.UUID
	SkillOfferedID uuid.UUID
	SkillWantedID  uuid.UUID
	Message        string
}

// ListOptions restricts a swap request listing.
type ListOptions struct {
	Status    *domain.SwapStatus
	Direction store.SwapDirection
}

// SwapService governs the swap request lifecycle.
type SwapService interface {
	// Create validates and creates a new pending swap request on behalf of
	// the requester.
	//
	// Validation order, each failure terminal with no partial effects:
	//  1. the requested user exists and is active (store.ErrUserNotFound)
	//  2. the requested user is not the requester (ErrSelfSwap)
	//  3. both skills exist (store.ErrSkillNotFound)
	//  4. the requester offers the offered skill (ErrSkillNotOffered)
	//  5. the requested user offers the wanted skill
	//     (ErrSkillNotOfferedByRequested)
	//  6. no pending request with the identical tuple exists
	//     (ErrDuplicateRequest)
	Create(ctx context.Context, requesterID uuid.UUID, params CreateSwapParams) (*domain.SwapRequest, error)

	// GetByID retrieves a swap request. Only the two parties may view it;
	// any other actor gets ErrNotAuthorized.
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*domain.SwapRequest, error)

	// Update applies a partial update (status transition and/or message) on
	// behalf of the actor. Status transitions are authorized per target:
	// accepted/rejected by the requested party, cancelled by the requester,
	// completed by either party. Unless the service was configured
	// permissive, the source state is also gated: accepted, rejected, and
	// cancelled require pending; completed requires pending or accepted.
	Update(ctx context.Context, id, actorID uuid.UUID, patch domain.SwapPatch) (*domain.SwapRequest, error)

	// Delete removes a swap request. Only the requester may delete, and only
	// while the request is pending.
	Delete(ctx context.Context, id, actorID uuid.UUID) error

	// ListForUser returns the user's swap requests, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID, opts ListOptions) ([]domain.SwapRequest, error)
}

// Common error types for SwapService
var (
	// ErrSelfSwap indicates a user tried to request a swap with themselves.
	ErrSelfSwap = errors.New("cannot request a swap with yourself")

	// ErrSkillNotOffered indicates the requester does not offer the skill
	// they proposed to teach.
	ErrSkillNotOffered = errors.New("you don't offer the skill you're proposing to teach")

	// ErrSkillNotOfferedByRequested indicates the requested user does not
	// offer the skill the requester wants to learn.
	ErrSkillNotOfferedByRequested = errors.New("the requested user doesn't offer the skill you want to learn")

	// ErrDuplicateRequest indicates a pending request with the identical
	// (requester, requested, skill offered, skill wanted) tuple already
	// exists.
	ErrDuplicateRequest = errors.New("a pending request for this skill swap already exists")

	// ErrNotAuthorized indicates the actor is not permitted to perform the
	// requested action on this swap request.
	ErrNotAuthorized = errors.New("not authorized to perform this action on the swap request")

	// ErrInvalidTransition indicates the request's current status does not
	// permit the requested transition.
	ErrInvalidTransition = errors.New("swap request status does not permit this transition")

	// ErrNotPending indicates an operation that requires a pending request
	// was attempted on a request in another status.
	ErrNotPending = errors.New("swap request is no longer pending")
)

// ServiceError wraps errors from the swap service with operation context so
// consumers can differentiate failures with errors.As instead of string
// matching.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
