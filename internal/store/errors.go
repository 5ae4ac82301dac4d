package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either level.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails to
	// commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrSkillNotFound indicates that the requested skill does not exist.
	ErrSkillNotFound = fmt.Errorf("%w: skill", ErrNotFound)

	// ErrSwapNotFound indicates that the requested swap request does not exist.
	ErrSwapNotFound = fmt.Errorf("%w: swap request", ErrNotFound)

	// ErrFeedbackNotFound indicates that the requested feedback does not exist.
	ErrFeedbackNotFound = fmt.Errorf("%w: feedback", ErrNotFound)

	// ErrMessageNotFound indicates that the requested admin message does not exist.
	ErrMessageNotFound = fmt.Errorf("%w: admin message", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrUsernameExists indicates that a user with the given username already
	// exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrSkillNameExists indicates that a skill with the given normalized
	// name already exists.
	ErrSkillNameExists = fmt.Errorf("%w: skill name", ErrDuplicate)

	// ErrDuplicatePendingSwap indicates that a pending swap request with the
	// identical (requester, requested, skill offered, skill wanted) tuple
	// already exists. Raised by the partial unique index on swap_requests,
	// which is what makes concurrent duplicate creations resolve to exactly
	// one winner.
	ErrDuplicatePendingSwap = fmt.Errorf("%w: pending swap request", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
