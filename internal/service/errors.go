// Package service provides application-level services for user profiles,
// the skill catalog, the feedback ledger, and administrative operations.
// The swap request engine lives in the swap subpackage.
package service

import "errors"

// Common service errors - sentinel errors used across service
// implementations. Callers check them with errors.Is(); the API layer maps
// them to HTTP status codes centrally.
var (
	// ErrProfilePrivate indicates the target profile is private and the
	// viewer is not its owner. API layer maps this to HTTP 403 Forbidden.
	ErrProfilePrivate = errors.New("this profile is private")

	// ErrNotParticipant indicates a feedback party is not one of the two
	// parties of the referenced swap request.
	ErrNotParticipant = errors.New("giver and receiver must both be parties to the swap request")

	// ErrSkillPendingApproval indicates a skill with the same normalized
	// name exists but has not been approved yet. API layer maps this to
	// HTTP 409 Conflict.
	ErrSkillPendingApproval = errors.New("skill exists but is pending approval")

	// ErrCannotBanAdmin indicates an attempt to ban an administrator account.
	ErrCannotBanAdmin = errors.New("cannot ban an admin user")
)
