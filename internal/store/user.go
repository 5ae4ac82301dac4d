package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
)

// SearchUsersParams restricts a public user search. Only public, active
// users other than the viewer are returned; the string filters are
// case-insensitive substring matches.
type SearchUsersParams struct {
	ViewerID  uuid.UUID
	SkillName string
	Location  string
	Category  string
	Limit     int
	Offset    int
}

// ListUsersParams restricts an administrative user listing.
type ListUsersParams struct {
	IsActive *bool
	Limit    int
	Offset   int
}

// UserStore defines the interface for user data persistence, including the
// per-user offered/wanted skill sets.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists or ErrUsernameExists when the corresponding
	// unique column is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update persists the user's profile fields and updated timestamp.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// SetActive flips the user's active flag. Banned (inactive) users are
	// blocked from all authenticated activity.
	// Returns ErrUserNotFound if the user does not exist.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Search returns public, active users matching the params, excluding the
	// viewer themselves.
	Search(ctx context.Context, params SearchUsersParams) ([]domain.User, error)

	// List returns users for administrative listing, optionally filtered by
	// active status.
	List(ctx context.Context, params ListUsersParams) ([]domain.User, error)

	// ListOfferedSkills returns the user's offered skill set.
	ListOfferedSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)

	// ListWantedSkills returns the user's wanted skill set.
	ListWantedSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)

	// AddOfferedSkill adds a skill to the user's offered set. Adding a skill
	// that is already present is a no-op success.
	AddOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error

	// RemoveOfferedSkill removes a skill from the user's offered set.
	// Removing an absent skill is a no-op success.
	RemoveOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error

	// AddWantedSkill adds a skill to the user's wanted set, idempotently.
	AddWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error

	// RemoveWantedSkill removes a skill from the user's wanted set,
	// idempotently.
	RemoveWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error

	// OffersSkill reports whether the skill is in the user's offered set.
	OffersSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error)

	// WantsSkill reports whether the skill is in the user's wanted set.
	WantsSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error)

	// WithTx returns a UserStore bound to the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
