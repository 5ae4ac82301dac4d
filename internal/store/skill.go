package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
)

// ListSkillsParams restricts a skill catalog listing. Category and Search
// are case-insensitive substring matches on category and name respectively.
type ListSkillsParams struct {
	Category     string
	Search       string
	ApprovedOnly bool
	Limit        int
	Offset       int
}

// SkillStore defines the interface for skill catalog persistence.
type SkillStore interface {
	// Create saves a new skill. The skill's name must already be normalized
	// (trimmed, title-cased).
	// Returns ErrSkillNameExists when the name is taken case-insensitively.
	Create(ctx context.Context, skill *domain.Skill) error

	// GetByID retrieves a skill by its unique ID.
	// Returns ErrSkillNotFound if the skill does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error)

	// FindByName retrieves a skill by case-insensitive exact name match.
	// Returns ErrSkillNotFound if no such skill exists.
	FindByName(ctx context.Context, name string) (*domain.Skill, error)

	// List returns skills matching the params.
	List(ctx context.Context, params ListSkillsParams) ([]domain.Skill, error)

	// ListCategories returns the distinct non-empty categories of approved
	// skills.
	ListCategories(ctx context.Context) ([]string, error)

	// ListPending returns skills awaiting approval.
	ListPending(ctx context.Context) ([]domain.Skill, error)

	// SetApproved updates the skill's approval flag.
	// Returns ErrSkillNotFound if the skill does not exist.
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error

	// Delete removes a skill from the catalog. Swap requests referencing the
	// skill keep their id references; there is no cascade.
	// Returns ErrSkillNotFound if the skill does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a SkillStore bound to the provided transaction.
	WithTx(tx *sql.Tx) SkillStore
}
