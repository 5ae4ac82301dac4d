package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// SkillService provides catalog operations over the shared skill taxonomy.
type SkillService interface {
	// Create adds a skill to the catalog. Names are normalized before
	// insertion. If an approved skill with the same normalized name already
	// exists it is returned as-is; if an unapproved duplicate exists the
	// call fails with ErrSkillPendingApproval.
	Create(ctx context.Context, name, category, description string) (*domain.Skill, error)

	// GetByID returns a single skill by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error)

	// List returns approved skills, optionally filtered by category or a
	// case-insensitive name fragment.
	List(ctx context.Context, params store.ListSkillsParams) ([]domain.Skill, error)

	// ListCategories returns the distinct categories of approved skills.
	ListCategories(ctx context.Context) ([]string, error)
}

// skillServiceImpl implements the SkillService interface.
type skillServiceImpl struct {
	skillStore store.SkillStore
	logger     *slog.Logger
}

// Verify interface compliance at compile time
var _ SkillService = (*skillServiceImpl)(nil)

// NewSkillService creates a new SkillService.
func NewSkillService(skillStore store.SkillStore, logger *slog.Logger) SkillService {
	if skillStore == nil {
		panic("skillStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &skillServiceImpl{
		skillStore: skillStore,
		logger:     logger.With(slog.String("component", "skill_service")),
	}
}

// Create implements SkillService.Create.
func (s *skillServiceImpl) Create(ctx context.Context, name, category, description string) (*domain.Skill, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	skill, err := domain.NewSkill(name, category, description)
	if err != nil {
		return nil, err
	}

	existing, err := s.skillStore.FindByName(ctx, skill.Name)
	switch {
	case err == nil:
		if existing.IsApproved {
			return existing, nil
		}
		return nil, ErrSkillPendingApproval
	case !errors.Is(err, store.ErrSkillNotFound):
		return nil, err
	}

	if err := s.skillStore.Create(ctx, skill); err != nil {
		// A concurrent insert of the same name surfaces as a duplicate; the
		// winner's row is the canonical one.
		if errors.Is(err, store.ErrSkillNameExists) {
			winner, findErr := s.skillStore.FindByName(ctx, skill.Name)
			if findErr != nil {
				return nil, err
			}
			if winner.IsApproved {
				return winner, nil
			}
			return nil, ErrSkillPendingApproval
		}
		log.Error("failed to create skill",
			slog.String("error", err.Error()),
			slog.String("skill_name", skill.Name))
		return nil, err
	}

	log.Info("skill created",
		slog.String("skill_id", skill.ID.String()),
		slog.String("skill_name", skill.Name))
	return skill, nil
}

// GetByID implements SkillService.GetByID.
func (s *skillServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	return s.skillStore.GetByID(ctx, id)
}

// List implements SkillService.List.
func (s *skillServiceImpl) List(ctx context.Context, params store.ListSkillsParams) ([]domain.Skill, error) {
	return s.skillStore.List(ctx, params)
}

// ListCategories implements SkillService.ListCategories.
func (s *skillServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	return s.skillStore.ListCategories(ctx)
}
