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

// SkillSet selects one of a user's two skill collections.
type SkillSet string

// The two per-user skill collections.
const (
	SkillSetOffered SkillSet = "offered"
	SkillSetWanted  SkillSet = "wanted"
)

// UserService provides profile and skill-set operations.
type UserService interface {
	// GetProfile returns the user's own full profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies a partial profile update and returns the updated
	// record.
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.UserPatch) (*domain.User, error)

	// GetPublicProfile returns another user's profile. Private profiles are
	// visible only to their owner (ErrProfilePrivate otherwise).
	GetPublicProfile(ctx context.Context, userID, viewerID uuid.UUID) (*domain.User, error)

	// Search returns public, active users matching the params, excluding the
	// viewer.
	Search(ctx context.Context, params store.SearchUsersParams) ([]domain.User, error)

	// ListSkills returns one of a user's skill sets, honoring profile
	// privacy.
	ListSkills(ctx context.Context, userID, viewerID uuid.UUID, set SkillSet) ([]domain.Skill, error)

	// AddSkill adds a skill to one of the caller's skill sets. Adding an
	// already-present skill is a no-op success; a missing skill is
	// store.ErrSkillNotFound.
	AddSkill(ctx context.Context, userID, skillID uuid.UUID, set SkillSet) error

	// RemoveSkill removes a skill from one of the caller's skill sets.
	// Removing an absent skill is a no-op success.
	RemoveSkill(ctx context.Context, userID, skillID uuid.UUID, set SkillSet) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore  store.UserStore
	skillStore store.SkillStore
	logger     *slog.Logger
}

// Verify interface compliance at compile time
var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, skillStore store.SkillStore, logger *slog.Logger) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if skillStore == nil {
		panic("skillStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		skillStore: skillStore,
		logger:     logger.With(slog.String("component", "user_service")),
	}
}

// GetProfile implements UserService.GetProfile.
func (s *userServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

// UpdateProfile implements UserService.UpdateProfile.
func (s *userServiceImpl) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)

	if err := s.userStore.Update(ctx, user); err != nil {
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	return user, nil
}

// GetPublicProfile implements UserService.GetPublicProfile.
func (s *userServiceImpl) GetPublicProfile(ctx context.Context, userID, viewerID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsPublic && user.ID != viewerID {
		return nil, ErrProfilePrivate
	}
	return user, nil
}

// Search implements UserService.Search.
func (s *userServiceImpl) Search(ctx context.Context, params store.SearchUsersParams) ([]domain.User, error) {
	return s.userStore.Search(ctx, params)
}

// ListSkills implements UserService.ListSkills.
func (s *userServiceImpl) ListSkills(
	ctx context.Context,
	userID, viewerID uuid.UUID,
	set SkillSet,
) ([]domain.Skill, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsPublic && user.ID != viewerID {
		return nil, ErrProfilePrivate
	}

	if set == SkillSetWanted {
		return s.userStore.ListWantedSkills(ctx, userID)
	}
	return s.userStore.ListOfferedSkills(ctx, userID)
}

// AddSkill implements UserService.AddSkill.
func (s *userServiceImpl) AddSkill(ctx context.Context, userID, skillID uuid.UUID, set SkillSet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The skill must exist; membership inserts are idempotent after that.
	if _, err := s.skillStore.GetByID(ctx, skillID); err != nil {
		return err
	}

	var err error
	if set == SkillSetWanted {
		err = s.userStore.AddWantedSkill(ctx, userID, skillID)
	} else {
		err = s.userStore.AddOfferedSkill(ctx, userID, skillID)
	}
	if err != nil {
		// A foreign key violation here means the user row vanished between
		// auth and insert.
		if errors.Is(err, store.ErrInvalidEntity) {
			return store.ErrUserNotFound
		}
		log.Error("failed to add user skill",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("skill_id", skillID.String()))
		return err
	}
	return nil
}

// RemoveSkill implements UserService.RemoveSkill.
func (s *userServiceImpl) RemoveSkill(ctx context.Context, userID, skillID uuid.UUID, set SkillSet) error {
	if _, err := s.skillStore.GetByID(ctx, skillID); err != nil {
		return err
	}

	if set == SkillSetWanted {
		return s.userStore.RemoveWantedSkill(ctx, userID, skillID)
	}
	return s.userStore.RemoveOfferedSkill(ctx, userID, skillID)
}
