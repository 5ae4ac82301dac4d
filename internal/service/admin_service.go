package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// PlatformStats is the combined administrative rollup across all entity
// types. Every field is zero-safe: an empty platform reports zeros, not an
// error.
type PlatformStats struct {
	Users    store.UserCounts    `json:"users"`
	Skills   store.SkillCounts   `json:"skills"`
	Swaps    store.SwapCounts    `json:"swaps"`
	Feedback store.FeedbackStats `json:"feedback"`
}

// AdminService provides moderation and reporting operations. Handlers gate
// access to it behind the admin flag; the service itself assumes the caller
// is an administrator.
type AdminService interface {
	// PlatformStats returns counts and rating aggregates across the platform.
	PlatformStats(ctx context.Context) (*PlatformStats, error)

	// FeedbackReport returns rating aggregates across all feedback.
	FeedbackReport(ctx context.Context) (store.FeedbackStats, error)

	// UserActivityReport returns per-user swap involvement, one row per user.
	UserActivityReport(ctx context.Context) ([]store.UserActivity, error)

	// ListUsers returns users for administrative listing.
	ListUsers(ctx context.Context, params store.ListUsersParams) ([]domain.User, error)

	// BanUser deactivates a user, blocking them from all activity.
	// Administrators cannot be banned (ErrCannotBanAdmin).
	BanUser(ctx context.Context, userID uuid.UUID) error

	// UnbanUser reactivates a previously banned user.
	UnbanUser(ctx context.Context, userID uuid.UUID) error

	// ListPendingSkills returns skills awaiting approval.
	ListPendingSkills(ctx context.Context) ([]domain.Skill, error)

	// ApproveSkill marks a skill as approved.
	ApproveSkill(ctx context.Context, skillID uuid.UUID) error

	// RejectSkill removes a skill from the catalog.
	RejectSkill(ctx context.Context, skillID uuid.UUID) error

	// ListAllSwaps returns swap requests across all users.
	ListAllSwaps(ctx context.Context, params store.ListAllSwapsParams) ([]domain.SwapRequest, error)

	// CreateMessage publishes a platform-wide broadcast message.
	CreateMessage(ctx context.Context, title, content string, isActive bool) (*domain.AdminMessage, error)

	// ListMessages returns broadcast messages, optionally filtered by active
	// flag.
	ListMessages(ctx context.Context, isActive *bool) ([]domain.AdminMessage, error)

	// ToggleMessage flips a message's active flag.
	ToggleMessage(ctx context.Context, id uuid.UUID) (*domain.AdminMessage, error)
}

// adminServiceImpl implements the AdminService interface.
type adminServiceImpl struct {
	userStore    store.UserStore
	skillStore   store.SkillStore
	swapStore    store.SwapStore
	statsStore   store.StatsStore
	messageStore store.AdminMessageStore
	logger       *slog.Logger
}

// Verify interface compliance at compile time
var _ AdminService = (*adminServiceImpl)(nil)

// NewAdminService creates a new AdminService.
func NewAdminService(
	userStore store.UserStore,
	skillStore store.SkillStore,
	swapStore store.SwapStore,
	statsStore store.StatsStore,
	messageStore store.AdminMessageStore,
	logger *slog.Logger,
) AdminService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if skillStore == nil {
		panic("skillStore cannot be nil")
	}
	if swapStore == nil {
		panic("swapStore cannot be nil")
	}
	if statsStore == nil {
		panic("statsStore cannot be nil")
	}
	if messageStore == nil {
		panic("messageStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &adminServiceImpl{
		userStore:    userStore,
		skillStore:   skillStore,
		swapStore:    swapStore,
		statsStore:   statsStore,
		messageStore: messageStore,
		logger:       logger.With(slog.String("component", "admin_service")),
	}
}

// PlatformStats implements AdminService.PlatformStats.
func (s *adminServiceImpl) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	users, err := s.statsStore.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := s.statsStore.CountSkills(ctx)
	if err != nil {
		return nil, err
	}
	swaps, err := s.statsStore.CountSwaps(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := s.statsStore.FeedbackStats(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		Users:    users,
		Skills:   skills,
		Swaps:    swaps,
		Feedback: feedback,
	}, nil
}

// FeedbackReport implements AdminService.FeedbackReport.
func (s *adminServiceImpl) FeedbackReport(ctx context.Context) (store.FeedbackStats, error) {
	return s.statsStore.FeedbackStats(ctx)
}

// UserActivityReport implements AdminService.UserActivityReport.
func (s *adminServiceImpl) UserActivityReport(ctx context.Context) ([]store.UserActivity, error) {
	return s.statsStore.UserActivity(ctx)
}

// ListUsers implements AdminService.ListUsers.
func (s *adminServiceImpl) ListUsers(ctx context.Context, params store.ListUsersParams) ([]domain.User, error) {
	return s.userStore.List(ctx, params)
}

// BanUser implements AdminService.BanUser.
func (s *adminServiceImpl) BanUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return ErrCannotBanAdmin
	}

	if err := s.userStore.SetActive(ctx, userID, false); err != nil {
		return err
	}

	log.Info("user banned", slog.String("user_id", userID.String()))
	return nil
}

// UnbanUser implements AdminService.UnbanUser.
func (s *adminServiceImpl) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.userStore.SetActive(ctx, userID, true); err != nil {
		return err
	}

	log.Info("user unbanned", slog.String("user_id", userID.String()))
	return nil
}

// ListPendingSkills implements AdminService.ListPendingSkills.
func (s *adminServiceImpl) ListPendingSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skillStore.ListPending(ctx)
}

// ApproveSkill implements AdminService.ApproveSkill.
func (s *adminServiceImpl) ApproveSkill(ctx context.Context, skillID uuid.UUID) error {
	return s.skillStore.SetApproved(ctx, skillID, true)
}

// RejectSkill implements AdminService.RejectSkill.
func (s *adminServiceImpl) RejectSkill(ctx context.Context, skillID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.skillStore.Delete(ctx, skillID); err != nil {
		return err
	}

	log.Info("skill rejected", slog.String("skill_id", skillID.String()))
	return nil
}

// ListAllSwaps implements AdminService.ListAllSwaps.
func (s *adminServiceImpl) ListAllSwaps(ctx context.Context, params store.ListAllSwapsParams) ([]domain.SwapRequest, error) {
	return s.swapStore.ListAll(ctx, params)
}

// CreateMessage implements AdminService.CreateMessage.
func (s *adminServiceImpl) CreateMessage(
	ctx context.Context,
	title, content string,
	isActive bool,
) (*domain.AdminMessage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	msg, err := domain.NewAdminMessage(title, content, isActive)
	if err != nil {
		return nil, err
	}

	if err := s.messageStore.Create(ctx, msg); err != nil {
		log.Error("failed to create admin message",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("admin message created", slog.String("message_id", msg.ID.String()))
	return msg, nil
}

// ListMessages implements AdminService.ListMessages.
func (s *adminServiceImpl) ListMessages(ctx context.Context, isActive *bool) ([]domain.AdminMessage, error) {
	return s.messageStore.List(ctx, isActive)
}

// ToggleMessage implements AdminService.ToggleMessage.
func (s *adminServiceImpl) ToggleMessage(ctx context.Context, id uuid.UUID) (*domain.AdminMessage, error) {
	return s.messageStore.Toggle(ctx, id)
}
