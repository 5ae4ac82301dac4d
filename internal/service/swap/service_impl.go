package swap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// Verify interface compliance at compile time
var _ SwapService = (*swapServiceImpl)(nil)

// swapServiceImpl implements the SwapService interface.
type swapServiceImpl struct {
	swapStore  store.SwapStore
	userStore  store.UserStore
	skillStore store.SkillStore
	// permissive reproduces the legacy transition rule: actor authorization
	// only, no source-state gate. Off by default; the strict table in
	// domain.CanTransition governs.
	permissive bool
	logger     *slog.Logger
}

// NewSwapService creates a new SwapService implementation.
// When permissive is true, status transitions check only the acting party
// and skip the source-state gate (legacy compatibility mode).
func NewSwapService(
	swapStore store.SwapStore,
	userStore store.UserStore,
	skillStore store.SkillStore,
	permissive bool,
	logger *slog.Logger,
) SwapService {
	if swapStore == nil {
		panic("swapStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if skillStore == nil {
		panic("skillStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &swapServiceImpl{
		swapStore:  swapStore,
		userStore:  userStore,
		skillStore: skillStore,
		permissive: permissive,
		logger:     logger.With(slog.String("component", "swap_service")),
	}
}

// Create implements SwapService.Create.
func (s *swapServiceImpl) Create(
	ctx context.Context,
	requesterID uuid.UUID,
	params CreateSwapParams,
) (*domain.SwapRequest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// 1. The requested user must exist and be active. An inactive (banned)
	// user is reported as not found rather than leaked as banned.
	requested, err := s.userStore.GetByID(ctx, params.RequestedID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, &ServiceError{Operation: "create_swap", Message: "looking up requested user", Err: err}
	}
	if !requested.IsActive {
		return nil, store.ErrUserNotFound
	}

	// 2. No self-swaps.
	if params.RequestedID == requesterID {
		return nil, ErrSelfSwap
	}

	// 3. Both skills must exist.
	if _, err := s.skillStore.GetByID(ctx, params.SkillOfferedID); err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			return nil, store.ErrSkillNotFound
		}
		return nil, &ServiceError{Operation: "create_swap", Message: "looking up offered skill", Err: err}
	}
	if _, err := s.skillStore.GetByID(ctx, params.SkillWantedID); err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			return nil, store.ErrSkillNotFound
		}
		return nil, &ServiceError{Operation: "create_swap", Message: "looking up wanted skill", Err: err}
	}

	// 4. The requester must actually offer the skill they propose to teach.
	offers, err := s.userStore.OffersSkill(ctx, requesterID, params.SkillOfferedID)
	if err != nil {
		return nil, &ServiceError{Operation: "create_swap", Message: "checking requester skill set", Err: err}
	}
	if !offers {
		return nil, ErrSkillNotOffered
	}

	// 5. The requested user must offer the skill the requester wants.
	offers, err = s.userStore.OffersSkill(ctx, params.RequestedID, params.SkillWantedID)
	if err != nil {
		return nil, &ServiceError{Operation: "create_swap", Message: "checking requested user skill set", Err: err}
	}
	if !offers {
		return nil, ErrSkillNotOfferedByRequested
	}

	req, err := domain.NewSwapRequest(
		requesterID,
		params.RequestedID,
		params.SkillOfferedID,
		params.SkillWantedID,
		params.Message,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid swap request: %w", err)
	}

	// 6. The partial unique index arbitrates duplicate pending tuples, so
	// two concurrent creations cannot both commit; the loser surfaces here.
	if err := s.swapStore.Create(ctx, req); err != nil {
		if errors.Is(err, store.ErrDuplicatePendingSwap) {
			return nil, ErrDuplicateRequest
		}
		return nil, &ServiceError{Operation: "create_swap", Message: "storing swap request", Err: err}
	}

	log.Info("swap request created",
		slog.String("swap_id", req.ID.String()),
		slog.String("requester_id", requesterID.String()),
		slog.String("requested_id", params.RequestedID.String()))
	return req, nil
}

// GetByID implements SwapService.GetByID.
func (s *swapServiceImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*domain.SwapRequest, error) {
	req, err := s.swapStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.IsParty(actorID) {
		return nil, ErrNotAuthorized
	}
	return req, nil
}

// Update implements SwapService.Update.
func (s *swapServiceImpl) Update(
	ctx context.Context,
	id, actorID uuid.UUID,
	patch domain.SwapPatch,
) (*domain.SwapRequest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req, err := s.swapStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := s.authorizeTransition(req, actorID, *patch.Status); err != nil {
			return nil, err
		}
		req.Status = *patch.Status
	} else if !req.IsParty(actorID) {
		// Message-only updates still require being a party to the request.
		return nil, ErrNotAuthorized
	}

	if patch.Message != nil {
		req.Message = *patch.Message
	}
	req.UpdatedAt = time.Now().UTC()

	if err := s.swapStore.Update(ctx, req); err != nil {
		return nil, &ServiceError{Operation: "update_swap", Message: "storing swap request", Err: err}
	}

	if patch.Status != nil {
		log.Info("swap request transitioned",
			slog.String("swap_id", req.ID.String()),
			slog.String("status", string(req.Status)),
			slog.String("actor_id", actorID.String()))
	}
	return req, nil
}

// authorizeTransition checks, in order, that the target status is a legal
// transition target, that the actor holds the role the target requires, and
// (strict mode only) that the current status permits the transition. The
// actor check deliberately runs first so a stranger always sees Forbidden,
// never a state-machine hint.
func (s *swapServiceImpl) authorizeTransition(
	req *domain.SwapRequest,
	actorID uuid.UUID,
	target domain.SwapStatus,
) error {
	requiredActor, ok := domain.TransitionActor(target)
	if !ok {
		return fmt.Errorf("%w: %q is not a valid transition target", ErrInvalidTransition, target)
	}

	role := req.ActorRole(actorID)
	switch requiredActor {
	case domain.ActorEither:
		if role == domain.ActorNone {
			return ErrNotAuthorized
		}
	default:
		if role != requiredActor {
			return ErrNotAuthorized
		}
	}

	if !s.permissive && !domain.CanTransition(req.Status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, target)
	}
	return nil
}

// Delete implements SwapService.Delete.
func (s *swapServiceImpl) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req, err := s.swapStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.RequesterID != actorID {
		return ErrNotAuthorized
	}
	if req.Status != domain.SwapStatusPending {
		return ErrNotPending
	}

	if err := s.swapStore.Delete(ctx, id); err != nil {
		return &ServiceError{Operation: "delete_swap", Message: "deleting swap request", Err: err}
	}

	log.Info("swap request deleted",
		slog.String("swap_id", id.String()),
		slog.String("actor_id", actorID.String()))
	return nil
}

// ListForUser implements SwapService.ListForUser.
func (s *swapServiceImpl) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
	opts ListOptions,
) ([]domain.SwapRequest, error) {
	direction := opts.Direction
	if direction == "" {
		direction = store.DirectionAll
	}

	reqs, err := s.swapStore.ListForUser(ctx, userID, store.ListSwapsParams{
		Status:    opts.Status,
		Direction: direction,
	})
	if err != nil {
		return nil, &ServiceError{Operation: "list_swaps", Message: "listing swap requests", Err: err}
	}
	return reqs, nil
}
