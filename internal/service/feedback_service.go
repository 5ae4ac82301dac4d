package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// SubmitFeedbackParams carries the inputs for submitting feedback on a swap.
type SubmitFeedbackParams struct {
	SwapRequestID uuid.UUID
	GiverID       uuid.UUID
	ReceiverID    uuid.UUID
	Rating        int
	Comment       string
}

// FeedbackService provides the append-only feedback ledger.
type FeedbackService interface {
	// Submit records feedback on a swap request. Giver and receiver must be
	// the two distinct parties of the request (ErrNotParticipant otherwise).
	// The request does not have to be completed.
	Submit(ctx context.Context, params SubmitFeedbackParams) (*domain.Feedback, error)

	// ListForReceiver returns feedback received by the user, newest first.
	ListForReceiver(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)

	// ListForSwap returns feedback attached to a swap request, visible only
	// to its two parties.
	ListForSwap(ctx context.Context, swapID, viewerID uuid.UUID) ([]domain.Feedback, error)
}

// feedbackServiceImpl implements the FeedbackService interface.
type feedbackServiceImpl struct {
	feedbackStore store.FeedbackStore
	swapStore     store.SwapStore
	logger        *slog.Logger
}

// Verify interface compliance at compile time
var _ FeedbackService = (*feedbackServiceImpl)(nil)

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedbackStore store.FeedbackStore, swapStore store.SwapStore, logger *slog.Logger) FeedbackService {
	if feedbackStore == nil {
		panic("feedbackStore cannot be nil")
	}
	if swapStore == nil {
		panic("swapStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &feedbackServiceImpl{
		feedbackStore: feedbackStore,
		swapStore:     swapStore,
		logger:        logger.With(slog.String("component", "feedback_service")),
	}
}

// Submit implements FeedbackService.Submit.
func (s *feedbackServiceImpl) Submit(ctx context.Context, params SubmitFeedbackParams) (*domain.Feedback, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fb, err := domain.NewFeedback(
		params.SwapRequestID,
		params.GiverID,
		params.ReceiverID,
		params.Rating,
		params.Comment,
	)
	if err != nil {
		return nil, err
	}

	swap, err := s.swapStore.GetByID(ctx, params.SwapRequestID)
	if err != nil {
		return nil, err
	}

	// Both parties of the feedback must be the parties of the request.
	if !swap.IsParty(params.GiverID) || !swap.IsParty(params.ReceiverID) {
		return nil, ErrNotParticipant
	}

	if err := s.feedbackStore.Create(ctx, fb); err != nil {
		log.Error("failed to save feedback",
			slog.String("error", err.Error()),
			slog.String("swap_request_id", params.SwapRequestID.String()))
		return nil, err
	}

	log.Info("feedback recorded",
		slog.String("feedback_id", fb.ID.String()),
		slog.String("swap_request_id", fb.SwapRequestID.String()),
		slog.Int("rating", fb.Rating))
	return fb, nil
}

// ListForReceiver implements FeedbackService.ListForReceiver.
func (s *feedbackServiceImpl) ListForReceiver(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	return s.feedbackStore.ListForReceiver(ctx, userID)
}

// ListForSwap implements FeedbackService.ListForSwap.
func (s *feedbackServiceImpl) ListForSwap(ctx context.Context, swapID, viewerID uuid.UUID) ([]domain.Feedback, error) {
	swap, err := s.swapStore.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParty(viewerID) {
		return nil, ErrNotParticipant
	}
	return s.feedbackStore.ListForSwap(ctx, swapID)
}
