package api

import (
	"log/slog"
	"net/http"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/service"
)

// FeedbackHandler handles feedback ledger HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	logger          *slog.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService service.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FeedbackHandler")
	}

	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger.With(slog.String("component", "feedback_handler")),
	}
}

// SubmitFeedback handles POST /feedback requests. The giver is always the
// authenticated caller.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SubmitFeedbackRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	fb, err := h.feedbackService.Submit(r.Context(), service.SubmitFeedbackParams{
		SwapRequestID: req.SwapRequestID,
		GiverID:       userID,
		ReceiverID:    req.ReceiverID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("feedback submitted",
		slog.String("feedback_id", fb.ID.String()),
		slog.String("swap_id", req.SwapRequestID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, fb)
}

// ListUserFeedback handles GET /users/{userID}/feedback requests. It returns
// the feedback received by the user, newest first.
func (h *FeedbackHandler) ListUserFeedback(w http.ResponseWriter, r *http.Request) {
	_, targetID, ok := requireUserAndPathUUID(w, r, "userID")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListForReceiver(r.Context(), targetID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, feedback)
}

// ListSwapFeedback handles GET /swaps/{swapID}/feedback requests. Only the
// two parties of the request may view its feedback.
func (h *FeedbackHandler) ListSwapFeedback(w http.ResponseWriter, r *http.Request) {
	userID, swapID, ok := requireUserAndPathUUID(w, r, "swapID")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListForSwap(r.Context(), swapID, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, feedback)
}
