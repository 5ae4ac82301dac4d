package api

import (
	"log/slog"
	"net/http"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/service/swap"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// SwapHandler handles swap request lifecycle HTTP requests
type SwapHandler struct {
	swapService swap.SwapService
	logger      *slog.Logger
}

// NewSwapHandler creates a new SwapHandler
func NewSwapHandler(swapService swap.SwapService, logger *slog.Logger) *SwapHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SwapHandler")
	}

	return &SwapHandler{
		swapService: swapService,
		logger:      logger.With(slog.String("component", "swap_handler")),
	}
}

// CreateSwap handles POST /swaps requests.
func (h *SwapHandler) CreateSwap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateSwapRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	created, err := h.swapService.Create(r.Context(), userID, swap.CreateSwapParams{
		RequestedID:    req.RequestedID,
		SkillOfferedID: req.SkillOfferedID,
		SkillWantedID:  req.SkillWantedID,
		Message:        req.Message,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("swap request created",
		slog.String("swap_id", created.ID.String()),
		slog.String("requester_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// ListSwaps handles GET /swaps requests. Direction defaults to all; status
// filtering is optional.
func (h *SwapHandler) ListSwaps(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	q := r.URL.Query()

	opts := swap.ListOptions{Direction: store.DirectionAll}
	switch dir := q.Get("direction"); dir {
	case "", string(store.DirectionAll):
	case string(store.DirectionSent):
		opts.Direction = store.DirectionSent
	case string(store.DirectionReceived):
		opts.Direction = store.DirectionReceived
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Direction must be 'sent', 'received', or 'all'")
		return
	}

	if raw := q.Get("status"); raw != "" {
		status := domain.SwapStatus(raw)
		if !domain.IsValidSwapStatus(status) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
			return
		}
		opts.Status = &status
	}

	swaps, err := h.swapService.ListForUser(r.Context(), userID, opts)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, swaps)
}

// GetSwap handles GET /swaps/{swapID} requests. Only the two parties may
// view a request.
func (h *SwapHandler) GetSwap(w http.ResponseWriter, r *http.Request) {
	userID, swapID, ok := requireUserAndPathUUID(w, r, "swapID")
	if !ok {
		return
	}

	req, err := h.swapService.GetByID(r.Context(), swapID, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, req)
}

// UpdateSwap handles PATCH /swaps/{swapID} requests. Status transitions are
// authorized per target status; the message may be edited by either party.
func (h *SwapHandler) UpdateSwap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, swapID, ok := requireUserAndPathUUID(w, r, "swapID")
	if !ok {
		return
	}

	var req UpdateSwapRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	patch := domain.SwapPatch{Message: req.Message}
	if req.Status != nil {
		status := domain.SwapStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := h.swapService.Update(r.Context(), swapID, userID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("swap request updated",
		slog.String("swap_id", swapID.String()),
		slog.String("actor_id", userID.String()),
		slog.String("status", string(updated.Status)))
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeleteSwap handles DELETE /swaps/{swapID} requests. Only the requester may
// delete, and only while the request is still pending.
func (h *SwapHandler) DeleteSwap(w http.ResponseWriter, r *http.Request) {
	userID, swapID, ok := requireUserAndPathUUID(w, r, "swapID")
	if !ok {
		return
	}

	if err := h.swapService.Delete(r.Context(), swapID, userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
