package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// AdminHandler handles moderation and reporting HTTP requests. All of its
// routes sit behind the admin middleware.
type AdminHandler struct {
	adminService service.AdminService
	logger       *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService service.AdminService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AdminHandler")
	}

	return &AdminHandler{
		adminService: adminService,
		logger:       logger.With(slog.String("component", "admin_handler")),
	}
}

// GetStats handles GET /admin/stats requests.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.PlatformStats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetFeedbackReport handles GET /admin/reports/feedback requests.
func (h *AdminHandler) GetFeedbackReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.adminService.FeedbackReport(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// GetUserActivityReport handles GET /admin/reports/activity requests.
func (h *AdminHandler) GetUserActivityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.adminService.UserActivityReport(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// ListUsers handles GET /admin/users requests.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := store.ListUsersParams{
		Limit:  parseIntParam(q.Get("limit"), 100),
		Offset: parseIntParam(q.Get("offset"), 0),
	}
	if raw := q.Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "is_active must be a boolean")
			return
		}
		params.IsActive = &active
	}

	users, err := h.adminService.ListUsers(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userToResponse(&users[i], true))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// BanUser handles POST /admin/users/{userID}/ban requests.
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathUUID(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.adminService.BanUser(r.Context(), userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user banned by admin", slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// UnbanUser handles POST /admin/users/{userID}/unban requests.
func (h *AdminHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "userID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.adminService.UnbanUser(r.Context(), userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPendingSkills handles GET /admin/skills/pending requests.
func (h *AdminHandler) ListPendingSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.adminService.ListPendingSkills(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, skills)
}

// ApproveSkill handles POST /admin/skills/{skillID}/approve requests.
func (h *AdminHandler) ApproveSkill(w http.ResponseWriter, r *http.Request) {
	skillID, err := getPathUUID(r, "skillID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.adminService.ApproveSkill(r.Context(), skillID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RejectSkill handles DELETE /admin/skills/{skillID} requests. Rejected
// skills are removed from the catalog.
func (h *AdminHandler) RejectSkill(w http.ResponseWriter, r *http.Request) {
	skillID, err := getPathUUID(r, "skillID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.adminService.RejectSkill(r.Context(), skillID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAllSwaps handles GET /admin/swaps requests.
func (h *AdminHandler) ListAllSwaps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := store.ListAllSwapsParams{
		Limit:  parseIntParam(q.Get("limit"), 100),
		Offset: parseIntParam(q.Get("offset"), 0),
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.SwapStatus(raw)
		if !domain.IsValidSwapStatus(status) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	swaps, err := h.adminService.ListAllSwaps(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, swaps)
}

// CreateMessage handles POST /admin/messages requests.
func (h *AdminHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateMessageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	msg, err := h.adminService.CreateMessage(r.Context(), req.Title, req.Content, isActive)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("broadcast message published", slog.String("message_id", msg.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, msg)
}

// ListMessages handles GET /admin/messages requests.
func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	var isActive *bool
	if raw := r.URL.Query().Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "is_active must be a boolean")
			return
		}
		isActive = &active
	}

	messages, err := h.adminService.ListMessages(r.Context(), isActive)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messages)
}

// ToggleMessage handles POST /admin/messages/{messageID}/toggle requests.
func (h *AdminHandler) ToggleMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := getPathUUID(r, "messageID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.adminService.ToggleMessage(r.Context(), messageID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, msg)
}
