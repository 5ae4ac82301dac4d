package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// UserHandler handles profile and skill-set HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// GetMe handles GET /users/me requests.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user, true))
}

// UpdateMe handles PUT /users/me requests.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var patch domain.UserPatch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("profile updated", slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user, true))
}

// GetUser handles GET /users/{userID} requests. Private profiles are visible
// only to their owner.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	viewerID, targetID, ok := requireUserAndPathUUID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.userService.GetPublicProfile(r.Context(), targetID, viewerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user, user.ID == viewerID))
}

// SearchUsers handles GET /users requests. Only public, active users other
// than the caller are returned.
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	q := r.URL.Query()
	params := store.SearchUsersParams{
		ViewerID:  viewerID,
		SkillName: q.Get("skill"),
		Location:  q.Get("location"),
		Category:  q.Get("category"),
		Limit:     parseIntParam(q.Get("limit"), 50),
		Offset:    parseIntParam(q.Get("offset"), 0),
	}

	users, err := h.userService.Search(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userToResponse(&users[i], false))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// ListSkills handles GET /users/{userID}/skills/{set} requests.
func (h *UserHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	viewerID, targetID, ok := requireUserAndPathUUID(w, r, "userID")
	if !ok {
		return
	}

	set, ok := pathSkillSet(w, r)
	if !ok {
		return
	}

	skills, err := h.userService.ListSkills(r.Context(), targetID, viewerID, set)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, skills)
}

// AddSkill handles POST /users/me/skills/{set} requests. Adding a skill that
// is already present succeeds without effect.
func (h *UserHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	set, ok := pathSkillSet(w, r)
	if !ok {
		return
	}

	var req UserSkillRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.userService.AddSkill(r.Context(), userID, req.SkillID, set); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("skill added to user set",
		slog.String("user_id", userID.String()),
		slog.String("skill_id", req.SkillID.String()),
		slog.String("set", string(set)))
	w.WriteHeader(http.StatusNoContent)
}

// RemoveSkill handles DELETE /users/me/skills/{set}/{skillID} requests.
// Removing an absent skill succeeds without effect.
func (h *UserHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	userID, skillID, ok := requireUserAndPathUUID(w, r, "skillID")
	if !ok {
		return
	}

	set, ok := pathSkillSet(w, r)
	if !ok {
		return
	}

	if err := h.userService.RemoveSkill(r.Context(), userID, skillID, set); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathSkillSet reads the {set} path parameter and rejects anything other
// than "offered" or "wanted".
func pathSkillSet(w http.ResponseWriter, r *http.Request) (service.SkillSet, bool) {
	switch set := chi.URLParam(r, "set"); set {
	case string(service.SkillSetOffered):
		return service.SkillSetOffered, true
	case string(service.SkillSetWanted):
		return service.SkillSetWanted, true
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Skill set must be 'offered' or 'wanted'")
		return "", false
	}
}

// parseIntParam parses a query parameter as a non-negative int, falling back
// to the default on absence or garbage.
func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
