package api

import (
	"log/slog"
	"net/http"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/platform/logger"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// SkillHandler handles skill catalog HTTP requests
type SkillHandler struct {
	skillService service.SkillService
	logger       *slog.Logger
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService service.SkillService, logger *slog.Logger) *SkillHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SkillHandler")
	}

	return &SkillHandler{
		skillService: skillService,
		logger:       logger.With(slog.String("component", "skill_handler")),
	}
}

// ListSkills handles GET /skills requests. Only approved skills are listed.
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := store.ListSkillsParams{
		Category:     q.Get("category"),
		Search:       q.Get("search"),
		ApprovedOnly: true,
		Limit:        parseIntParam(q.Get("limit"), 100),
		Offset:       parseIntParam(q.Get("offset"), 0),
	}

	skills, err := h.skillService.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, skills)
}

// ListCategories handles GET /skills/categories requests.
func (h *SkillHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.skillService.ListCategories(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// GetSkill handles GET /skills/{skillID} requests.
func (h *SkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	skillID, err := getPathUUID(r, "skillID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := h.skillService.GetByID(r.Context(), skillID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, skill)
}

// CreateSkill handles POST /skills requests. Creating a skill whose
// normalized name matches an existing approved skill returns the existing
// record rather than a conflict.
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateSkillRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	skill, err := h.skillService.Create(r.Context(), req.Name, req.Category, req.Description)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("skill create handled",
		slog.String("skill_id", skill.ID.String()),
		slog.String("skill_name", skill.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, skill)
}
