package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/redact"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(req.Email, req.Username, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}
	user.FullName = req.FullName

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
		case errors.Is(err, store.ErrUsernameExists):
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
		default:
			slog.Error("failed to create user", "error", redact.Error(err), "username", req.Username)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	h.respondWithTokenPair(w, r, user.ID, http.StatusCreated)
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by username", "error", redact.Error(err), "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Banned users cannot obtain new tokens.
	if !user.IsActive {
		shared.RespondWithError(w, r, http.StatusForbidden, "Account is deactivated")
		return
	}

	h.respondWithTokenPair(w, r, user.ID, http.StatusOK)
}

// Refresh handles the /auth/refresh endpoint. It exchanges a valid refresh
// token for a new access/refresh token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// The account may have been deactivated since the token was issued.
	user, err := h.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		slog.Error("failed to load user for token refresh", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}
	if !user.IsActive {
		shared.RespondWithError(w, r, http.StatusForbidden, "Account is deactivated")
		return
	}

	h.respondWithTokenPair(w, r, user.ID, http.StatusOK)
}

// respondWithTokenPair issues a fresh access/refresh token pair for the user.
func (h *AuthHandler) respondWithTokenPair(
	w http.ResponseWriter,
	r *http.Request,
	userID uuid.UUID,
	status int,
) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		slog.Error("failed to generate access token", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), userID)
	if err != nil {
		slog.Error("failed to generate refresh token", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, status, AuthResponse{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
