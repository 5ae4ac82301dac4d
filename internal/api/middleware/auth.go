package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/redact"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates JWT tokens from the Authorization header, rejects
// deactivated accounts, and adds the user's ID and admin flag to the request
// context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenType),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		// Deactivated accounts keep valid tokens until expiry; the lookup
		// blocks them from all authenticated activity immediately.
		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to load authenticated user", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}
		if !user.IsActive {
			shared.RespondWithError(w, r, http.StatusForbidden, "Account is deactivated")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		ctx = context.WithValue(ctx, shared.IsAdminContextKey, user.IsAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose authenticated user is not an
// administrator. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin, ok := r.Context().Value(shared.IsAdminContextKey).(bool)
		if !ok || !isAdmin {
			shared.RespondWithError(w, r, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
