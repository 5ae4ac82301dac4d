package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/mocks"
	"github.com/jashmevada/skill-swap-platform/internal/service/auth"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

func authFixture(user *domain.User) *AuthMiddleware {
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			switch tokenString {
			case "valid-token":
				return &auth.Claims{UserID: user.ID, TokenType: "access"}, nil
			case "expired-token":
				return nil, auth.ErrExpiredToken
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
	userStore := &mocks.MockUserStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	return NewAuthMiddleware(jwtService, userStore)
}

func TestAuthenticate(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice", IsActive: true, IsAdmin: true}

	run := func(m *AuthMiddleware, header string) (*httptest.ResponseRecorder, *http.Request) {
		var captured *http.Request
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec, captured
	}

	t.Run("valid_token_sets_context", func(t *testing.T) {
		rec, captured := run(authFixture(user), "Bearer valid-token")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)

		userID, ok := GetUserID(captured)
		require.True(t, ok)
		assert.Equal(t, user.ID, userID)

		isAdmin, ok := captured.Context().Value(shared.IsAdminContextKey).(bool)
		require.True(t, ok)
		assert.True(t, isAdmin)
	})

	t.Run("missing_header", func(t *testing.T) {
		rec, captured := run(authFixture(user), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("malformed_header", func(t *testing.T) {
		rec, _ := run(authFixture(user), "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired_token", func(t *testing.T) {
		rec, _ := run(authFixture(user), "Bearer expired-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid_token", func(t *testing.T) {
		rec, _ := run(authFixture(user), "Bearer forged-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated_account_is_forbidden", func(t *testing.T) {
		banned := &domain.User{ID: uuid.New(), Username: "mallory", IsActive: false}
		rec, captured := run(authFixture(banned), "Bearer valid-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("vanished_user_is_unauthorized", func(t *testing.T) {
		m := authFixture(user)
		ghost := &mocks.MockUserStore{}
		m.userStore = ghost
		rec, _ := run(m, "Bearer valid-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	m := NewAuthMiddleware(&mocks.MockJWTService{}, &mocks.MockUserStore{})

	run := func(ctx context.Context) *httptest.ResponseRecorder {
		handler := m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin_allowed", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), shared.IsAdminContextKey, true)
		assert.Equal(t, http.StatusOK, run(ctx).Code)
	})

	t.Run("regular_user_forbidden", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), shared.IsAdminContextKey, false)
		assert.Equal(t, http.StatusForbidden, run(ctx).Code)
	})

	t.Run("missing_flag_forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, run(context.Background()).Code)
	})
}
