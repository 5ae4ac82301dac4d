package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashmevada/skill-swap-platform/internal/api/shared"
	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/service/swap"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// mockSwapService implements swap.SwapService for handler tests
type mockSwapService struct {
	createFn      func(ctx context.Context, requesterID uuid.UUID, params swap.CreateSwapParams) (*domain.SwapRequest, error)
	getByIDFn     func(ctx context.Context, id, actorID uuid.UUID) (*domain.SwapRequest, error)
	updateFn      func(ctx context.Context, id, actorID uuid.UUID, patch domain.SwapPatch) (*domain.SwapRequest, error)
	deleteFn      func(ctx context.Context, id, actorID uuid.UUID) error
	listForUserFn func(ctx context.Context, userID uuid.UUID, opts swap.ListOptions) ([]domain.SwapRequest, error)
}

var _ swap.SwapService = (*mockSwapService)(nil)

func (m *mockSwapService) Create(ctx context.Context, requesterID uuid.UUID, params swap.CreateSwapParams) (*domain.SwapRequest, error) {
	if m.createFn != nil {
		return m.createFn(ctx, requesterID, params)
	}
	return nil, store.ErrSwapNotFound
}

func (m *mockSwapService) GetByID(ctx context.Context, id, actorID uuid.UUID) (*domain.SwapRequest, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, actorID)
	}
	return nil, store.ErrSwapNotFound
}

func (m *mockSwapService) Update(ctx context.Context, id, actorID uuid.UUID, patch domain.SwapPatch) (*domain.SwapRequest, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, actorID, patch)
	}
	return nil, store.ErrSwapNotFound
}

func (m *mockSwapService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, actorID)
	}
	return store.ErrSwapNotFound
}

func (m *mockSwapService) ListForUser(ctx context.Context, userID uuid.UUID, opts swap.ListOptions) ([]domain.SwapRequest, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID, opts)
	}
	return nil, nil
}

func handlerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser attaches the authenticated user's ID to the request context the way
// the auth middleware does.
func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// withPathParam attaches a chi route parameter to the request context.
func withPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSwapHandler_CreateSwap(t *testing.T) {
	userID := uuid.New()

	t.Run("creates_swap", func(t *testing.T) {
		requestedID := uuid.New()
		offeredID := uuid.New()
		wantedID := uuid.New()

		svc := &mockSwapService{
			createFn: func(ctx context.Context, requesterID uuid.UUID, params swap.CreateSwapParams) (*domain.SwapRequest, error) {
				assert.Equal(t, userID, requesterID)
				assert.Equal(t, requestedID, params.RequestedID)
				return domain.NewSwapRequest(requesterID, params.RequestedID, params.SkillOfferedID, params.SkillWantedID, params.Message)
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		req := asUser(jsonRequest(t, http.MethodPost, "/api/swaps", CreateSwapRequest{
			RequestedID:    requestedID,
			SkillOfferedID: offeredID,
			SkillWantedID:  wantedID,
			Message:        "trade?",
		}), userID)
		rec := httptest.NewRecorder()
		handler.CreateSwap(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created domain.SwapRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, domain.SwapStatusPending, created.Status)
	})

	t.Run("unauthenticated_request", func(t *testing.T) {
		handler := NewSwapHandler(&mockSwapService{}, handlerTestLogger())

		req := jsonRequest(t, http.MethodPost, "/api/swaps", CreateSwapRequest{})
		rec := httptest.NewRecorder()
		handler.CreateSwap(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("duplicate_request_conflicts", func(t *testing.T) {
		svc := &mockSwapService{
			createFn: func(ctx context.Context, requesterID uuid.UUID, params swap.CreateSwapParams) (*domain.SwapRequest, error) {
				return nil, swap.ErrDuplicateRequest
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		req := asUser(jsonRequest(t, http.MethodPost, "/api/swaps", CreateSwapRequest{
			RequestedID:    uuid.New(),
			SkillOfferedID: uuid.New(),
			SkillWantedID:  uuid.New(),
		}), userID)
		rec := httptest.NewRecorder()
		handler.CreateSwap(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("self_swap_is_bad_request", func(t *testing.T) {
		svc := &mockSwapService{
			createFn: func(ctx context.Context, requesterID uuid.UUID, params swap.CreateSwapParams) (*domain.SwapRequest, error) {
				return nil, swap.ErrSelfSwap
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		req := asUser(jsonRequest(t, http.MethodPost, "/api/swaps", CreateSwapRequest{
			RequestedID:    userID,
			SkillOfferedID: uuid.New(),
			SkillWantedID:  uuid.New(),
		}), userID)
		rec := httptest.NewRecorder()
		handler.CreateSwap(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSwapHandler_ListSwaps(t *testing.T) {
	userID := uuid.New()

	t.Run("passes_direction_and_status", func(t *testing.T) {
		var gotOpts swap.ListOptions
		svc := &mockSwapService{
			listForUserFn: func(ctx context.Context, uid uuid.UUID, opts swap.ListOptions) ([]domain.SwapRequest, error) {
				gotOpts = opts
				return []domain.SwapRequest{}, nil
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/swaps?direction=sent&status=pending", nil), userID)
		rec := httptest.NewRecorder()
		handler.ListSwaps(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, store.DirectionSent, gotOpts.Direction)
		require.NotNil(t, gotOpts.Status)
		assert.Equal(t, domain.SwapStatusPending, *gotOpts.Status)
	})

	t.Run("invalid_direction", func(t *testing.T) {
		handler := NewSwapHandler(&mockSwapService{}, handlerTestLogger())

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/swaps?direction=sideways", nil), userID)
		rec := httptest.NewRecorder()
		handler.ListSwaps(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_status_filter", func(t *testing.T) {
		handler := NewSwapHandler(&mockSwapService{}, handlerTestLogger())

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/swaps?status=archived", nil), userID)
		rec := httptest.NewRecorder()
		handler.ListSwaps(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSwapHandler_UpdateSwap(t *testing.T) {
	userID := uuid.New()
	swapID := uuid.New()

	t.Run("applies_status_patch", func(t *testing.T) {
		svc := &mockSwapService{
			updateFn: func(ctx context.Context, id, actorID uuid.UUID, patch domain.SwapPatch) (*domain.SwapRequest, error) {
				require.NotNil(t, patch.Status)
				assert.Equal(t, domain.SwapStatusAccepted, *patch.Status)
				req, err := domain.NewSwapRequest(uuid.New(), actorID, uuid.New(), uuid.New(), "")
				require.NoError(t, err)
				req.Status = *patch.Status
				return req, nil
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		status := "accepted"
		req := jsonRequest(t, http.MethodPatch, "/api/swaps/"+swapID.String(), UpdateSwapRequest{Status: &status})
		req = withPathParam(asUser(req, userID), "swapID", swapID.String())
		rec := httptest.NewRecorder()
		handler.UpdateSwap(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var updated domain.SwapRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, domain.SwapStatusAccepted, updated.Status)
	})

	t.Run("unknown_target_status_rejected_before_service", func(t *testing.T) {
		handler := NewSwapHandler(&mockSwapService{}, handlerTestLogger())

		status := "archived"
		req := jsonRequest(t, http.MethodPatch, "/api/swaps/"+swapID.String(), UpdateSwapRequest{Status: &status})
		req = withPathParam(asUser(req, userID), "swapID", swapID.String())
		rec := httptest.NewRecorder()
		handler.UpdateSwap(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthorized_transition_is_forbidden", func(t *testing.T) {
		svc := &mockSwapService{
			updateFn: func(ctx context.Context, id, actorID uuid.UUID, patch domain.SwapPatch) (*domain.SwapRequest, error) {
				return nil, swap.ErrNotAuthorized
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		status := "accepted"
		req := jsonRequest(t, http.MethodPatch, "/api/swaps/"+swapID.String(), UpdateSwapRequest{Status: &status})
		req = withPathParam(asUser(req, userID), "swapID", swapID.String())
		rec := httptest.NewRecorder()
		handler.UpdateSwap(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed_swap_id", func(t *testing.T) {
		handler := NewSwapHandler(&mockSwapService{}, handlerTestLogger())

		status := "accepted"
		req := jsonRequest(t, http.MethodPatch, "/api/swaps/not-a-uuid", UpdateSwapRequest{Status: &status})
		req = withPathParam(asUser(req, userID), "swapID", "not-a-uuid")
		rec := httptest.NewRecorder()
		handler.UpdateSwap(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSwapHandler_DeleteSwap(t *testing.T) {
	userID := uuid.New()
	swapID := uuid.New()

	t.Run("deletes_pending_request", func(t *testing.T) {
		svc := &mockSwapService{
			deleteFn: func(ctx context.Context, id, actorID uuid.UUID) error {
				assert.Equal(t, swapID, id)
				assert.Equal(t, userID, actorID)
				return nil
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		req := httptest.NewRequest(http.MethodDelete, "/api/swaps/"+swapID.String(), nil)
		req = withPathParam(asUser(req, userID), "swapID", swapID.String())
		rec := httptest.NewRecorder()
		handler.DeleteSwap(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non_pending_request", func(t *testing.T) {
		svc := &mockSwapService{
			deleteFn: func(ctx context.Context, id, actorID uuid.UUID) error {
				return swap.ErrNotPending
			},
		}
		handler := NewSwapHandler(svc, handlerTestLogger())

		req := httptest.NewRequest(http.MethodDelete, "/api/swaps/"+swapID.String(), nil)
		req = withPathParam(asUser(req, userID), "swapID", swapID.String())
		rec := httptest.NewRecorder()
		handler.DeleteSwap(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
