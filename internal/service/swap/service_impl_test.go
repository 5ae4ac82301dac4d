package swap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/mocks"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture holds the ids of a fully valid swap creation scenario: both users
// exist and are active, both skills exist, and each party offers the skill
// the other wants.
type fixture struct {
	requesterID uuid.UUID
	requestedID uuid.UUID
	offeredID   uuid.UUID
	wantedID    uuid.UUID

	userStore  *mocks.MockUserStore
	skillStore *mocks.MockSkillStore
	swapStore  *mocks.MockSwapStore
}

func newFixture() *fixture {
	f := &fixture{
		requesterID: uuid.New(),
		requestedID: uuid.New(),
		offeredID:   uuid.New(),
		wantedID:    uuid.New(),
	}

	f.userStore = &mocks.MockUserStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, IsActive: true}, nil
		},
		OffersSkillFn: func(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
			if userID == f.requesterID {
				return skillID == f.offeredID, nil
			}
			return skillID == f.wantedID, nil
		},
	}
	f.skillStore = &mocks.MockSkillStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
			return &domain.Skill{ID: id}, nil
		},
	}
	f.swapStore = &mocks.MockSwapStore{}
	return f
}

func (f *fixture) service(permissive bool) SwapService {
	return NewSwapService(f.swapStore, f.userStore, f.skillStore, permissive, testLogger())
}

func (f *fixture) params() CreateSwapParams {
	return CreateSwapParams{
		RequestedID:    f.requestedID,
		SkillOfferedID: f.offeredID,
		SkillWantedID:  f.wantedID,
		Message:        "trade?",
	}
}

func TestSwapService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_pending_request", func(t *testing.T) {
		f := newFixture()
		var stored *domain.SwapRequest
		f.swapStore.CreateFn = func(ctx context.Context, req *domain.SwapRequest) error {
			stored = req
			return nil
		}

		req, err := f.service(false).Create(ctx, f.requesterID, f.params())
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusPending, req.Status)
		assert.Equal(t, f.requesterID, req.RequesterID)
		assert.Equal(t, f.requestedID, req.RequestedID)
		assert.Same(t, stored, req)
	})

	t.Run("requested_user_not_found", func(t *testing.T) {
		f := newFixture()
		f.userStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, store.ErrUserNotFound
		}

		_, err := f.service(false).Create(ctx, f.requesterID, f.params())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("inactive_requested_user_reported_as_not_found", func(t *testing.T) {
		f := newFixture()
		f.userStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, IsActive: false}, nil
		}

		_, err := f.service(false).Create(ctx, f.requesterID, f.params())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("self_swap_rejected", func(t *testing.T) {
		f := newFixture()
		params := f.params()
		params.RequestedID = f.requesterID

		_, err := f.service(false).Create(ctx, f.requesterID, params)
		assert.ErrorIs(t, err, ErrSelfSwap)
	})

	t.Run("offered_skill_not_found", func(t *testing.T) {
		f := newFixture()
		f.skillStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
			if id == f.offeredID {
				return nil, store.ErrSkillNotFound
			}
			return &domain.Skill{ID: id}, nil
		}

		_, err := f.service(false).Create(ctx, f.requesterID, f.params())
		assert.ErrorIs(t, err, store.ErrSkillNotFound)
	})

	t.Run("requester_does_not_offer_skill", func(t *testing.T) {
		f := newFixture()
		f.userStore.OffersSkillFn = func(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
			return userID != f.requesterID, nil
		}

		_, err := f.service(false).Create(ctx, f.requesterID, f.params())
		assert.ErrorIs(t, err, ErrSkillNotOffered)
	})

	t.Run("requested_user_does_not_offer_wanted_skill", func(t *testing.T) {
		f := newFixture()
		f.userStore.OffersSkillFn = func(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
			return userID == f.requesterID, nil
		}

		_, err := f.service(false).Create(ctx, f.requesterID, f.params())
		assert.ErrorIs(t, err, ErrSkillNotOfferedByRequested)
	})

	t.Run("duplicate_pending_tuple", func(t *testing.T) {
		f := newFixture()
		f.swapStore.CreateFn = func(ctx context.Context, req *domain.SwapRequest) error {
			return store.ErrDuplicatePendingSwap
		}

		_, err := f.service(false).Create(ctx, f.requesterID, f.params())
		assert.ErrorIs(t, err, ErrDuplicateRequest)
	})
}

func TestSwapService_GetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	req, err := domain.NewSwapRequest(f.requesterID, f.requestedID, f.offeredID, f.wantedID, "")
	require.NoError(t, err)
	f.swapStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
		return req, nil
	}
	svc := f.service(false)

	t.Run("party_can_view", func(t *testing.T) {
		got, err := svc.GetByID(ctx, req.ID, f.requesterID)
		require.NoError(t, err)
		assert.Equal(t, req.ID, got.ID)

		got, err = svc.GetByID(ctx, req.ID, f.requestedID)
		require.NoError(t, err)
		assert.Equal(t, req.ID, got.ID)
	})

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		_, err := svc.GetByID(ctx, req.ID, uuid.New())
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("not_found_passes_through", func(t *testing.T) {
		f2 := newFixture()
		_, err := f2.service(false).GetByID(ctx, uuid.New(), f2.requesterID)
		assert.ErrorIs(t, err, store.ErrSwapNotFound)
	})
}

func statusPtr(s domain.SwapStatus) *domain.SwapStatus { return &s }

func strPtr(s string) *string { return &s }

func TestSwapService_Update_Transitions(t *testing.T) {
	ctx := context.Background()

	setup := func(from domain.SwapStatus) (*fixture, *domain.SwapRequest) {
		f := newFixture()
		req, err := domain.NewSwapRequest(f.requesterID, f.requestedID, f.offeredID, f.wantedID, "")
		require.NoError(t, err)
		req.Status = from
		f.swapStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
			return req, nil
		}
		return f, req
	}

	t.Run("requested_accepts_pending", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		got, err := f.service(false).Update(ctx, req.ID, f.requestedID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusAccepted),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusAccepted, got.Status)
	})

	t.Run("requester_cannot_accept", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		_, err := f.service(false).Update(ctx, req.ID, f.requesterID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusAccepted),
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("requested_rejects_pending", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		got, err := f.service(false).Update(ctx, req.ID, f.requestedID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusRejected),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusRejected, got.Status)
	})

	t.Run("requester_cancels_pending", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		got, err := f.service(false).Update(ctx, req.ID, f.requesterID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusCancelled),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusCancelled, got.Status)
	})

	t.Run("requested_cannot_cancel", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		_, err := f.service(false).Update(ctx, req.ID, f.requestedID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusCancelled),
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("either_party_completes_accepted", func(t *testing.T) {
		for _, actor := range []string{"requester", "requested"} {
			t.Run(actor, func(t *testing.T) {
				f, req := setup(domain.SwapStatusAccepted)
				actorID := f.requesterID
				if actor == "requested" {
					actorID = f.requestedID
				}
				got, err := f.service(false).Update(ctx, req.ID, actorID, domain.SwapPatch{
					Status: statusPtr(domain.SwapStatusCompleted),
				})
				require.NoError(t, err)
				assert.Equal(t, domain.SwapStatusCompleted, got.Status)
			})
		}
	})

	t.Run("completes_directly_from_pending", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		got, err := f.service(false).Update(ctx, req.ID, f.requesterID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusCompleted),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusCompleted, got.Status)
	})

	t.Run("accept_from_terminal_state_rejected", func(t *testing.T) {
		for _, from := range []domain.SwapStatus{
			domain.SwapStatusAccepted,
			domain.SwapStatusRejected,
			domain.SwapStatusCancelled,
			domain.SwapStatusCompleted,
		} {
			t.Run(string(from), func(t *testing.T) {
				f, req := setup(from)
				_, err := f.service(false).Update(ctx, req.ID, f.requestedID, domain.SwapPatch{
					Status: statusPtr(domain.SwapStatusAccepted),
				})
				assert.ErrorIs(t, err, ErrInvalidTransition)
			})
		}
	})

	t.Run("pending_is_not_a_transition_target", func(t *testing.T) {
		f, req := setup(domain.SwapStatusAccepted)
		_, err := f.service(false).Update(ctx, req.ID, f.requesterID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusPending),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("stranger_sees_forbidden_not_state_error", func(t *testing.T) {
		// Even when the transition would also fail the state gate, a
		// non-party actor must get the authorization error.
		f, req := setup(domain.SwapStatusCompleted)
		_, err := f.service(false).Update(ctx, req.ID, uuid.New(), domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusAccepted),
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("permissive_mode_skips_state_gate", func(t *testing.T) {
		f, req := setup(domain.SwapStatusRejected)
		got, err := f.service(true).Update(ctx, req.ID, f.requestedID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusAccepted),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusAccepted, got.Status)
	})

	t.Run("permissive_mode_still_checks_actor", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		_, err := f.service(true).Update(ctx, req.ID, f.requesterID, domain.SwapPatch{
			Status: statusPtr(domain.SwapStatusAccepted),
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestSwapService_Update_Message(t *testing.T) {
	ctx := context.Background()

	t.Run("party_updates_message", func(t *testing.T) {
		f := newFixture()
		req, err := domain.NewSwapRequest(f.requesterID, f.requestedID, f.offeredID, f.wantedID, "old")
		require.NoError(t, err)
		f.swapStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
			return req, nil
		}

		got, err := f.service(false).Update(ctx, req.ID, f.requesterID, domain.SwapPatch{
			Message: strPtr("new message"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new message", got.Message)
		assert.Equal(t, domain.SwapStatusPending, got.Status)
	})

	t.Run("stranger_cannot_update_message", func(t *testing.T) {
		f := newFixture()
		req, err := domain.NewSwapRequest(f.requesterID, f.requestedID, f.offeredID, f.wantedID, "old")
		require.NoError(t, err)
		f.swapStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
			return req, nil
		}

		_, err = f.service(false).Update(ctx, req.ID, uuid.New(), domain.SwapPatch{
			Message: strPtr("sneaky"),
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestSwapService_Delete(t *testing.T) {
	ctx := context.Background()

	setup := func(status domain.SwapStatus) (*fixture, *domain.SwapRequest) {
		f := newFixture()
		req, err := domain.NewSwapRequest(f.requesterID, f.requestedID, f.offeredID, f.wantedID, "")
		require.NoError(t, err)
		req.Status = status
		f.swapStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
			return req, nil
		}
		return f, req
	}

	t.Run("requester_deletes_pending", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		deleted := false
		f.swapStore.DeleteFn = func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		}

		err := f.service(false).Delete(ctx, req.ID, f.requesterID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("requested_cannot_delete", func(t *testing.T) {
		f, req := setup(domain.SwapStatusPending)
		err := f.service(false).Delete(ctx, req.ID, f.requestedID)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("non_pending_cannot_be_deleted", func(t *testing.T) {
		f, req := setup(domain.SwapStatusAccepted)
		err := f.service(false).Delete(ctx, req.ID, f.requesterID)
		assert.ErrorIs(t, err, ErrNotPending)
	})
}

func TestSwapService_ListForUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	var gotParams store.ListSwapsParams
	f.swapStore.ListForUserFn = func(ctx context.Context, userID uuid.UUID, params store.ListSwapsParams) ([]domain.SwapRequest, error) {
		gotParams = params
		return []domain.SwapRequest{}, nil
	}
	svc := f.service(false)

	t.Run("defaults_direction_to_all", func(t *testing.T) {
		_, err := svc.ListForUser(ctx, f.requesterID, ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, store.DirectionAll, gotParams.Direction)
	})

	t.Run("passes_filters_through", func(t *testing.T) {
		status := domain.SwapStatusPending
		_, err := svc.ListForUser(ctx, f.requesterID, ListOptions{
			Status:    &status,
			Direction: store.DirectionSent,
		})
		require.NoError(t, err)
		assert.Equal(t, store.DirectionSent, gotParams.Direction)
		require.NotNil(t, gotParams.Status)
		assert.Equal(t, domain.SwapStatusPending, *gotParams.Status)
	})
}
