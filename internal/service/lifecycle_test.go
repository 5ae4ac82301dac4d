package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashmevada/skill-swap-platform/internal/domain"
	"github.com/jashmevada/skill-swap-platform/internal/mocks"
	"github.com/jashmevada/skill-swap-platform/internal/service/swap"
	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// lifecycleWorld wires the swap engine and the feedback ledger over stateful
// in-memory stores so a full request lifecycle can run end to end.
type lifecycleWorld struct {
	alice domain.User // offers guitar
	bob   domain.User // offers spanish

	guitarID  uuid.UUID
	spanishID uuid.UUID

	swapStore *mocks.MockSwapStore
	swapSvc   swap.SwapService
	fbSvc     FeedbackService
}

func newLifecycleWorld(t *testing.T, permissive bool) *lifecycleWorld {
	t.Helper()

	w := &lifecycleWorld{
		alice:     domain.User{ID: uuid.New(), Username: "alice", IsActive: true},
		bob:       domain.User{ID: uuid.New(), Username: "bob", IsActive: true},
		guitarID:  uuid.New(),
		spanishID: uuid.New(),
	}

	users := map[uuid.UUID]*domain.User{w.alice.ID: &w.alice, w.bob.ID: &w.bob}
	offered := map[uuid.UUID]uuid.UUID{
		w.alice.ID: w.guitarID,
		w.bob.ID:   w.spanishID,
	}
	skills := map[uuid.UUID]*domain.Skill{
		w.guitarID:  {ID: w.guitarID, Name: "Guitar", IsApproved: true},
		w.spanishID: {ID: w.spanishID, Name: "Spanish", IsApproved: true},
	}

	userStore := &mocks.MockUserStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, store.ErrUserNotFound
		},
		OffersSkillFn: func(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
			return offered[userID] == skillID, nil
		},
	}
	skillStore := &mocks.MockSkillStore{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
			if sk, ok := skills[id]; ok {
				return sk, nil
			}
			return nil, store.ErrSkillNotFound
		},
	}

	requests := make(map[uuid.UUID]*domain.SwapRequest)
	w.swapStore = &mocks.MockSwapStore{
		CreateFn: func(ctx context.Context, req *domain.SwapRequest) error {
			for _, existing := range requests {
				if existing.Status == domain.SwapStatusPending &&
					existing.RequesterID == req.RequesterID &&
					existing.RequestedID == req.RequestedID &&
					existing.SkillOfferedID == req.SkillOfferedID &&
					existing.SkillWantedID == req.SkillWantedID {
					return store.ErrDuplicatePendingSwap
				}
			}
			copied := *req
			requests[req.ID] = &copied
			return nil
		},
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.SwapRequest, error) {
			if req, ok := requests[id]; ok {
				copied := *req
				return &copied, nil
			}
			return nil, store.ErrSwapNotFound
		},
		UpdateFn: func(ctx context.Context, req *domain.SwapRequest) error {
			if _, ok := requests[req.ID]; !ok {
				return store.ErrSwapNotFound
			}
			copied := *req
			requests[req.ID] = &copied
			return nil
		},
	}

	ledger := make([]domain.Feedback, 0)
	feedbackStore := &mocks.MockFeedbackStore{
		CreateFn: func(ctx context.Context, fb *domain.Feedback) error {
			ledger = append(ledger, *fb)
			return nil
		},
		ListForSwapFn: func(ctx context.Context, swapID uuid.UUID) ([]domain.Feedback, error) {
			var out []domain.Feedback
			for _, fb := range ledger {
				if fb.SwapRequestID == swapID {
					out = append(out, fb)
				}
			}
			return out, nil
		},
	}

	w.swapSvc = swap.NewSwapService(w.swapStore, userStore, skillStore, permissive, testLogger())
	w.fbSvc = NewFeedbackService(feedbackStore, w.swapStore, testLogger())
	return w
}

func lifecycleStatus(s domain.SwapStatus) *domain.SwapStatus { return &s }

func TestSwapLifecycle_AcceptCompleteFeedback(t *testing.T) {
	ctx := context.Background()
	w := newLifecycleWorld(t, false)

	created, err := w.swapSvc.Create(ctx, w.alice.ID, swap.CreateSwapParams{
		RequestedID:    w.bob.ID,
		SkillOfferedID: w.guitarID,
		SkillWantedID:  w.spanishID,
		Message:        "trade lessons?",
	})
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusPending, created.Status)

	// An identical pending tuple is rejected while the first is open.
	_, err = w.swapSvc.Create(ctx, w.alice.ID, swap.CreateSwapParams{
		RequestedID:    w.bob.ID,
		SkillOfferedID: w.guitarID,
		SkillWantedID:  w.spanishID,
	})
	require.ErrorIs(t, err, swap.ErrDuplicateRequest)

	accepted, err := w.swapSvc.Update(ctx, created.ID, w.bob.ID, domain.SwapPatch{
		Status: lifecycleStatus(domain.SwapStatusAccepted),
	})
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusAccepted, accepted.Status)

	completed, err := w.swapSvc.Update(ctx, created.ID, w.alice.ID, domain.SwapPatch{
		Status: lifecycleStatus(domain.SwapStatusCompleted),
	})
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusCompleted, completed.Status)

	// Once the tuple is no longer pending a fresh request may be opened.
	_, err = w.swapSvc.Create(ctx, w.alice.ID, swap.CreateSwapParams{
		RequestedID:    w.bob.ID,
		SkillOfferedID: w.guitarID,
		SkillWantedID:  w.spanishID,
	})
	require.NoError(t, err)

	_, err = w.fbSvc.Submit(ctx, SubmitFeedbackParams{
		SwapRequestID: created.ID,
		GiverID:       w.alice.ID,
		ReceiverID:    w.bob.ID,
		Rating:        5,
		Comment:       "patient and well prepared",
	})
	require.NoError(t, err)

	_, err = w.fbSvc.Submit(ctx, SubmitFeedbackParams{
		SwapRequestID: created.ID,
		GiverID:       w.bob.ID,
		ReceiverID:    w.alice.ID,
		Rating:        5,
	})
	require.NoError(t, err)

	ledger, err := w.fbSvc.ListForSwap(ctx, created.ID, w.alice.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	for _, fb := range ledger {
		assert.Equal(t, 5, fb.Rating)
	}

	_, err = w.fbSvc.ListForSwap(ctx, created.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestSwapLifecycle_CancelledRequestStaysClosed(t *testing.T) {
	ctx := context.Background()
	w := newLifecycleWorld(t, false)

	created, err := w.swapSvc.Create(ctx, w.alice.ID, swap.CreateSwapParams{
		RequestedID:    w.bob.ID,
		SkillOfferedID: w.guitarID,
		SkillWantedID:  w.spanishID,
	})
	require.NoError(t, err)

	cancelled, err := w.swapSvc.Update(ctx, created.ID, w.alice.ID, domain.SwapPatch{
		Status: lifecycleStatus(domain.SwapStatusCancelled),
	})
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusCancelled, cancelled.Status)

	_, err = w.swapSvc.Update(ctx, created.ID, w.bob.ID, domain.SwapPatch{
		Status: lifecycleStatus(domain.SwapStatusAccepted),
	})
	require.ErrorIs(t, err, swap.ErrInvalidTransition)

	// The legacy compatibility mode drops the state gate but still holds the
	// actor line: the requested party may accept, the requester may not.
	permissive := swap.NewSwapService(w.swapStore, &mocks.MockUserStore{}, &mocks.MockSkillStore{}, true, testLogger())

	_, err = permissive.Update(ctx, created.ID, w.alice.ID, domain.SwapPatch{
		Status: lifecycleStatus(domain.SwapStatusAccepted),
	})
	require.ErrorIs(t, err, swap.ErrNotAuthorized)

	reopened, err := permissive.Update(ctx, created.ID, w.bob.ID, domain.SwapPatch{
		Status: lifecycleStatus(domain.SwapStatusAccepted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SwapStatusAccepted, reopened.Status)
}
