package mocks

import (
	"context"

	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// MockStatsStore implements store.StatsStore for testing
type MockStatsStore struct {
	CountUsersFn    func(ctx context.Context) (store.UserCounts, error)
	CountSkillsFn   func(ctx context.Context) (store.SkillCounts, error)
	CountSwapsFn    func(ctx context.Context) (store.SwapCounts, error)
	FeedbackStatsFn func(ctx context.Context) (store.FeedbackStats, error)
	UserActivityFn  func(ctx context.Context) ([]store.UserActivity, error)
}

var _ store.StatsStore = (*MockStatsStore)(nil)

func (m *MockStatsStore) CountUsers(ctx context.Context) (store.UserCounts, error) {
	if m.CountUsersFn != nil {
		return m.CountUsersFn(ctx)
	}
	return store.UserCounts{}, nil
}

func (m *MockStatsStore) CountSkills(ctx context.Context) (store.SkillCounts, error) {
	if m.CountSkillsFn != nil {
		return m.CountSkillsFn(ctx)
	}
	return store.SkillCounts{}, nil
}

func (m *MockStatsStore) CountSwaps(ctx context.Context) (store.SwapCounts, error) {
	if m.CountSwapsFn != nil {
		return m.CountSwapsFn(ctx)
	}
	return store.SwapCounts{}, nil
}

func (m *MockStatsStore) FeedbackStats(ctx context.Context) (store.FeedbackStats, error) {
	if m.FeedbackStatsFn != nil {
		return m.FeedbackStatsFn(ctx)
	}
	return store.FeedbackStats{}, nil
}

func (m *MockStatsStore) UserActivity(ctx context.Context) ([]store.UserActivity, error) {
	if m.UserActivityFn != nil {
		return m.UserActivityFn(ctx)
	}
	return nil, nil
}
