package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserCounts aggregates users by active status.
type UserCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// SkillCounts aggregates skills by approval status.
type SkillCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// SwapCounts aggregates swap requests by status.
type SwapCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// FeedbackStats aggregates ratings across all feedback. All fields are zero
// when no feedback exists.
type FeedbackStats struct {
	Total         int     `json:"total_feedback"`
	AverageRating float64 `json:"average_rating"`
	MinRating     int     `json:"min_rating"`
	MaxRating     int     `json:"max_rating"`
}

// UserActivity is one row of the per-user swap involvement report.
type UserActivity struct {
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	IsActive      bool      `json:"is_active"`
	TotalRequests int       `json:"total_requests"`
}

// StatsStore provides read-only rollups for administrative reporting. It has
// no mutation operations and no invariants beyond correct aggregation
// arithmetic.
type StatsStore interface {
	// CountUsers returns user totals by active status.
	CountUsers(ctx context.Context) (UserCounts, error)

	// CountSkills returns skill totals by approval status.
	CountSkills(ctx context.Context) (SkillCounts, error)

	// CountSwaps returns swap request totals by status.
	CountSwaps(ctx context.Context) (SwapCounts, error)

	// FeedbackStats returns rating aggregates across all feedback.
	FeedbackStats(ctx context.Context) (FeedbackStats, error)

	// UserActivity returns per-user swap involvement (requests sent or
	// received), one row per user.
	UserActivity(ctx context.Context) ([]UserActivity, error)
}
