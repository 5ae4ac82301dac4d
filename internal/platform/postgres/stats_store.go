package postgres

import (
	"context"
	"log/slog"

	"github.com/jashmevada/skill-swap-platform/internal/store"
)

// PostgresStatsStore implements the store.StatsStore interface. It is purely
// read-only rollup queries for administrative reporting.
type PostgresStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatsStore creates a new PostgreSQL implementation of the
// StatsStore interface.
func NewPostgresStatsStore(db store.DBTX, logger *slog.Logger) *PostgresStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// CountUsers implements store.StatsStore.CountUsers
func (s *PostgresStatsStore) CountUsers(ctx context.Context) (store.UserCounts, error) {
	var counts store.UserCounts
	query := `
		SELECT count(*), count(*) FILTER (WHERE is_active)
		FROM users
	`
	if err := s.db.QueryRowContext(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return store.UserCounts{}, MapError(err)
	}
	return counts, nil
}

// CountSkills implements store.StatsStore.CountSkills
func (s *PostgresStatsStore) CountSkills(ctx context.Context) (store.SkillCounts, error) {
	var counts store.SkillCounts
	query := `
		SELECT count(*), count(*) FILTER (WHERE NOT is_approved)
		FROM skills
	`
	if err := s.db.QueryRowContext(ctx, query).Scan(&counts.Total, &counts.Pending); err != nil {
		return store.SkillCounts{}, MapError(err)
	}
	return counts, nil
}

// CountSwaps implements store.StatsStore.CountSwaps
func (s *PostgresStatsStore) CountSwaps(ctx context.Context) (store.SwapCounts, error) {
	var counts store.SwapCounts
	query := `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'completed')
		FROM swap_requests
	`
	err := s.db.QueryRowContext(ctx, query).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.Completed,
	)
	if err != nil {
		return store.SwapCounts{}, MapError(err)
	}
	return counts, nil
}

// FeedbackStats implements store.StatsStore.FeedbackStats
//
// COALESCE pins every aggregate to zero when the table is empty, so an empty
// ledger reports zeros rather than NULL scan failures.
func (s *PostgresStatsStore) FeedbackStats(ctx context.Context) (store.FeedbackStats, error) {
	var stats store.FeedbackStats
	query := `
		SELECT count(*),
			COALESCE(avg(rating), 0),
			COALESCE(min(rating), 0),
			COALESCE(max(rating), 0)
		FROM feedback
	`
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.AverageRating,
		&stats.MinRating,
		&stats.MaxRating,
	)
	if err != nil {
		return store.FeedbackStats{}, MapError(err)
	}
	return stats, nil
}

// UserActivity implements store.StatsStore.UserActivity
func (s *PostgresStatsStore) UserActivity(ctx context.Context) ([]store.UserActivity, error) {
	query := `
		SELECT u.id, u.username, u.email, u.created_at, u.is_active,
			count(sr.id)
		FROM users u
		LEFT JOIN swap_requests sr
			ON sr.requester_id = u.id OR sr.requested_id = u.id
		GROUP BY u.id, u.username, u.email, u.created_at, u.is_active
		ORDER BY u.created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	report := []store.UserActivity{}
	for rows.Next() {
		var row store.UserActivity
		err := rows.Scan(
			&row.UserID,
			&row.Username,
			&row.Email,
			&row.CreatedAt,
			&row.IsActive,
			&row.TotalRequests,
		)
		if err != nil {
			return nil, MapError(err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return report, nil
}
