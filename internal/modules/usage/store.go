package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_usage persistence.
type Store struct {
	db    *pgxpool.Pool
	limit int
}

// NewStore returns a Store backed by the given connection pool. limit <= 0
// falls back to DefaultMonthlyPlans.
func NewStore(db *pgxpool.Pool, limit int) *Store {
	if limit <= 0 {
		limit = DefaultMonthlyPlans
	}
	return &Store{db: db, limit: limit}
}

// UseCredit atomically checks the monthly quota and deducts one generation.
// It resets the counter to the limit when last_reset_month is behind the
// current month. Returns ErrQuotaExceeded when 0 rows are updated (quota
// exhausted or user absent).
func (s *Store) UseCredit(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_usage SET
			plans_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE plans_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR plans_remaining > 0)
	`, now, s.limit, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExceeded
	}
	return nil
}

// EnsureUser inserts a new plan_usage row for uid with the full allowance.
// If the row already exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_usage (uid, plans_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, s.limit, time.Now().Format("2006-01"))
	return err
}
