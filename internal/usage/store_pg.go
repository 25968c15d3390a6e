package usage

import (
	"context"
	"database/sql"
	"errors"
)

type pgStore struct {
	DB *sql.DB
}

func (s *pgStore) Get(ctx context.Context, userID string, def Usage) (Usage, error) {
	return s.ensure(ctx, userID, def)
}

func (s *pgStore) Consume(ctx context.Context, userID string, n int, def Usage) (Usage, error) {
	if n <= 0 {
		return s.ensure(ctx, userID, def)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := s.lockAndEnsure(ctx, tx, userID, def)
	if err != nil {
		return Usage{}, err
	}

	if u.Used+n > u.Limit {
		err = ErrLimitReached
		return Usage{}, err
	}
	u.Used += n
	if _, err = tx.ExecContext(ctx, `
UPDATE usage_counters SET used = $1 WHERE user_id = $2`, u.Used, userID); err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Reset(ctx context.Context, userID string, def Usage) (Usage, error) {
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO usage_counters (user_id, plan, limit_amount, used, resets_at)
VALUES ($1, $2, $3, 0, $4)
ON CONFLICT (user_id) DO UPDATE
SET plan = EXCLUDED.plan, limit_amount = EXCLUDED.limit_amount, used = 0, resets_at = EXCLUDED.resets_at`,
		userID, def.Plan, def.Limit, def.ResetsAt)
	if err != nil {
		return Usage{}, err
	}
	return def, nil
}

func (s *pgStore) ensure(ctx context.Context, userID string, def Usage) (Usage, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	u, err := s.lockAndEnsure(ctx, tx, userID, def)
	if err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, userID string, def Usage) (Usage, error) {
	var u Usage
	row := tx.QueryRowContext(ctx, `
SELECT plan, limit_amount, used, resets_at FROM usage_counters WHERE user_id = $1 FOR UPDATE`, userID)
	err := row.Scan(&u.Plan, &u.Limit, &u.Used, &u.ResetsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, err = tx.ExecContext(ctx, `
INSERT INTO usage_counters (user_id, plan, limit_amount, used, resets_at) VALUES ($1, $2, $3, $4, $5)`,
				userID, def.Plan, def.Limit, def.Used, def.ResetsAt); err != nil {
				return Usage{}, err
			}
			return def, nil
		}
		return Usage{}, err
	}

	now := nowUTC()
	if now.After(u.ResetsAt) || now.Equal(u.ResetsAt) {
		u.Used = 0
		u.ResetsAt = def.ResetsAt
		if _, err = tx.ExecContext(ctx, `
UPDATE usage_counters SET used = $1, resets_at = $2 WHERE user_id = $3`, u.Used, u.ResetsAt, userID); err != nil {
			return Usage{}, err
		}
	}
	// The stored plan follows the configured limits.
	if u.Plan != def.Plan || u.Limit != def.Limit {
		u.Plan = def.Plan
		u.Limit = def.Limit
		if _, err = tx.ExecContext(ctx, `
UPDATE usage_counters SET plan = $1, limit_amount = $2 WHERE user_id = $3`, u.Plan, u.Limit, userID); err != nil {
			return Usage{}, err
		}
	}
	return u, nil
}
