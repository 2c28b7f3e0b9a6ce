package remote

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx runs fn inside a SQL transaction.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

// ResetUser deletes every item and reward row for the user and resets the
// settings row to the given defaults, atomically. This is the only bulk
// deletion the gateway performs.
func (s *Store) ResetUser(ctx context.Context, userID string, goalTitle string, goalAmount float64) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("reset items: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM rewards WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("reset rewards: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (user_id, balance, goal_title, goal_amount)
			VALUES (?, 0, ?, ?)
			ON CONFLICT(user_id) DO UPDATE SET
				balance = 0,
				goal_title = excluded.goal_title,
				goal_amount = excluded.goal_amount
		`, userID, goalTitle, goalAmount); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
		return nil
	})
}
