package remote

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Store) GetSettings(ctx context.Context, userID string) (*Settings, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, balance, goal_title, goal_amount
		FROM settings
		WHERE user_id = ?
	`, userID)

	var set Settings
	if err := row.Scan(&set.UserID, &set.Balance, &set.GoalTitle, &set.GoalAmount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("settings get: %w", err)
	}
	return &set, nil
}

// GetOrCreateSettings returns the settings row for userID, creating a
// default row first when the user has never synced. First-time remote users
// have no row yet, so load must be an upsert-or-create, not a plain read.
func (s *Store) GetOrCreateSettings(ctx context.Context, userID string, goalTitle string, goalAmount float64) (*Settings, error) {
	set, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if set != nil {
		return set, nil
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (user_id, balance, goal_title, goal_amount)
		VALUES (?, 0, ?, ?)
	`, userID, goalTitle, goalAmount); err != nil {
		return nil, fmt.Errorf("settings insert: %w", err)
	}
	return s.GetSettings(ctx, userID)
}

func (s *Store) UpdateSettings(ctx context.Context, set *Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (user_id, balance, goal_title, goal_amount)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			balance = excluded.balance,
			goal_title = excluded.goal_title,
			goal_amount = excluded.goal_amount
	`, set.UserID, set.Balance, set.GoalTitle, set.GoalAmount)
	if err != nil {
		return fmt.Errorf("settings update: %w", err)
	}
	return nil
}
