package remote

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			user_id TEXT PRIMARY KEY,
			balance REAL NOT NULL DEFAULT 0,
			goal_title TEXT NOT NULL DEFAULT '',
			goal_amount REAL NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			value REAL NOT NULL DEFAULT 0,
			type TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			last_completed_date TEXT,
			completed_at INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			cost REAL NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_user_id ON rewards(user_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
