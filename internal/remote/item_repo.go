package remote

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *Store) InsertItem(ctx context.Context, in ItemInsert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO items (user_id, title, value, type, created_at, last_completed_date, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.UserID, in.Title, in.Value, in.Type, in.CreatedAt, in.LastCompletedDate, in.CompletedAt)
	if err != nil {
		return 0, fmt.Errorf("item insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("item last insert id: %w", err)
	}
	return id, nil
}

// ListItems returns every item row for the user, completed tasks included;
// they stay visible in history views.
func (s *Store) ListItems(ctx context.Context, userID string) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, value, type, created_at, last_completed_date, completed_at
		FROM items
		WHERE user_id = ?
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("item list: %w", err)
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("item list rows: %w", err)
	}
	return out, nil
}

// UpdateItemCompletion overwrites the completion fields of an item row. A
// nil pointer clears the corresponding column.
func (s *Store) UpdateItemCompletion(ctx context.Context, id int64, completedAt *int64, lastCompletedDate *string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET completed_at = ?, last_completed_date = ?
		WHERE id = ?
	`, completedAt, lastCompletedDate, id)
	if err != nil {
		return fmt.Errorf("item update completion: %w", err)
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("item delete: %w", err)
	}
	return nil
}

func scanItem(rows *sql.Rows) (*Item, error) {
	var (
		it       Item
		lastDate sql.NullString
		compAt   sql.NullInt64
	)
	if err := rows.Scan(&it.ID, &it.UserID, &it.Title, &it.Value, &it.Type, &it.CreatedAt, &lastDate, &compAt); err != nil {
		return nil, fmt.Errorf("item scan: %w", err)
	}
	if lastDate.Valid {
		v := lastDate.String
		it.LastCompletedDate = &v
	}
	if compAt.Valid {
		v := compAt.Int64
		it.CompletedAt = &v
	}
	return &it, nil
}
