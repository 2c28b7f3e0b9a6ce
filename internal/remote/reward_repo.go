package remote

import (
	"context"
	"fmt"
)

func (s *Store) InsertReward(ctx context.Context, in RewardInsert) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO rewards (user_id, title, cost)
		VALUES (?, ?, ?)
	`, in.UserID, in.Title, in.Cost)
	if err != nil {
		return 0, fmt.Errorf("reward insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reward last insert id: %w", err)
	}
	return id, nil
}

func (s *Store) ListRewards(ctx context.Context, userID string) ([]Reward, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, cost
		FROM rewards
		WHERE user_id = ?
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("reward list: %w", err)
	}
	defer rows.Close()

	var out []Reward
	for rows.Next() {
		var r Reward
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Cost); err != nil {
			return nil, fmt.Errorf("reward scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reward list rows: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteReward(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM rewards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reward delete: %w", err)
	}
	return nil
}
