package engine

import (
	"context"
	"fmt"
	"strconv"
)

// Reconcile replaces the local state with freshly fetched remote state.
// Called once when a remote identity becomes active, before any mutation is
// accepted, so there are no in-flight local changes to lose. Remote is
// authoritative: there is no field-by-field merge.
//
// On fetch failure the cached snapshot stays in effect and the error is
// returned for the collaborator to log; the engine remains usable.
func (e *Engine) Reconcile(ctx context.Context) error {
	if e.remote == nil {
		return nil
	}

	set, err := e.remote.GetOrCreateSettings(ctx, e.scope, DefaultGoalTitle, DefaultGoalTarget)
	if err != nil {
		return fmt.Errorf("reconcile settings: %w", err)
	}
	rows, err := e.remote.ListItems(ctx, e.scope)
	if err != nil {
		return fmt.Errorf("reconcile items: %w", err)
	}
	rewardRows, err := e.remote.ListRewards(ctx, e.scope)
	if err != nil {
		return fmt.Errorf("reconcile rewards: %w", err)
	}

	st := &AppState{
		Balance: set.Balance,
		Goal:    Goal{Title: set.GoalTitle, TargetAmount: set.GoalAmount},
		Items:   make([]GrindItem, 0, len(rows)),
		Rewards: make([]RewardItem, 0, len(rewardRows)),
	}
	for _, r := range rows {
		st.Items = append(st.Items, GrindItem{
			ID:                strconv.FormatInt(r.ID, 10),
			Title:             r.Title,
			Value:             r.Value,
			Type:              ItemType(r.Type),
			CreatedAt:         r.CreatedAt,
			CompletedAt:       r.CompletedAt,
			LastCompletedDate: r.LastCompletedDate,
		})
	}
	for _, r := range rewardRows {
		st.Rewards = append(st.Rewards, RewardItem{
			ID:    strconv.FormatInt(r.ID, 10),
			Title: r.Title,
			Cost:  r.Cost,
		})
	}

	e.mu.Lock()
	e.state = st
	e.clearRemoteIDs()
	e.persistLocked()
	e.mu.Unlock()
	return nil
}
