package engine

import "time"

type CompleteResult struct {
	Item     GrindItem
	Credited float64
	Balance  float64
	// GoalReached is set exactly once per crossing: when this completion
	// carried the balance from below the goal target to at or above it.
	GoalReached bool
}

// CompleteItem credits the item's value to the balance, atomically with the
// item mutation. Tasks keep their row and gain a completion timestamp;
// habits record today's date and become eligible again when the calendar
// date changes. A task already completed, or a habit already credited today,
// returns ErrAlreadyCompleted with no state change and no remote write.
func (e *Engine) CompleteItem(id string) (*CompleteResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.state.itemIndex(id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	item := &e.state.Items[idx]
	now := time.Now()

	switch item.Type {
	case ItemTypeHabit:
		today := DateString(now)
		if item.LastCompletedDate != nil && *item.LastCompletedDate == today {
			return nil, ErrAlreadyCompleted
		}
		item.LastCompletedDate = &today
	default:
		if item.CompletedAt != nil {
			return nil, ErrAlreadyCompleted
		}
		ms := now.UnixMilli()
		item.CompletedAt = &ms
	}

	before := e.state.Balance
	e.state.Balance += item.Value
	target := e.state.Goal.TargetAmount
	reached := e.state.Balance >= target && before < target

	e.persistLocked()
	e.enqueue(command{kind: cmdUpdateItemCompletion, item: *item})
	e.enqueueSettingsLocked()

	return &CompleteResult{
		Item:        *item,
		Credited:    item.Value,
		Balance:     e.state.Balance,
		GoalReached: reached,
	}, nil
}
