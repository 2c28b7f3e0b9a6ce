package engine

// UpdateGoal replaces the goal wholesale.
func (e *Engine) UpdateGoal(goal Goal) error {
	t, err := normalizeTitle(goal.Title)
	if err != nil {
		return err
	}
	goal.Title = t

	e.mu.Lock()
	e.state.Goal = goal
	e.persistLocked()
	e.enqueueSettingsLocked()
	e.mu.Unlock()
	return nil
}
