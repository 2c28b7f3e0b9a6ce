package engine

// ResetAll replaces the state with the zero-value default and, when
// remote-backed, deletes every remote row for this user. Irreversible; the
// collaborator boundary gates it behind an explicit confirmation.
func (e *Engine) ResetAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = DefaultState()
	e.clearRemoteIDs()
	e.persistLocked()
	e.enqueue(command{kind: cmdResetUser, goal: e.state.Goal})
	return nil
}

// ImportState replaces the state wholesale, then rebuilds the remote rows:
// purge, re-insert items and rewards, re-save settings. Used by snapshot
// import; same confirmation class as ResetAll.
func (e *Engine) ImportState(st AppState) {
	if st.Items == nil {
		st.Items = []GrindItem{}
	}
	if st.Rewards == nil {
		st.Rewards = []RewardItem{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = &st
	e.clearRemoteIDs()
	e.persistLocked()

	e.enqueue(command{kind: cmdResetUser, goal: st.Goal})
	for _, it := range st.Items {
		e.enqueue(command{kind: cmdInsertItem, item: it})
	}
	for _, r := range st.Rewards {
		e.enqueue(command{kind: cmdInsertReward, reward: r})
	}
	e.enqueueSettingsLocked()
}
