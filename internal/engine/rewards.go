package engine

import "github.com/google/uuid"

// AddReward appends a reward to the catalog.
func (e *Engine) AddReward(title string, cost float64) (*RewardItem, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if cost < 0 {
		return nil, ErrNegativeCost
	}

	reward := RewardItem{
		ID:    uuid.NewString(),
		Title: t,
		Cost:  cost,
	}

	e.mu.Lock()
	e.state.Rewards = append(e.state.Rewards, reward)
	e.persistLocked()
	e.enqueue(command{kind: cmdInsertReward, reward: reward})
	e.mu.Unlock()

	return &reward, nil
}

type RedeemResult struct {
	Reward  RewardItem
	Balance float64
}

// Redeem deducts the reward's cost from the balance. The reward is not
// consumed; it can be redeemed again whenever funds allow. An uncovered cost
// returns ErrInsufficientBalance with no state change and no remote write.
func (e *Engine) Redeem(id string) (*RedeemResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.state.rewardIndex(id)
	if idx < 0 {
		return nil, ErrRewardNotFound
	}
	reward := e.state.Rewards[idx]
	if e.state.Balance < reward.Cost {
		return nil, ErrInsufficientBalance
	}

	e.state.Balance -= reward.Cost
	e.persistLocked()
	e.enqueueSettingsLocked()

	return &RedeemResult{Reward: reward, Balance: e.state.Balance}, nil
}

// DeleteReward removes the reward from the catalog. No balance effect.
func (e *Engine) DeleteReward(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.state.rewardIndex(id)
	if idx < 0 {
		return ErrRewardNotFound
	}
	reward := e.state.Rewards[idx]
	e.state.Rewards = append(e.state.Rewards[:idx], e.state.Rewards[idx+1:]...)
	e.persistLocked()
	e.enqueue(command{kind: cmdDeleteReward, reward: reward})
	return nil
}
