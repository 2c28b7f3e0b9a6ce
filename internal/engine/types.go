package engine

import "time"

type ItemType string

const (
	ItemTypeTask  ItemType = "TASK"
	ItemTypeHabit ItemType = "HABIT"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeTask, ItemTypeHabit:
		return true
	default:
		return false
	}
}

// GrindItem is a schedulable unit of work. Tasks complete once and stay in
// the collection with CompletedAt set; habits are credited at most once per
// calendar day, tracked by LastCompletedDate.
type GrindItem struct {
	ID                string   `json:"id" yaml:"id"`
	Title             string   `json:"title" yaml:"title"`
	Value             float64  `json:"value" yaml:"value"`
	Type              ItemType `json:"type" yaml:"type"`
	CreatedAt         int64    `json:"createdAt" yaml:"createdAt"` // epoch milliseconds
	CompletedAt       *int64   `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	LastCompletedDate *string  `json:"lastCompletedDate,omitempty" yaml:"lastCompletedDate,omitempty"`
}

// Completed reports whether a task item has been completed. Always false for
// habits; their recurrence is answered by IsDoneToday.
func (g GrindItem) Completed() bool {
	return g.Type == ItemTypeTask && g.CompletedAt != nil
}

// RewardItem is a catalog entry, redeemable repeatedly as long as the
// balance covers its cost. Redemption never consumes it.
type RewardItem struct {
	ID    string  `json:"id" yaml:"id"`
	Title string  `json:"title" yaml:"title"`
	Cost  float64 `json:"cost" yaml:"cost"`
}

type Goal struct {
	Title        string  `json:"title" yaml:"title"`
	TargetAmount float64 `json:"targetAmount" yaml:"targetAmount"`
}

// AppState is the root aggregate, one instance per user scope.
type AppState struct {
	Balance float64      `json:"balance" yaml:"balance"`
	Goal    Goal         `json:"goal" yaml:"goal"`
	Items   []GrindItem  `json:"items" yaml:"items"`
	Rewards []RewardItem `json:"rewards" yaml:"rewards"`
}

const (
	DefaultGoalTitle  = "New Goal"
	DefaultGoalTarget = 1000
)

func DefaultState() *AppState {
	return &AppState{
		Goal:    Goal{Title: DefaultGoalTitle, TargetAmount: DefaultGoalTarget},
		Items:   []GrindItem{},
		Rewards: []RewardItem{},
	}
}

// ProgressPercent returns balance/target as a percentage, capped at 100.
// A zero target is treated as 1 to avoid division by zero.
func (s *AppState) ProgressPercent() float64 {
	target := s.Goal.TargetAmount
	if target == 0 {
		target = 1
	}
	p := s.Balance / target * 100
	if p > 100 {
		p = 100
	}
	return p
}

// Clone returns a deep copy safe to hand to collaborators.
func (s *AppState) Clone() AppState {
	out := AppState{Balance: s.Balance, Goal: s.Goal}
	out.Items = make([]GrindItem, len(s.Items))
	copy(out.Items, s.Items)
	out.Rewards = make([]RewardItem, len(s.Rewards))
	copy(out.Rewards, s.Rewards)
	return out
}

func (s *AppState) itemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AppState) rewardIndex(id string) int {
	for i := range s.Rewards {
		if s.Rewards[i].ID == id {
			return i
		}
	}
	return -1
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
