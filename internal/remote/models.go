package remote

// Settings is the one-per-user row carrying balance and goal.
type Settings struct {
	UserID     string
	Balance    float64
	GoalTitle  string
	GoalAmount float64
}

type Item struct {
	ID                int64
	UserID            string
	Title             string
	Value             float64
	Type              string
	CreatedAt         int64 // epoch milliseconds
	LastCompletedDate *string
	CompletedAt       *int64
}

type ItemInsert struct {
	UserID            string
	Title             string
	Value             float64
	Type              string
	CreatedAt         int64
	LastCompletedDate *string
	CompletedAt       *int64
}

type Reward struct {
	ID     int64
	UserID string
	Title  string
	Cost   float64
}

type RewardInsert struct {
	UserID string
	Title  string
	Cost   float64
}
