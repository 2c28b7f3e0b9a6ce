package engine

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrRewardNotFound = errors.New("reward not found")

	// ErrAlreadyCompleted covers both a task that already carries a
	// completion timestamp and a habit already credited today. The balance
	// is never credited twice for either.
	ErrAlreadyCompleted = errors.New("item already completed")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrEmptyTitle          = errors.New("title is required")
	ErrNegativeCost        = errors.New("cost must be non-negative")
	ErrInvalidItemType     = errors.New("invalid item type")
)
