package engine

import "time"

// DateString formats t as a local-timezone calendar date (YYYY-MM-DD).
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the current local calendar date string.
func Today() string {
	return DateString(time.Now())
}

// IsDoneToday reports whether a habit was already credited on the current
// calendar date. There is no midnight reset job: the stored date simply
// stops matching once the day rolls over, and the habit becomes eligible
// again on the next read.
func IsDoneToday(item GrindItem) bool {
	if item.Type != ItemTypeHabit || item.LastCompletedDate == nil {
		return false
	}
	return *item.LastCompletedDate == Today()
}
