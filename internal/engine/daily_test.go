package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	d := time.Date(2026, time.March, 7, 23, 59, 0, 0, time.Local)
	require.Equal(t, "2026-03-07", DateString(d))
}

func TestIsDoneToday(t *testing.T) {
	habit := GrindItem{Type: ItemTypeHabit}
	require.False(t, IsDoneToday(habit), "no completion date yet")

	today := Today()
	habit.LastCompletedDate = &today
	require.True(t, IsDoneToday(habit))

	yesterday := DateString(time.Now().AddDate(0, 0, -1))
	habit.LastCompletedDate = &yesterday
	require.False(t, IsDoneToday(habit), "resets when the calendar date changes")
}

func TestIsDoneTodayIgnoresTasks(t *testing.T) {
	today := Today()
	task := GrindItem{Type: ItemTypeTask, LastCompletedDate: &today}
	require.False(t, IsDoneToday(task))
}
