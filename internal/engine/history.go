package engine

import (
	"sort"
	"time"
)

type DayEarned struct {
	Date   string
	Amount float64
}

type HistoryStats struct {
	TotalEarned    float64
	TasksCompleted int
	// Last7Days holds one entry per calendar day, oldest first, today last.
	Last7Days []DayEarned
}

// CompletedTasks returns completed tasks, most recent first.
func (e *Engine) CompletedTasks() []GrindItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []GrindItem
	for _, it := range e.state.Items {
		if it.Completed() {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return *out[i].CompletedAt > *out[j].CompletedAt
	})
	return out
}

// History aggregates completed-task earnings: lifetime total, count, and a
// per-day series over the last seven calendar days.
func (e *Engine) History() HistoryStats {
	done := e.CompletedTasks()

	stats := HistoryStats{}
	byDay := map[string]float64{}
	for _, it := range done {
		stats.TotalEarned += it.Value
		stats.TasksCompleted++
		day := DateString(time.UnixMilli(*it.CompletedAt))
		byDay[day] += it.Value
	}

	now := time.Now()
	for i := 6; i >= 0; i-- {
		day := DateString(now.AddDate(0, 0, -i))
		stats.Last7Days = append(stats.Last7Days, DayEarned{Date: day, Amount: byDay[day]})
	}
	return stats
}
