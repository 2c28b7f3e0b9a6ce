package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devffelix/selfbank/internal/engine"
)

func TestParseAddInput(t *testing.T) {
	title, amount, err := parseAddInput("Clean desk = 30")
	require.NoError(t, err)
	require.Equal(t, "Clean desk", title)
	require.Equal(t, 30.0, amount)

	title, amount, err = parseAddInput("Just a title")
	require.NoError(t, err)
	require.Equal(t, "Just a title", title)
	require.Equal(t, 0.0, amount)

	// The last "=" splits, so titles may contain one.
	title, amount, err = parseAddInput("a = b = 5")
	require.NoError(t, err)
	require.Equal(t, "a = b", title)
	require.Equal(t, 5.0, amount)

	_, _, err = parseAddInput(" = 5")
	require.Error(t, err)

	_, _, err = parseAddInput("x = not-a-number")
	require.Error(t, err)
}

func TestRowsFilterBySection(t *testing.T) {
	eng := engine.New("test", nil, nil)
	defer eng.Close()

	_, err := eng.AddItem("Stretch", 10, engine.ItemTypeHabit)
	require.NoError(t, err)
	task, err := eng.AddItem("Ship report", 50, engine.ItemTypeTask)
	require.NoError(t, err)
	_, err = eng.AddReward("Movie night", 30)
	require.NoError(t, err)

	m := newBoardModel(eng)

	m.section = sectionHabits
	require.Len(t, m.rows(), 1)

	m.section = sectionTasks
	require.Len(t, m.rows(), 1)

	m.section = sectionShop
	require.Len(t, m.rows(), 1)

	// Completed tasks drop off the task section.
	_, err = eng.CompleteItem(task.ID)
	require.NoError(t, err)
	m = m.refresh()
	m.section = sectionTasks
	require.Empty(t, m.rows())
}

func TestActSelectedCompletes(t *testing.T) {
	eng := engine.New("test", nil, nil)
	defer eng.Close()

	_, err := eng.AddItem("Stretch", 10, engine.ItemTypeHabit)
	require.NoError(t, err)

	m := newBoardModel(eng)
	m.section = sectionHabits
	m = m.actSelected()

	require.Equal(t, 10.0, eng.Snapshot().Balance)

	// A second press the same day is refused without crediting again.
	m = m.actSelected()
	require.Equal(t, "Already done today.", m.lastLog)
	require.Equal(t, 10.0, eng.Snapshot().Balance)
}
