package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devffelix/selfbank/internal/engine"
)

// RunBoard opens the interactive dashboard over an already-constructed
// engine. The board never touches state directly, only engine operations.
func RunBoard(eng *engine.Engine, out io.Writer) error {
	m := newBoardModel(eng)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
