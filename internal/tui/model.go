package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devffelix/selfbank/internal/engine"
	"github.com/devffelix/selfbank/internal/ui"
)

type section int

const (
	sectionHabits section = iota
	sectionTasks
	sectionShop
)

func (s section) title() string {
	switch s {
	case sectionHabits:
		return ui.IconHabit + " Daily Habits"
	case sectionTasks:
		return ui.IconTask + " Task List"
	default:
		return ui.IconShop + " Shop"
	}
}

type boardModel struct {
	eng   *engine.Engine
	state engine.AppState

	width  int
	height int

	section  section
	selected int

	adding bool
	input  textinput.Model

	lastLog string
}

func newBoardModel(eng *engine.Engine) boardModel {
	in := textinput.New()
	in.Placeholder = "title = value (e.g. Clean desk = 30)"
	in.CharLimit = 120

	return boardModel{
		eng:     eng,
		state:   eng.Snapshot(),
		input:   in,
		lastLog: "Ready.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) refresh() boardModel {
	m.state = m.eng.Snapshot()
	rows := m.rows()
	if m.selected >= len(rows) {
		m.selected = len(rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.section = (m.section + 1) % 3
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}
			return m, nil
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "d":
			return m.deleteSelected(), nil
		case "enter", " ":
			return m.actSelected(), nil
		}
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		title, amount, err := parseAddInput(m.input.Value())
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		switch m.section {
		case sectionShop:
			_, err = m.eng.AddReward(title, amount)
		case sectionHabits:
			_, err = m.eng.AddItem(title, amount, engine.ItemTypeHabit)
		default:
			_, err = m.eng.AddItem(title, amount, engine.ItemTypeTask)
		}
		if err != nil {
			m.lastLog = "Add failed: " + err.Error()
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.lastLog = fmt.Sprintf("Added %q.", title)
		return m.refresh(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseAddInput splits "title = amount"; a missing amount defaults to 0.
func parseAddInput(s string) (string, float64, error) {
	title := strings.TrimSpace(s)
	amount := 0.0
	if i := strings.LastIndex(s, "="); i >= 0 {
		title = strings.TrimSpace(s[:i])
		v, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
		if err != nil {
			return "", 0, errors.New("amount must be a number")
		}
		amount = v
	}
	if title == "" {
		return "", 0, errors.New("title is required")
	}
	return title, amount, nil
}

type row struct {
	id    string
	label string
	done  bool
}

func (m boardModel) rows() []row {
	var out []row
	switch m.section {
	case sectionShop:
		for _, r := range m.state.Rewards {
			affordable := m.state.Balance >= r.Cost
			label := fmt.Sprintf("%s %s", r.Title, ui.Muted.Render(ui.Money(r.Cost)))
			out = append(out, row{id: r.ID, label: label, done: !affordable})
		}
	case sectionHabits:
		for _, it := range m.state.Items {
			if it.Type != engine.ItemTypeHabit {
				continue
			}
			done := engine.IsDoneToday(it)
			mark := "  "
			if done {
				mark = ui.IconDone + " "
			}
			out = append(out, row{
				id:    it.ID,
				label: fmt.Sprintf("%s%s %s", mark, it.Title, ui.Muted.Render("+"+ui.Money(it.Value))),
				done:  done,
			})
		}
	default:
		for _, it := range m.state.Items {
			if it.Type != engine.ItemTypeTask || it.Completed() {
				continue
			}
			out = append(out, row{
				id:    it.ID,
				label: fmt.Sprintf("%s %s", it.Title, ui.Muted.Render("+"+ui.Money(it.Value))),
			})
		}
	}
	return out
}

func (m boardModel) actSelected() boardModel {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m
	}
	r := rows[m.selected]

	if m.section == sectionShop {
		res, err := m.eng.Redeem(r.id)
		if err != nil {
			if errors.Is(err, engine.ErrInsufficientBalance) {
				m.lastLog = "Not enough balance."
			} else {
				m.lastLog = "Redeem failed: " + err.Error()
			}
			return m
		}
		m.lastLog = fmt.Sprintf("Redeemed %q (-%s).", res.Reward.Title, ui.Money(res.Reward.Cost))
		return m.refresh()
	}

	res, err := m.eng.CompleteItem(r.id)
	if err != nil {
		if errors.Is(err, engine.ErrAlreadyCompleted) {
			m.lastLog = "Already done today."
		} else {
			m.lastLog = "Complete failed: " + err.Error()
		}
		return m
	}
	m.lastLog = fmt.Sprintf("Completed %q (+%s).", res.Item.Title, ui.Money(res.Credited))
	if res.GoalReached {
		m.lastLog += " " + ui.BadgeGoal
	}
	return m.refresh()
}

func (m boardModel) deleteSelected() boardModel {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m
	}
	r := rows[m.selected]

	var err error
	if m.section == sectionShop {
		err = m.eng.DeleteReward(r.id)
	} else {
		err = m.eng.DeleteItem(r.id)
	}
	if err != nil {
		m.lastLog = "Delete failed: " + err.Error()
		return m
	}
	m.lastLog = "Deleted."
	return m.refresh()
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(ui.PanelTitle.Render(m.section.title()))
	b.WriteString(ui.Muted.Render("  (tab to switch)"))
	b.WriteString("\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(ui.Dim.Render("  (empty — press a to add)"))
		b.WriteString("\n")
	}
	for i, r := range rows {
		cursor := "  "
		line := r.label
		if i == m.selected {
			cursor = "> "
			line = ui.SelectedRow.Render(r.label)
		} else if r.done {
			line = ui.Dim.Render(r.label)
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	progress := m.state.ProgressPercent()
	return fmt.Sprintf("%s  %s  %s %s\n%s",
		ui.Heading(ui.IconCoin, "SelfBank"),
		ui.LabelValue("Balance", ui.Money(m.state.Balance)),
		ui.LabelValue("Goal", m.state.Goal.Title),
		ui.Muted.Render("("+ui.Money(m.state.Goal.TargetAmount)+")"),
		ui.ProgressBar(progress, 30),
	)
}

func (m boardModel) renderFooter() string {
	keys := "a: add  enter/space: complete/redeem  d: delete  tab: section  j/k: move  q: quit"
	return ui.Muted.Render(keys) + "\n" + m.lastLog + "\n"
}
