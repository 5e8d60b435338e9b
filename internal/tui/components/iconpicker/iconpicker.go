// Package iconpicker is the horizontal mood-icon selector used by the
// entry form and the history day editor. Nothing is selected initially;
// submitting without a selection is the caller's validation problem.
package iconpicker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

var (
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	cursorStyle = cellStyle.
			BorderForeground(lipgloss.Color("205"))

	selectedStyle = cellStyle.
			BorderForeground(lipgloss.Color("39")).
			Bold(true)
)

type Model struct {
	cursor   int
	selected int // index into models.Icons, -1 when nothing chosen
	focused  bool
}

// New returns a picker with no selection.
func New() Model {
	return Model{selected: -1}
}

// NewWithIcon returns a picker pre-selected on icon, for the update path.
func NewWithIcon(icon string) Model {
	m := New()
	if v, ok := models.IconValue(icon); ok {
		m.selected = v
		m.cursor = v
	}
	return m
}

// Selected returns the chosen icon, empty when nothing is selected.
func (m Model) Selected() string {
	if m.selected < 0 {
		return ""
	}
	return models.Icons[m.selected]
}

func (m *Model) Focus() { m.focused = true }

func (m *Model) Blur() { m.focused = false }

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(models.Icons)-1 {
				m.cursor++
			}
		case " ", "enter":
			m.selected = m.cursor
		}
	}
	return m, nil
}

func (m Model) View() string {
	cells := make([]string, len(models.Icons))
	for i, icon := range models.Icons {
		style := cellStyle
		if i == m.selected {
			style = selectedStyle
		} else if m.focused && i == m.cursor {
			style = cursorStyle
		}
		cells[i] = style.Render(icon)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
