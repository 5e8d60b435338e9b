package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
)

// updateEntry drives the daily entry screen. Once today has a record the
// screen is read-only; editing happens via the history calendar.
func (m Model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.entryLoading || m.todayRecord != nil {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Save):
			return m.submitEntry()
		case m.entryFocus == focusPicker && key.Matches(keyMsg, m.keys.Down):
			m.entryFocus = focusComment
			m.entryPicker.Blur()
			return m, m.entryComment.Focus()
		case m.entryFocus == focusComment && key.Matches(keyMsg, m.keys.Esc):
			m.entryFocus = focusPicker
			m.entryComment.Blur()
			m.entryPicker.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.entryFocus == focusPicker {
		m.entryPicker, cmd = m.entryPicker.Update(msg)
	} else {
		m.entryComment, cmd = m.entryComment.Update(msg)
	}
	return m, cmd
}

// submitEntry validates and saves today's mood. A missing icon blocks the
// submit with an inline message and issues no network call.
func (m Model) submitEntry() (tea.Model, tea.Cmd) {
	icon := m.entryPicker.Selected()
	if icon == "" {
		m.entryMessage = constants.MsgIconRequired
		m.entrySuccess = false
		return m, nil
	}
	m.entryMessage = ""
	return m, m.saveTodayCmd(icon, m.entryComment.Value())
}
