package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
	"github.com/pvlkuz/moodtrack-cli/internal/tui/components/iconpicker"
)

// buildMoodMap indexes fetched records by their YYYY-MM-DD key. With one
// record per date this is a plain overwrite on duplicates; last one wins.
func buildMoodMap(records []models.Record) map[string]models.Record {
	mm := make(map[string]models.Record, len(records))
	for _, rec := range records {
		mm[rec.Date.Key()] = rec
	}
	return mm
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	today := dates.Midnight(m.now())

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		return m.moveSelection(-1, today), nil
	case key.Matches(keyMsg, m.keys.Right):
		return m.moveSelection(1, today), nil
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveSelection(-7, today), nil
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveSelection(7, today), nil

	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.viewMonth = dates.AddMonths(m.viewMonth, -1)
		m.selectedDay = m.viewMonth
		var cmd tea.Cmd
		m, cmd = m.refreshHistory()
		return m, cmd

	case key.Matches(keyMsg, m.keys.NextMonth):
		// The calendar never shows months after the current one.
		if !m.viewMonth.Before(dates.MonthStart(today)) {
			return m, nil
		}
		m.viewMonth = dates.AddMonths(m.viewMonth, 1)
		m.selectedDay = m.viewMonth
		if dates.SameDay(m.viewMonth, dates.MonthStart(today)) && today.Before(m.selectedDay) {
			m.selectedDay = today
		}
		var cmd tea.Cmd
		m, cmd = m.refreshHistory()
		return m, cmd

	case key.Matches(keyMsg, m.keys.Enter):
		return m.openDayEditor(today)
	}
	return m, nil
}

// moveSelection shifts the selected day, staying inside the visible grid
// and never landing on a future date.
func (m Model) moveSelection(days int, today time.Time) Model {
	candidate := m.selectedDay.AddDate(0, 0, days)
	gridStart, gridEnd := dates.MonthGrid(m.viewMonth)
	if candidate.Before(gridStart) || candidate.After(gridEnd) || candidate.After(today) {
		return m
	}
	m.selectedDay = candidate
	return m
}

// openDayEditor opens the create/update surface for the selected day,
// pre-populated when a record exists.
func (m Model) openDayEditor(today time.Time) (tea.Model, tea.Cmd) {
	if m.selectedDay.After(today) {
		return m, nil
	}

	m.state = constants.StateEditDay
	m.editDate = m.selectedDay
	m.editMessage = ""
	m.editFocus = focusPicker

	if rec, ok := m.moodMap[dates.Key(m.selectedDay)]; ok {
		recCopy := rec
		m.editRecord = &recCopy
		m.editPicker = iconpicker.NewWithIcon(rec.Icon)
		m.editComment = newTextarea(rec.Comment)
	} else {
		m.editRecord = nil
		m.editPicker = iconpicker.New()
		m.editComment = newTextarea("")
	}
	m.editPicker.Focus()
	return m, nil
}

func (m Model) updateEditDay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Save):
			return m.submitDay()

		case m.editFocus == focusPicker && m.editRecord != nil && key.Matches(keyMsg, m.keys.Delete):
			m.deleteID = m.editRecord.ID
			m.state = constants.StateConfirmDelete
			return m, nil

		case m.editFocus == focusPicker && key.Matches(keyMsg, m.keys.Down):
			m.editFocus = focusComment
			m.editPicker.Blur()
			return m, m.editComment.Focus()

		case key.Matches(keyMsg, m.keys.Esc):
			if m.editFocus == focusComment {
				m.editFocus = focusPicker
				m.editComment.Blur()
				m.editPicker.Focus()
				return m, nil
			}
			m.state = constants.StateHistory
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.editFocus == focusPicker {
		m.editPicker, cmd = m.editPicker.Update(msg)
	} else {
		m.editComment, cmd = m.editComment.Update(msg)
	}
	return m, cmd
}

func (m Model) submitDay() (tea.Model, tea.Cmd) {
	icon := m.editPicker.Selected()
	if icon == "" {
		m.editMessage = constants.MsgIconRequired
		return m, nil
	}
	m.editMessage = ""
	return m, m.saveDayCmd(m.editRecord, icon, m.editComment.Value(), m.editDate)
}

// updateConfirmDelete asks before the DELETE goes out. Canceling issues no
// call at all.
func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		id := m.deleteID
		m.deleteID = ""
		return m, m.deleteDayCmd(id)
	case "n", "N", "esc":
		m.deleteID = ""
		m.state = constants.StateEditDay
	}
	return m, nil
}
