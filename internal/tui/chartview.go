package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pvlkuz/moodtrack-cli/internal/chart"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
)

func (m Model) updateChart(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateRangeForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.EditRange) {
		m.rangeForm = &RangeFormModel{
			From: m.chartFrom.Format(constants.DateFormat),
			To:   m.chartTo.Format(constants.DateFormat),
		}
		m.form = newRangeForm(m.rangeForm, m.now())
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateRangeForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		// Both bounds already passed the form validators; clamping also
		// swaps an inverted pair so from never exceeds to.
		from, _ := time.Parse(constants.DateFormat, m.rangeForm.From)
		to, _ := time.Parse(constants.DateFormat, m.rangeForm.To)
		min, max := chart.RangeBounds(m.now())
		m.chartFrom, m.chartTo = chart.ClampRange(from, to, min, max)
		m.form = nil
		var fetch tea.Cmd
		m, fetch = m.refreshChart()
		return m, tea.Batch(cmd, fetch)
	case huh.StateAborted:
		m.form = nil
	}
	return m, cmd
}
