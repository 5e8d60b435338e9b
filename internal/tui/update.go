package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvlkuz/moodtrack-cli/internal/chart"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	apperrors "github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/tui/components/iconpicker"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case activateMsg:
		return m.enterState(msg.state)

	case todayLoadedMsg:
		return m.onTodayLoaded(msg)
	case entrySavedMsg:
		return m.onEntrySaved(msg)
	case historyLoadedMsg:
		return m.onHistoryLoaded(msg)
	case daySavedMsg:
		return m.onDaySaved(msg)
	case dayDeletedMsg:
		return m.onDayDeleted(msg)
	case chartLoadedMsg:
		return m.onChartLoaded(msg)
	case loginDoneMsg:
		return m.onLoginDone(msg)
	case telegramDoneMsg:
		return m.onTelegramDone(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state != constants.StateLogin && key.Matches(msg, m.keys.Logout) {
			return m.logout()
		}
		// Tab cycling between protected screens. Skipped while a huh form
		// is active (the form owns tab).
		if m.form == nil && tabIndex(m.state) >= 0 {
			n := len(protectedTabs)
			if key.Matches(msg, m.keys.Tab) {
				return m.enterState(protectedTabs[(tabIndex(m.state)+1)%n])
			}
			if key.Matches(msg, m.keys.ShiftTab) {
				return m.enterState(protectedTabs[(tabIndex(m.state)+n-1)%n])
			}
		}
	}

	switch m.state {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateEntry:
		return m.updateEntry(msg)
	case constants.StateHistory:
		return m.updateHistory(msg)
	case constants.StateEditDay:
		return m.updateEditDay(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateChart:
		return m.updateChart(msg)
	case constants.StateTelegram:
		return m.updateTelegram(msg)
	}
	return m, nil
}

// logout tears the session down and returns to the login screen. All
// view-local data dies with it.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.store.Logout()
	m.todayRecord = nil
	m.moodMap = nil
	m.chartPoints = nil
	m.state = constants.StateLogin
	m.loginError = ""
	m.loginForm = &LoginFormModel{}
	m.form = newLoginForm(m.loginForm)
	return m, m.form.Init()
}

// refreshEntry re-queries today's record. Bumping the sequence number
// invalidates any response still in flight.
func (m Model) refreshEntry() (Model, tea.Cmd) {
	m.entrySeq++
	m.entryLoading = true
	m.entryMessage = ""
	m.entrySuccess = false
	m.todayRecord = nil
	return m, m.fetchTodayCmd(m.entrySeq)
}

// refreshHistory re-queries the whole visible grid. Mutations never patch
// the map locally; this round trip is the consistency guarantee.
func (m Model) refreshHistory() (Model, tea.Cmd) {
	m.historySeq++
	m.historyLoading = true
	from, to := dates.MonthGrid(m.viewMonth)
	return m, m.fetchHistoryCmd(m.historySeq, from, to)
}

func (m Model) refreshChart() (Model, tea.Cmd) {
	m.chartSeq++
	m.chartLoading = true
	return m, m.fetchChartCmd(m.chartSeq, m.chartFrom, m.chartTo)
}

func (m Model) onTodayLoaded(msg todayLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.entrySeq {
		return m, nil
	}
	m.entryLoading = false
	if msg.err != nil {
		m.entryMessage = constants.MsgTodayCheckFailed
		m.entrySuccess = false
		return m, nil
	}
	m.todayRecord = msg.record
	if m.todayRecord == nil {
		m.entryPicker = iconpicker.New()
		m.entryPicker.Focus()
		m.entryComment = newTextarea("")
		m.entryFocus = focusPicker
	}
	return m, nil
}

func (m Model) onEntrySaved(msg entrySavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.entryMessage = constants.MsgSaveFailed
		m.entrySuccess = false
		return m, nil
	}
	rec := msg.record
	m.todayRecord = &rec
	m.entryMessage = constants.MsgSaveOK
	m.entrySuccess = true
	return m, nil
}

func (m Model) onHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.historySeq {
		return m, nil
	}
	m.historyLoading = false
	if msg.err != nil {
		m.historyMessage = constants.MsgHistoryFailed
		return m, nil
	}
	m.historyMessage = ""
	m.moodMap = buildMoodMap(msg.records)
	return m, nil
}

func (m Model) onDaySaved(msg daySavedMsg) (tea.Model, tea.Cmd) {
	// The editor may already be closed (Esc, tab) by the time the save
	// resolves; a late response must not move the user around.
	if m.state != constants.StateEditDay {
		return m, nil
	}
	if msg.err != nil {
		m.editMessage = constants.MsgRecordSaveFailed
		return m, nil
	}
	m.state = constants.StateHistory
	var cmd tea.Cmd
	m, cmd = m.refreshHistory()
	return m, cmd
}

func (m Model) onDayDeleted(msg dayDeletedMsg) (tea.Model, tea.Cmd) {
	if m.state != constants.StateConfirmDelete {
		return m, nil
	}
	if msg.err != nil {
		m.editMessage = constants.MsgDeleteFailed
		m.state = constants.StateEditDay
		return m, nil
	}
	m.state = constants.StateHistory
	var cmd tea.Cmd
	m, cmd = m.refreshHistory()
	return m, cmd
}

func (m Model) onChartLoaded(msg chartLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.chartSeq {
		return m, nil
	}
	m.chartLoading = false
	if msg.err != nil {
		m.chartMessage = constants.MsgChartFailed
		m.chartPoints = nil
		return m, nil
	}
	m.chartMessage = ""
	m.chartPoints = chart.BuildSeries(m.chartFrom, m.chartTo, msg.records)
	return m, nil
}

func (m Model) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loginError = apperrors.UserMessage(msg.err, constants.MsgLoginFailed)
		m.loginForm = &LoginFormModel{Email: m.loginForm.Email}
		m.form = newLoginForm(m.loginForm)
		return m, m.form.Init()
	}
	m.loginError = ""
	m.form = nil
	return m.enterState(constants.StateEntry)
}

func (m Model) onTelegramDone(msg telegramDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.telegramMessage = apperrors.UserMessage(msg.err, constants.MsgTelegramFailed)
		m.telegramSuccess = false
		m.telegramForm = &TelegramFormModel{ChatID: m.telegramForm.ChatID}
	} else {
		m.telegramMessage = constants.MsgTelegramOK
		m.telegramSuccess = true
		m.telegramForm = &TelegramFormModel{}
	}
	if m.state == constants.StateTelegram {
		m.form = newTelegramForm(m.telegramForm)
		return m, m.form.Init()
	}
	return m, nil
}
