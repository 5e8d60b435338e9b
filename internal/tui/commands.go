package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

// activateMsg (re)enters a screen through Update, used for the initial
// screen after startup and after login.
type activateMsg struct {
	state constants.SessionState
}

// Fetch results carry the sequence number of the request that produced
// them. A result whose seq no longer matches the screen's counter is
// stale — the user has navigated or refreshed since — and is dropped
// instead of applied.
type todayLoadedMsg struct {
	seq    int
	record *models.Record
	err    error
}

type historyLoadedMsg struct {
	seq     int
	records []models.Record
	err     error
}

type chartLoadedMsg struct {
	seq     int
	records []models.Record
	err     error
}

type entrySavedMsg struct {
	record models.Record
	err    error
}

type daySavedMsg struct {
	err error
}

type dayDeletedMsg struct {
	err error
}

type loginDoneMsg struct {
	err error
}

type telegramDoneMsg struct {
	err error
}

func (m Model) fetchTodayCmd(seq int) tea.Cmd {
	gw, nowFn := m.gateway, m.now
	return func() tea.Msg {
		today := dates.Midnight(nowFn())
		records, err := gw.ListRange(context.Background(), today, today)
		if err != nil {
			return todayLoadedMsg{seq: seq, err: err}
		}
		if len(records) == 0 {
			return todayLoadedMsg{seq: seq}
		}
		rec := records[0]
		return todayLoadedMsg{seq: seq, record: &rec}
	}
}

func (m Model) fetchHistoryCmd(seq int, from, to time.Time) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		records, err := gw.ListRange(context.Background(), from, to)
		return historyLoadedMsg{seq: seq, records: records, err: err}
	}
}

func (m Model) fetchChartCmd(seq int, from, to time.Time) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		records, err := gw.ListRange(context.Background(), from, to)
		return chartLoadedMsg{seq: seq, records: records, err: err}
	}
}

func (m Model) saveTodayCmd(icon, comment string) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		rec, err := gw.Create(context.Background(), icon, comment, nil)
		return entrySavedMsg{record: rec, err: err}
	}
}

func (m Model) saveDayCmd(existing *models.Record, icon, comment string, date time.Time) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		var err error
		if existing != nil {
			_, err = gw.Update(context.Background(), existing.ID, icon, comment, date)
		} else {
			_, err = gw.Create(context.Background(), icon, comment, &date)
		}
		return daySavedMsg{err: err}
	}
}

func (m Model) deleteDayCmd(id string) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		return dayDeletedMsg{err: gw.Delete(context.Background(), id)}
	}
}

func (m Model) loginCmd(email string) tea.Cmd {
	store, auth := m.store, m.auth
	return func() tea.Msg {
		return loginDoneMsg{err: store.Login(context.Background(), auth, email)}
	}
}

func (m Model) registerTelegramCmd(chatID int64) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		return telegramDoneMsg{err: gw.RegisterTelegram(context.Background(), chatID)}
	}
}
