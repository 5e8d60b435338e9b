package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pvlkuz/moodtrack-cli/internal/chart"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
	"github.com/pvlkuz/moodtrack-cli/internal/session"
	"github.com/pvlkuz/moodtrack-cli/internal/tui/components/iconpicker"
)

// Gateway is the slice of the API client the TUI needs. Each screen owns
// its fetched data exclusively and re-fetches on activation and after
// every mutation; there is no shared cache.
type Gateway interface {
	ListRange(ctx context.Context, from, to time.Time) ([]models.Record, error)
	Create(ctx context.Context, icon, comment string, date *time.Time) (models.Record, error)
	Update(ctx context.Context, id, icon, comment string, date time.Time) (models.Record, error)
	Delete(ctx context.Context, id string) error
	RegisterTelegram(ctx context.Context, chatID int64) error
}

type LoginFormModel struct {
	Email string
}

type TelegramFormModel struct {
	ChatID string
}

type RangeFormModel struct {
	From string
	To   string
}

type Model struct {
	gateway Gateway
	store   *session.Store
	auth    session.Authenticator

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	quitting bool

	// Injectable clock so tests can pin "today".
	now func() time.Time

	// Active huh form (login, chart range, telegram) and its value holders.
	form         *huh.Form
	loginForm    *LoginFormModel
	telegramForm *TelegramFormModel
	rangeForm    *RangeFormModel

	loginError string

	// Entry screen. Sequence numbers tag in-flight fetches so responses
	// that arrive after another fetch was issued are discarded.
	entrySeq     int
	entryLoading bool
	todayRecord  *models.Record
	entryPicker  iconpicker.Model
	entryComment textarea.Model
	entryFocus   focusTarget
	entryMessage string
	entrySuccess bool

	// History screen.
	historySeq     int
	historyLoading bool
	viewMonth      time.Time
	selectedDay    time.Time
	moodMap        map[string]models.Record
	historyMessage string

	// Day editor (modal over history).
	editDate    time.Time
	editRecord  *models.Record
	editPicker  iconpicker.Model
	editComment textarea.Model
	editFocus   focusTarget
	editMessage string
	deleteID    string

	// Chart screen.
	chartSeq     int
	chartLoading bool
	chartFrom    time.Time
	chartTo      time.Time
	chartPoints  []chart.Point
	chartMessage string

	telegramMessage string
	telegramSuccess bool
}

type focusTarget int

const (
	focusPicker focusTarget = iota
	focusComment
)

// NewModel builds the TUI. An unauthorized session lands on the login
// screen; an authorized one starts on the default protected view (Entry).
func NewModel(gw Gateway, store *session.Store, auth session.Authenticator) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		gateway: gw,
		store:   store,
		auth:    auth,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		now:     time.Now,
		state:   constants.StateLogin,
	}

	if store.IsAuthorized() {
		m.state = constants.StateEntry
	} else {
		m.loginForm = &LoginFormModel{}
		m.form = newLoginForm(m.loginForm)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	if m.state == constants.StateEntry {
		// State mutations (fetch sequence numbers) cannot happen in Init,
		// so the first activation goes through Update.
		cmds = append(cmds, func() tea.Msg { return activateMsg{state: constants.StateEntry} })
	}
	return tea.Batch(cmds...)
}

// enterState activates a protected screen, (re)initializing its local
// state and kicking off its fetch. Every activation re-fetches; nothing is
// carried over between visits.
func (m Model) enterState(s constants.SessionState) (Model, tea.Cmd) {
	m.state = s
	m.form = nil

	switch s {
	case constants.StateEntry:
		return m.refreshEntry()
	case constants.StateHistory:
		today := dates.Midnight(m.now())
		m.viewMonth = dates.MonthStart(today)
		m.selectedDay = today
		m.historyMessage = ""
		return m.refreshHistory()
	case constants.StateChart:
		m.chartFrom, m.chartTo = chart.DefaultRange(m.now())
		m.chartMessage = ""
		return m.refreshChart()
	case constants.StateTelegram:
		m.telegramMessage = ""
		m.telegramSuccess = false
		m.telegramForm = &TelegramFormModel{}
		m.form = newTelegramForm(m.telegramForm)
		return m, m.form.Init()
	}
	return m, nil
}

// protectedTabs is the Tab/Shift+Tab cycle order of the protected screens.
var protectedTabs = []constants.SessionState{
	constants.StateEntry,
	constants.StateHistory,
	constants.StateChart,
	constants.StateTelegram,
}

func tabIndex(s constants.SessionState) int {
	for i, t := range protectedTabs {
		if t == s {
			return i
		}
	}
	return -1
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateLogin:
		return []key.Binding{m.keys.Quit}
	case constants.StateEntry:
		if m.todayRecord == nil {
			return []key.Binding{m.keys.Tab, m.keys.Left, m.keys.Right, m.keys.Save, m.keys.Logout, m.keys.Quit}
		}
		return []key.Binding{m.keys.Tab, m.keys.Logout, m.keys.Quit}
	case constants.StateHistory:
		return []key.Binding{m.keys.Tab, m.keys.Enter, m.keys.PrevMonth, m.keys.NextMonth, m.keys.Quit}
	case constants.StateEditDay:
		return []key.Binding{m.keys.Save, m.keys.Delete, m.keys.Esc}
	case constants.StateChart:
		return []key.Binding{m.keys.Tab, m.keys.EditRange, m.keys.Quit}
	case constants.StateTelegram:
		return []key.Binding{m.keys.Esc, m.keys.Quit}
	}
	return []key.Binding{m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Logout, m.keys.Quit},
		{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter},
		{m.keys.Save, m.keys.Delete, m.keys.Esc, m.keys.PrevMonth, m.keys.NextMonth, m.keys.EditRange},
	}
}

// newTextarea builds the comment textarea used by the entry form and the
// day editor.
func newTextarea(value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Коментар (необов’язково)"
	ta.SetValue(value)
	ta.SetHeight(3)
	ta.CharLimit = 500
	return ta
}
