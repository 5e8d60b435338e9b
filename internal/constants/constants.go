package constants

// AppName is used for the config directory and the OS keyring service name.
const AppName = "moodtrack"

const (
	// DateFormat is the wire and display format for calendar dates.
	DateFormat = "2006-01-02"
	// MonthFormat is accepted by the history command's --month flag.
	MonthFormat = "2006-01"
	// AxisDayFormat labels chart columns.
	AxisDayFormat = "02.01"
)

// KeyringTokenUser is the keyring account name under which the session
// token is stored.
const KeyringTokenUser = "session-token"

// DefaultServer is the API base URL when neither the --server flag nor
// MOODTRACK_SERVER is set.
const DefaultServer = "http://localhost:8080"

// DefaultChartDays is the length of the initial chart range (today included).
const DefaultChartDays = 7

// SessionState identifies the active TUI screen.
type SessionState int

const (
	StateLogin SessionState = iota
	StateEntry
	StateHistory
	StateChart
	StateTelegram
	StateEditDay
	StateConfirmDelete
)

// User-facing messages. The service UI is Ukrainian.
const (
	MsgEmailRequired    = "Email обов’язковий"
	MsgLoginFailed      = "Не вдалося увійти"
	MsgIconRequired     = "Оберіть іконку настрою"
	MsgTodayChecking    = "Перевіряємо, чи є запис за сьогодні..."
	MsgTodayExists      = "Сьогоднішній настрій уже задано!"
	MsgTodayCheckFailed = "Не вдалося перевірити сьогоднішній настрій"
	MsgSaveOK           = "Сьогоднішній настрій успішно збережено!"
	MsgSaveFailed       = "Не вдалося зберегти сьогоднішній настрій"
	MsgHistoryFailed    = "Не вдалося завантажити записи настрою"
	MsgRecordSaveFailed = "Помилка при збереженні. Перевірте дані."
	MsgDeleteFailed     = "Помилка при видаленні."
	MsgDeleteConfirm    = "Ви дійсно хочете видалити цей запис?"
	MsgChartFailed      = "Не вдалося завантажити дані для графіка"
	MsgChatIDInvalid    = "Введіть коректний числовий chat_id"
	MsgTelegramOK       = "Telegram-чат успішно підключено! Тепер ви отримуватимете нотифікації."
	MsgTelegramFailed   = "Не вдалося підключити Telegram. Спробуйте пізніше."
	MsgNoComment        = "(немає)"
)
