package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvlkuz/moodtrack-cli/internal/chart"
	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/tui/components/calendar"
)

var tabTitles = []string{"Сьогодні", "Історія", "Графік", "Telegram"}

// ukMonths holds Ukrainian nominative month names, January first.
var ukMonths = []string{
	"Січень", "Лютий", "Березень", "Квітень", "Травень", "Червень",
	"Липень", "Серпень", "Вересень", "Жовтень", "Листопад", "Грудень",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateLogin:
		content = m.viewLogin()
	case constants.StateEntry:
		content = m.viewEntry()
	case constants.StateHistory:
		content = m.viewHistory()
	case constants.StateEditDay:
		content = m.viewEditDay()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateChart:
		content = m.viewChart()
	case constants.StateTelegram:
		content = m.viewTelegram()
	}

	var sections []string
	if m.state != constants.StateLogin {
		sections = append(sections, m.viewTabs())
	}
	sections = append(sections, content, m.help.View(m))

	return docStyle.Render(strings.Join(sections, "\n\n"))
}

// viewTabs renders the protected-screen tab bar. The day editor and the
// delete prompt highlight the history tab they sit on top of.
func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateEditDay || active == constants.StateConfirmDelete {
		active = constants.StateHistory
	}

	cells := make([]string, len(protectedTabs))
	for i, s := range protectedTabs {
		if s == active {
			cells[i] = activeTabStyle.Render(tabTitles[i])
		} else {
			cells[i] = inactiveTabStyle.Render(tabTitles[i])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Вхід до MoodTrack"))
	b.WriteString("\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.loginError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.loginError))
	}
	return b.String()
}

func (m Model) viewEntry() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Як ваш настрій сьогодні?"))
	b.WriteString("\n")

	switch {
	case m.entryLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(hintStyle.Render(constants.MsgTodayChecking))

	case m.todayRecord != nil:
		comment := m.todayRecord.Comment
		if comment == "" {
			comment = constants.MsgNoComment
		}
		card := strings.Join([]string{
			labelStyle.Render("Дата: ") + m.todayRecord.Date.Format(constants.DateFormat),
			labelStyle.Render("Іконка: ") + m.todayRecord.Icon,
			labelStyle.Render("Коментар: ") + comment,
		}, "\n")
		b.WriteString(cardStyle.Render(card))
		b.WriteString("\n\n")
		b.WriteString(successStyle.Render(constants.MsgTodayExists))

	default:
		b.WriteString(m.entryPicker.View())
		b.WriteString("\n\n")
		b.WriteString(m.entryComment.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("ctrl+s, щоб зберегти"))
	}

	if m.entryMessage != "" {
		b.WriteString("\n\n")
		if m.entrySuccess {
			b.WriteString(successStyle.Render(m.entryMessage))
		} else {
			b.WriteString(errorStyle.Render(m.entryMessage))
		}
	}
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Календар настроїв"))
	b.WriteString("\n")
	b.WriteString(calHeaderStyle.Render(monthTitle(m.viewMonth)))
	b.WriteString("\n\n")

	if m.historyLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(hintStyle.Render("Завантаження..."))
	} else {
		icons := make(map[string]string, len(m.moodMap))
		for k, rec := range m.moodMap {
			icons[k] = rec.Icon
		}
		days := calendar.BuildDays(m.viewMonth, m.selectedDay, dates.Midnight(m.now()), icons)
		b.WriteString(calendar.Render(m.viewMonth, days, calendar.Options{
			HeaderStyle:   calHeaderStyle,
			DayStyle:      calDayStyle,
			OutsideStyle:  calOutsideStyle,
			FutureStyle:   calFutureStyle,
			TodayStyle:    calTodayStyle,
			SelectedStyle: calSelectedStyle,
			ShowHeader:    true,
		}))
	}

	if m.historyMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.historyMessage))
	}
	return b.String()
}

func (m Model) viewEditDay() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Деталі дня"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Дата: ") + m.editDate.Format(constants.DateFormat))
	b.WriteString("\n\n")
	b.WriteString(m.editPicker.View())
	b.WriteString("\n\n")
	b.WriteString(m.editComment.View())
	b.WriteString("\n\n")

	hints := []string{"ctrl+s зберегти", "esc назад"}
	if m.editRecord != nil {
		hints = append(hints, "d видалити")
	}
	b.WriteString(hintStyle.Render(strings.Join(hints, " · ")))

	if m.editMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.editMessage))
	}
	return cardStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	body := dangerStyle.Render(constants.MsgDeleteConfirm) +
		"\n\n" +
		hintStyle.Render("[y] так   [n] ні")
	return cardStyle.Render(body)
}

func (m Model) viewChart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Графік настрою"))
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		return b.String()
	}

	b.WriteString(labelStyle.Render("Період: "))
	b.WriteString(fmt.Sprintf("%s — %s",
		m.chartFrom.Format(constants.DateFormat),
		m.chartTo.Format(constants.DateFormat)))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render("(r, щоб змінити)"))
	b.WriteString("\n\n")

	switch {
	case m.chartLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(hintStyle.Render("Завантаження..."))
	case m.chartMessage != "":
		b.WriteString(errorStyle.Render(m.chartMessage))
	default:
		b.WriteString(chartStyle.Render(chart.Render(m.chartPoints)))
	}
	return b.String()
}

func (m Model) viewTelegram() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Підключити Telegram-бот"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(strings.Join([]string{
		"1. Відкрийте @pvlkuz_moodtracker_bot у Telegram і надішліть /start.",
		"2. Дізнайтеся свій chat_id через @userinfobot.",
		"3. Введіть chat_id нижче.",
	}, "\n")))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
	}

	if m.telegramMessage != "" {
		b.WriteString("\n\n")
		if m.telegramSuccess {
			b.WriteString(successStyle.Render(m.telegramMessage))
		} else {
			b.WriteString(errorStyle.Render(m.telegramMessage))
		}
	}
	return b.String()
}

// monthTitle formats a month as "Березень 2024".
func monthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", ukMonths[int(t.Month())-1], t.Year())
}
