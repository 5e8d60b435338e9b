// Package calendar renders the history month grid. The grid always spans
// whole weeks: the Monday on or before the 1st through the Sunday on or
// after the last day, so lead and trail days of adjacent months are shown.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvlkuz/moodtrack-cli/internal/dates"
)

// Day is a single rendered grid cell.
type Day struct {
	Date       time.Time
	Icon       string // empty when the day has no record
	InMonth    bool
	IsToday    bool
	IsSelected bool
	IsFuture   bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	OutsideStyle  lipgloss.Style
	FutureStyle   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

var weekdayHeader = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"}

// BuildDays expands the month containing ref into its grid cells. icons
// maps YYYY-MM-DD keys to mood icons; days after today are marked future
// (and therefore not selectable by the caller).
func BuildDays(ref, selected, today time.Time, icons map[string]string) []Day {
	start, end := dates.MonthGrid(ref)
	grid := dates.EachDay(start, end)

	days := make([]Day, len(grid))
	for i, d := range grid {
		days[i] = Day{
			Date:       d,
			Icon:       icons[dates.Key(d)],
			InMonth:    d.Month() == ref.Month(),
			IsToday:    dates.SameDay(d, today),
			IsSelected: dates.SameDay(d, selected),
			IsFuture:   d.After(dates.Midnight(today)),
		}
	}
	return days
}

// Render produces the multi-line month grid. Each week renders as two
// lines: day numbers on top, mood icons underneath.
func Render(month time.Time, days []Day, opts Options) string {
	if len(days) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		var cells []string
		for _, h := range weekdayHeader {
			cells = append(cells, opts.HeaderStyle.Render(" "+h+" "))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	for row := 0; row*7 < len(days); row++ {
		var numbers, icons []string
		for col := 0; col < 7 && row*7+col < len(days); col++ {
			d := days[row*7+col]
			numbers = append(numbers, styleFor(d, opts).Render(fmt.Sprintf(" %2d ", d.Date.Day())))
			icons = append(icons, styleFor(d, opts).Render(iconCell(d.Icon)))
		}
		lines = append(lines, strings.Join(numbers, " "))
		lines = append(lines, strings.Join(icons, " "))
	}

	return strings.Join(lines, "\n")
}

func styleFor(d Day, opts Options) lipgloss.Style {
	style := opts.DayStyle
	if !d.InMonth {
		style = opts.OutsideStyle
	}
	if d.IsFuture {
		style = opts.FutureStyle
	}
	if d.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if d.IsSelected {
		style = opts.SelectedStyle
	}
	return style
}

// iconCell pads the icon to the 4-cell column width; mood icons are
// double-width runes.
func iconCell(icon string) string {
	if icon == "" {
		return "    "
	}
	return " " + icon + " "
}
