// Package dates holds the calendar arithmetic shared by the history and
// chart views. Weeks start on Monday, matching the service's calendar.
package dates

import (
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
)

// Today returns the current local date at midnight.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// WeekStart returns the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	t = Midnight(t)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return t.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday on or after t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// MonthGrid returns the visible calendar window for the month containing
// ref: the Monday on or before the 1st through the Sunday on or after the
// last day. The window may include lead/trail days of adjacent months.
func MonthGrid(ref time.Time) (start, end time.Time) {
	return WeekStart(MonthStart(ref)), WeekEnd(MonthEnd(ref))
}

// DaysBetween counts calendar days from from to to. Zero for the same day,
// negative when to precedes from. Computed in UTC so DST transitions do not
// shave hours off the difference.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// EachDay returns every calendar day in [from, to] inclusive, ascending.
// Empty when to precedes from.
func EachDay(from, to time.Time) []time.Time {
	from, to = Midnight(from), Midnight(to)
	if to.Before(from) {
		return nil
	}
	days := make([]time.Time, 0, DaysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AddMonths shifts t by n calendar months, clamping the day to the target
// month's length (March 31 minus one month is February 29, not March 2).
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	d := t.Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Clamp bounds t into [min, max].
func Clamp(t, min, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}

// Key formats t in the YYYY-MM-DD form used as a map key.
func Key(t time.Time) string {
	return t.Format(constants.DateFormat)
}
