// Package chart synthesizes the trend series for the mood chart: one point
// per calendar day in the requested range, with nil values where no record
// exists. Gaps are preserved so the rendered line reflects genuinely
// missing days instead of inventing data.
package chart

import (
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/dates"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

// Point is a single day on the chart. Value is nil when the day has no
// record (or the record carries an icon outside the fixed set).
type Point struct {
	Date  time.Time
	Value *int
}

// BuildSeries expands [from, to] into one Point per calendar day, ascending,
// and fills in ordinal values from the given records. Records outside the
// range are ignored. The result always has DaysBetween(from,to)+1 entries
// for a valid range, even when records is empty.
func BuildSeries(from, to time.Time, records []models.Record) []Point {
	days := dates.EachDay(from, to)
	points := make([]Point, len(days))
	index := make(map[string]int, len(days))
	for i, d := range days {
		points[i] = Point{Date: d}
		index[dates.Key(d)] = i
	}

	for _, rec := range records {
		i, ok := index[rec.Date.Key()]
		if !ok {
			continue
		}
		if v, ok := models.IconValue(rec.Icon); ok {
			value := v
			points[i].Value = &value
		}
	}

	return points
}

// DefaultRange returns the initial chart window: the 7 days ending today.
func DefaultRange(today time.Time) (from, to time.Time) {
	today = dates.Midnight(today)
	return today.AddDate(0, 0, -(constants.DefaultChartDays - 1)), today
}

// RangeBounds returns the earliest and latest selectable chart dates:
// one month back through today.
func RangeBounds(today time.Time) (min, max time.Time) {
	today = dates.Midnight(today)
	return dates.AddMonths(today, -1), today
}

// ClampRange forces from and to into [min, max] and from ≤ to, mirroring
// how the date pickers constrain each bound against the other.
func ClampRange(from, to, min, max time.Time) (time.Time, time.Time) {
	from = dates.Clamp(dates.Midnight(from), min, max)
	to = dates.Clamp(dates.Midnight(to), min, max)
	if to.Before(from) {
		from, to = to, from
	}
	return from, to
}
