package chart

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

const colWidth = 3

// Render draws the series as a plain-text line plot: one column per day,
// one row per ordinal value, the Y axis labelled with the mood icons.
// Null days do not break the line; the path is interpolated across them so
// a sparse history still reads as one connected trend.
func Render(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	rows := len(models.Icons)
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, len(points))
		for c := range cells[r] {
			cells[r][c] = ' '
		}
	}

	// Place real observations.
	for c, p := range points {
		if p.Value != nil {
			cells[rowFor(*p.Value, rows)][c] = '●'
		}
	}

	// Bridge the gaps between consecutive observations.
	prev := -1
	for c, p := range points {
		if p.Value == nil {
			continue
		}
		if prev >= 0 && c-prev > 1 {
			a, b := *points[prev].Value, *p.Value
			for k := prev + 1; k < c; k++ {
				v := interpolate(a, b, k-prev, c-prev)
				cells[rowFor(v, rows)][k] = '·'
			}
		}
		prev = c
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		icon, _ := models.ValueIcon(rows - 1 - r)
		sb.WriteString(icon)
		sb.WriteString(" ┤")
		for c := range points {
			sb.WriteString(pad(string(cells[r][c])))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   └")
	sb.WriteString(strings.Repeat("─", colWidth*len(points)))
	sb.WriteByte('\n')

	sb.WriteString("    ")
	for _, p := range points {
		sb.WriteString(pad(fmt.Sprintf("%02d", p.Date.Day())))
	}
	sb.WriteByte('\n')

	sb.WriteString(fmt.Sprintf("    %s — %s\n",
		points[0].Date.Format(constants.AxisDayFormat),
		points[len(points)-1].Date.Format(constants.AxisDayFormat)))

	return sb.String()
}

// rowFor maps an ordinal value onto a plot row, highest value on top.
func rowFor(v, rows int) int {
	return rows - 1 - v
}

// interpolate returns the value step/steps of the way from a to b,
// rounded to the nearest integer.
func interpolate(a, b, step, steps int) int {
	return int(math.Round(float64(a) + float64(b-a)*float64(step)/float64(steps)))
}

// pad centers s in a chart column exactly colWidth cells wide, so the
// two-digit day labels line up under their plot columns.
func pad(s string) string {
	fill := colWidth - utf8.RuneCountInString(s)
	if fill < 0 {
		fill = 0
	}
	left := fill / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", fill-left)
}
