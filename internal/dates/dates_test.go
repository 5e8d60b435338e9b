package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		// March 2024: the 1st is a Friday, the 31st a Sunday.
		{"march 2024", day(2024, time.March, 15), day(2024, time.February, 26), day(2024, time.March, 31)},
		// September 2025: the 1st is itself a Monday.
		{"month starting on monday", day(2025, time.September, 10), day(2025, time.September, 1), day(2025, time.October, 5)},
		// February 2021: 1st Monday, 28th Sunday, exactly four weeks.
		{"exact four weeks", day(2021, time.February, 14), day(2021, time.February, 1), day(2021, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthGrid(tt.ref)
			if !start.Equal(tt.wantStart) {
				t.Errorf("grid start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("grid end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestMonthGridInvariants(t *testing.T) {
	// For any month: start is a Monday, end is a Sunday, and the whole
	// month falls inside [start, end].
	ref := day(2020, time.January, 1)
	for i := 0; i < 48; i++ {
		month := ref.AddDate(0, i, 0)
		start, end := MonthGrid(month)
		if start.Weekday() != time.Monday {
			t.Errorf("%v: grid start %v is not a Monday", month, start)
		}
		if end.Weekday() != time.Sunday {
			t.Errorf("%v: grid end %v is not a Sunday", month, end)
		}
		if MonthStart(month).Before(start) || MonthEnd(month).After(end) {
			t.Errorf("%v: month not contained in grid [%v, %v]", month, start, end)
		}
		if n := DaysBetween(start, end) + 1; n%7 != 0 {
			t.Errorf("%v: grid has %d days, not whole weeks", month, n)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	// 2024-03-10 is a Sunday.
	sun := day(2024, time.March, 10)
	if got := WeekStart(sun); !got.Equal(day(2024, time.March, 4)) {
		t.Errorf("WeekStart(sunday) = %v", got)
	}
	if got := WeekEnd(sun); !got.Equal(sun) {
		t.Errorf("WeekEnd(sunday) = %v", got)
	}
	// 2024-03-04 is a Monday.
	mon := day(2024, time.March, 4)
	if got := WeekStart(mon); !got.Equal(mon) {
		t.Errorf("WeekStart(monday) = %v", got)
	}
}

func TestEachDay(t *testing.T) {
	from := day(2024, time.March, 1)
	to := day(2024, time.March, 7)
	days := EachDay(from, to)
	if len(days) != 7 {
		t.Fatalf("len = %d, want 7", len(days))
	}
	for i, d := range days {
		want := from.AddDate(0, 0, i)
		if !d.Equal(want) {
			t.Errorf("days[%d] = %v, want %v", i, d, want)
		}
	}

	if got := EachDay(from, from); len(got) != 1 {
		t.Errorf("single-day range len = %d", len(got))
	}
	if got := EachDay(to, from); got != nil {
		t.Errorf("inverted range = %v, want nil", got)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(day(2024, time.February, 26), day(2024, time.March, 31)); got != 34 {
		t.Errorf("DaysBetween = %d, want 34", got)
	}
	if got := DaysBetween(day(2024, time.March, 1), day(2024, time.March, 1)); got != 0 {
		t.Errorf("same day = %d", got)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{day(2024, time.March, 31), -1, day(2024, time.February, 29)},
		{day(2023, time.March, 31), -1, day(2023, time.February, 28)},
		{day(2024, time.March, 15), -1, day(2024, time.February, 15)},
		{day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{day(2024, time.December, 15), 1, day(2025, time.January, 15)},
	}
	for _, tt := range tests {
		if got := AddMonths(tt.in, tt.n); !got.Equal(tt.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	min, max := day(2024, time.March, 1), day(2024, time.March, 31)
	if got := Clamp(day(2024, time.February, 1), min, max); !got.Equal(min) {
		t.Errorf("below min: %v", got)
	}
	if got := Clamp(day(2024, time.April, 1), min, max); !got.Equal(max) {
		t.Errorf("above max: %v", got)
	}
	mid := day(2024, time.March, 15)
	if got := Clamp(mid, min, max); !got.Equal(mid) {
		t.Errorf("in range: %v", got)
	}
}
