package calendar

import (
	"strings"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildDaysMarch2024(t *testing.T) {
	ref := day(2024, time.March, 15)
	today := day(2024, time.March, 20)
	days := BuildDays(ref, ref, today, map[string]string{"2024-03-10": "😊"})

	// 2024-02-26 (Mon) .. 2024-03-31 (Sun): five whole weeks.
	if len(days) != 35 {
		t.Fatalf("len = %d, want 35", len(days))
	}
	if !days[0].Date.Equal(day(2024, time.February, 26)) {
		t.Errorf("first cell = %v", days[0].Date)
	}
	if !days[34].Date.Equal(day(2024, time.March, 31)) {
		t.Errorf("last cell = %v", days[34].Date)
	}

	byKey := make(map[string]Day)
	for _, d := range days {
		byKey[d.Date.Format("2006-01-02")] = d
	}

	if d := byKey["2024-03-10"]; d.Icon != "😊" {
		t.Errorf("2024-03-10 icon = %q", d.Icon)
	}
	if d := byKey["2024-02-26"]; d.InMonth {
		t.Error("lead day marked as in-month")
	}
	if d := byKey["2024-03-20"]; !d.IsToday {
		t.Error("today not marked")
	}
	if d := byKey["2024-03-21"]; !d.IsFuture {
		t.Error("tomorrow not marked future")
	}
	if d := byKey["2024-03-20"]; d.IsFuture {
		t.Error("today marked future")
	}
	if d := byKey["2024-03-15"]; !d.IsSelected {
		t.Error("selected day not marked")
	}
}

func TestRenderShowsIconsAndHeader(t *testing.T) {
	ref := day(2024, time.March, 15)
	days := BuildDays(ref, ref, day(2024, time.March, 20), map[string]string{"2024-03-10": "😊"})
	out := Render(ref, days, Options{ShowHeader: true})

	if !strings.Contains(out, "Пн") || !strings.Contains(out, "Нд") {
		t.Error("weekday header missing")
	}
	if !strings.Contains(out, "😊") {
		t.Error("record icon missing from grid")
	}
	// Two lines per week plus the header.
	if got := len(strings.Split(out, "\n")); got != 11 {
		t.Errorf("line count = %d, want 11", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(time.Time{}, nil, Options{}); out != "" {
		t.Errorf("Render(no days) = %q", out)
	}
}
