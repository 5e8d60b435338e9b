package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(date string, icon string) models.Record {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return models.Record{ID: "id-" + date, Date: d, Icon: icon}
}

func TestBuildSeriesOnePointPerDay(t *testing.T) {
	from, to := day(2024, time.March, 1), day(2024, time.March, 10)
	points := BuildSeries(from, to, nil)

	if len(points) != 10 {
		t.Fatalf("len = %d, want 10", len(points))
	}
	for i, p := range points {
		want := from.AddDate(0, 0, i)
		if !p.Date.Equal(want) {
			t.Errorf("points[%d].Date = %v, want %v", i, p.Date, want)
		}
		if p.Value != nil {
			t.Errorf("points[%d].Value = %d, want nil", i, *p.Value)
		}
	}
}

func TestBuildSeriesFillsValuesAndKeepsGaps(t *testing.T) {
	from, to := day(2024, time.March, 1), day(2024, time.March, 5)
	records := []models.Record{
		rec("2024-03-01", "😡"),
		rec("2024-03-03", "😊"),
		rec("2024-03-05", "😃"),
	}
	points := BuildSeries(from, to, records)

	want := []*int{ptr(0), nil, ptr(4), nil, ptr(5)}
	for i := range want {
		switch {
		case want[i] == nil && points[i].Value != nil:
			t.Errorf("points[%d].Value = %d, want nil", i, *points[i].Value)
		case want[i] != nil && points[i].Value == nil:
			t.Errorf("points[%d].Value = nil, want %d", i, *want[i])
		case want[i] != nil && *points[i].Value != *want[i]:
			t.Errorf("points[%d].Value = %d, want %d", i, *points[i].Value, *want[i])
		}
	}
}

func TestBuildSeriesIgnoresOutOfRangeAndUnknownIcons(t *testing.T) {
	from, to := day(2024, time.March, 2), day(2024, time.March, 3)
	records := []models.Record{
		rec("2024-03-01", "😊"), // before range
		rec("2024-03-04", "😊"), // after range
		rec("2024-03-02", "??"), // not a mood icon
	}
	points := BuildSeries(from, to, records)
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
	for i, p := range points {
		if p.Value != nil {
			t.Errorf("points[%d].Value = %d, want nil", i, *p.Value)
		}
	}
}

func TestBuildSeriesSingleDay(t *testing.T) {
	d := day(2024, time.March, 10)
	points := BuildSeries(d, d, []models.Record{rec("2024-03-10", "😊")})
	if len(points) != 1 {
		t.Fatalf("len = %d, want 1", len(points))
	}
	if points[0].Value == nil || *points[0].Value != 4 {
		t.Errorf("value = %v, want 4", points[0].Value)
	}
}

func TestDefaultRange(t *testing.T) {
	today := day(2024, time.March, 10)
	from, to := DefaultRange(today)
	if !to.Equal(today) {
		t.Errorf("to = %v, want today", to)
	}
	if !from.Equal(day(2024, time.March, 4)) {
		t.Errorf("from = %v, want 2024-03-04", from)
	}
	if len(BuildSeries(from, to, nil)) != 7 {
		t.Error("default range is not 7 days")
	}
}

func TestClampRange(t *testing.T) {
	min, max := RangeBounds(day(2024, time.March, 31))
	if !min.Equal(day(2024, time.February, 29)) || !max.Equal(day(2024, time.March, 31)) {
		t.Fatalf("bounds = %v, %v", min, max)
	}

	from, to := ClampRange(day(2024, time.January, 1), day(2024, time.April, 15), min, max)
	if !from.Equal(min) || !to.Equal(max) {
		t.Errorf("clamped = %v, %v", from, to)
	}

	// Inverted input comes back ordered.
	from, to = ClampRange(day(2024, time.March, 20), day(2024, time.March, 10), min, max)
	if from.After(to) {
		t.Errorf("from %v after to %v", from, to)
	}
}

func TestRenderConnectsAcrossNulls(t *testing.T) {
	from, to := day(2024, time.March, 1), day(2024, time.March, 5)
	records := []models.Record{
		rec("2024-03-01", "😡"), // 0
		rec("2024-03-05", "😡"), // 0, three null days between
	}
	out := Render(BuildSeries(from, to, records))

	if !strings.Contains(out, "●") {
		t.Fatal("no markers rendered")
	}
	if !strings.Contains(out, "·") {
		t.Error("gap days are not bridged")
	}
	// Both endpoints sit on the bottom row, so the bridge does too.
	bottom := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "😡") {
			bottom = line
		}
	}
	if strings.Count(bottom, "·") != 3 {
		t.Errorf("bottom row %q should carry 3 bridge cells", bottom)
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(nil); out != "" {
		t.Errorf("Render(nil) = %q", out)
	}
}

func ptr(v int) *int { return &v }
