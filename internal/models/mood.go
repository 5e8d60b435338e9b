package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
)

// Icons lists the six valid mood icons in ordinal order: Icons[v] is the
// icon for scale value v.
var Icons = []string{"😡", "😢", "😞", "😐", "😊", "😃"}

// IconValue maps an icon onto the ordinal mood scale [0..5].
// Returns false for anything outside the fixed six-icon set.
func IconValue(icon string) (int, bool) {
	for v, ic := range Icons {
		if ic == icon {
			return v, true
		}
	}
	return 0, false
}

// ValueIcon is the inverse of IconValue.
func ValueIcon(v int) (string, bool) {
	if v < 0 || v >= len(Icons) {
		return "", false
	}
	return Icons[v], true
}

// IsValidIcon reports whether icon belongs to the fixed six-icon set.
func IsValidIcon(icon string) bool {
	_, ok := IconValue(icon)
	return ok
}

// Date is a calendar date. The server marshals record dates as full RFC3339
// timestamps while the rest of the API speaks plain YYYY-MM-DD, so both
// forms are accepted on decode. It always encodes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date from a point in time, truncated to the day.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date{t}, nil
}

// Key returns the YYYY-MM-DD form used to index view-local maps.
func (d Date) Key() string {
	return d.Format(constants.DateFormat)
}

func (d Date) String() string { return d.Key() }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(constants.DateFormat, s); err == nil {
		*d = Date{t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid record date %q: %w", s, err)
	}
	*d = NewDate(t)
	return nil
}

// Record is a single day's logged mood: one record per calendar date,
// an icon from the fixed set and an optional free-text comment.
type Record struct {
	ID      string `json:"id"`
	Date    Date   `json:"date"`
	Icon    string `json:"icon"`
	Comment string `json:"comment"`
}
