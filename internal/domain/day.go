package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the wire format of a calendar day
const DayLayout = "2006-01-02"

// Day is a calendar day at local midnight.
type Day struct {
	time.Time
}

// NewDay truncates t to midnight in t's location.
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// ParseDay parses a YYYY-MM-DD string in the local time zone.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day{Time: t}, nil
}

// AddDays returns the calendar day n days after d. Wall-clock arithmetic keeps
// the result at midnight across DST changes.
func (d Day) AddDays(n int) Day {
	y, m, dd := d.Date()
	return Day{Time: time.Date(y, m, dd+n, 0, 0, 0, 0, d.Location())}
}

// Same reports whether d and other name the same calendar day.
func (d Day) Same(other Day) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d Day) String() string {
	return d.Format(DayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DayLayout) + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
