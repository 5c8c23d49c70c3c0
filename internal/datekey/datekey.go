// Package datekey provides the calendar-date value type used as the join key
// between reminders and daily notes.
package datekey

import (
	"fmt"
	"regexp"
	"time"
)

// Date is a calendar date with day granularity. The zero value is not a
// valid date; use Today, New, or FromText.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// datePattern matches an ISO-style date embedded in arbitrary text,
// e.g. a filename like "notes-2024-01-05-backup.md".
var datePattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

// New creates a Date from its components.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current local calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates a time to its local calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// FromText extracts the first YYYY-MM-DD pattern from text and parses it.
// Returns false if no pattern is present or the digits do not form a real
// calendar date (e.g. 2024-13-45).
func FromText(text string) (Date, bool) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false
	}

	t, err := time.Parse("2006-01-02", m[0])
	if err != nil {
		return Date{}, false
	}
	return FromTime(t), true
}

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}
