package helper

import (
	"strings"
	"time"
)

const ISODate = "2006-01-02"

// ParseISODate parses an optional "YYYY-MM-DD" form field. Empty input is
// not an error.
func ParseISODate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DayRange returns [start of day, start of next day) for portable
// date-equality filters on timestamp columns.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
