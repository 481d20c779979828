// Package biztime centralizes time conventions for scheduling data.
// All storage and transport use UTC. Shift dates are date-only values
// pinned to UTC midnight, and overtime accounting uses the calendar year
// of the shift date as the fiscal year.
package biztime

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for date-only values (shift dates,
// leave ranges, seniority dates).
const DateLayout = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// Date truncates a time to its date component at UTC midnight.
func Date(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date-only string (YYYY-MM-DD) as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats a time as a date-only string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FiscalYear returns the overtime accounting year for a shift date.
// Fiscal years follow the calendar year of the shift date, not the
// date an attempt was recorded.
func FiscalYear(shiftDate time.Time) int {
	return shiftDate.UTC().Year()
}

// DateWithin reports whether date falls inside [start, end] inclusive,
// comparing date components only.
func DateWithin(date, start, end time.Time) bool {
	d := Date(date)
	return !d.Before(Date(start)) && !d.After(Date(end))
}
