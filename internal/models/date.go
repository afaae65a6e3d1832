package models

import "time"

// DayFormat is the wire encoding for calendar dates. Day precision only,
// no time zone offset.
const DayFormat = "2006-01-02"

// Day normalizes t to UTC midnight of its calendar day. Stored dates are
// parsed as UTC midnight and in-memory dates are collapsed the same way,
// so every comparison in the conflict logic happens on equal footing.
// Idempotent: Day(Day(t)) == Day(t).
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into its canonical day value.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// FormatDay renders a canonical day value as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// SameDay reports whether a and b denote the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
