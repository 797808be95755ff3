// Package timefmt normalizes timestamps between their wire form and the
// canonical storage form used by the attendance tables.
//
// All timestamps are treated as naive local time: the calendar and clock
// fields are read as-is in the host's local zone and no offset is stored.
// Switching to UTC-normalized arithmetic would change computed hours for
// any deployment outside UTC.
package timefmt

import (
	"errors"
	"time"
)

const (
	// DateTimeLayout is the storage form for timestamp columns.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the storage form for date columns.
	DateLayout = "2006-01-02"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp format")

// FormatDateTime renders t as "YYYY-MM-DD HH:MM:SS" local wall clock.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDate renders t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CurrentDateTime returns the current local time in storage form.
func CurrentDateTime() string {
	return FormatDateTime(time.Now())
}

// ParseTimestamp parses a timestamp-like input into local time. It accepts
// RFC3339 (with or without fractional seconds), the storage datetime form,
// and a bare date. RFC3339 inputs keep their clock fields but are re-homed
// into the local zone rather than converted.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return rehome(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return rehome(t), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidTimestamp
}

// ParseDate parses a strict "YYYY-MM-DD" string into local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t, nil
}

// rehome rebuilds t's calendar and clock fields in the local zone,
// discarding whatever offset came in on the wire.
func rehome(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}
