package timeutil

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	StampLayout    = "2006-01-02 15:04"
	StampSecLayout = "2006-01-02 15:04:05"
)

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseClock validates a time-of-day in 24-hour HH:MM form and
// returns it normalized (zero-padded).
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Format(ClockLayout), nil
}

// ClockWithSeconds expands a normalized HH:MM clock to HH:MM:SS,
// the form used inside combined date-time strings.
func ClockWithSeconds(clock string) string {
	return clock + ":00"
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

func FormatStampSec(t time.Time) string {
	return t.Format(StampSecLayout)
}

// Today returns the current date truncated to midnight local time.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DaysUntil returns the whole calendar days from today until the given
// date. Negative when the date is in the past. Both arguments are
// reduced to UTC midnights of their Y/M/D first, so a DST transition
// between them cannot skew the count by an hour.
func DaysUntil(date time.Time, today time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
