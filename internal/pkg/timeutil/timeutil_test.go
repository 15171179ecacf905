package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-05")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 5 {
		t.Errorf("ParseDate = %v, want 2026-03-05", got)
	}

	for _, bad := range []string{"", "05/03/2026", "2026-3-5", "2026-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:00", "09:00", true},
		{"9:00", "09:00", true},
		{"23:59", "23:59", true},
		{"0:05", "00:05", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseClock(%q) unexpected error: %v", tt.in, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		} else if err == nil {
			t.Errorf("ParseClock(%q) expected error", tt.in)
		}
	}
}

func TestClockWithSeconds(t *testing.T) {
	if got := ClockWithSeconds("09:30"); got != "09:30:00" {
		t.Errorf("ClockWithSeconds = %q, want 09:30:00", got)
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), 10},
		{time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), -3},
		// Time-of-day on the target date is ignored.
		{time.Date(2026, 3, 6, 23, 59, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		if got := DaysUntil(tt.date, today); got != tt.want {
			t.Errorf("DaysUntil(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysUntilAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// US spring-forward on 2026-03-08: March 7 to March 9 is only 47
	// wall-clock hours but still two calendar days.
	today := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	if got := DaysUntil(time.Date(2026, 3, 9, 0, 0, 0, 0, loc), today); got != 2 {
		t.Errorf("DaysUntil across spring-forward = %d, want 2", got)
	}

	// And yesterday is 23 wall-clock hours back but still one calendar
	// day in the past.
	today = time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	if got := DaysUntil(time.Date(2026, 3, 8, 0, 0, 0, 0, loc), today); got != -1 {
		t.Errorf("DaysUntil for yesterday across spring-forward = %d, want -1", got)
	}

	// Fall-back on 2026-11-01: 49 wall-clock hours, two calendar days.
	today = time.Date(2026, 10, 31, 0, 0, 0, 0, loc)
	if got := DaysUntil(time.Date(2026, 11, 2, 0, 0, 0, 0, loc), today); got != 2 {
		t.Errorf("DaysUntil across fall-back = %d, want 2", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 7, "this is..."},
		{"", 5, ""},
		// Runes, not bytes.
		{"héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
