package timezone_test

import (
	"petcare/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	parsed, err := timezone.ParseDate(today)
	if err != nil {
		t.Fatalf("ParseDate(Today()) failed: %v", err)
	}

	if parsed.Format(time.DateOnly) != today {
		t.Errorf("expected round trip of %s, got %s", today, parsed.Format(time.DateOnly))
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Errorf("expected app location, got %s", parsed.Location())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := timezone.ParseDate("19/10/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
