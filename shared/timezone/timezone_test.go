package timezone_test

import (
	"hotel/shared/timezone"
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

func TestTimezoneDate(t *testing.T) {
	d := timezone.Date(2026, time.March, 1)

	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("Date() should produce midnight, got %v", d)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 1 {
		t.Errorf("Date() produced wrong calendar date: %v", d)
	}
	if d.Location() != timezone.GetLocation() {
		t.Error("Date() should use the application timezone")
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
