package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDay() failed: %v", err)
	}
	if got := day.String(); got != "2026-03-02" {
		t.Errorf("String() = %q, want %q", got, "2026-03-02")
	}

	// blank input is a zero day, not an error
	day, err = ParseDay("  ")
	if err != nil {
		t.Fatalf("ParseDay() failed: %v", err)
	}
	if !day.IsZero() {
		t.Errorf("ParseDay(blank) = %v, want zero", day)
	}

	if _, err = ParseDay("yesterday"); err == nil {
		t.Error("ParseDay(garbage) returned no error")
	}
}

func TestParseDay_timestampFallback(t *testing.T) {
	// older records carry full timestamps; they land on the local day
	at := time.Date(2026, 3, 2, 15, 4, 5, 0, time.Local)
	day, err := ParseDay(at.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("ParseDay() failed: %v", err)
	}
	if !day.Equal(NewDay(at)) {
		t.Errorf("ParseDay(timestamp) = %v, want %v", day, NewDay(at))
	}
	if got := day.String(); got != "2026-03-02" {
		t.Errorf("String() = %q, want %q", got, "2026-03-02")
	}
}

func TestDay_comparisons(t *testing.T) {
	day := NewDay(time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local))
	sameDayLater := NewDay(time.Date(2026, 3, 2, 23, 59, 0, 0, time.Local))
	next := day.AddDays(1)

	if !day.Equal(sameDayLater) {
		t.Error("Equal() = false for two times on the same day")
	}
	if day.Before(sameDayLater) || day.After(sameDayLater) {
		t.Error("Before()/After() ordered two times on the same day")
	}
	if !day.Before(next) {
		t.Error("Before() = false for the previous day")
	}
	if !next.After(day) {
		t.Error("After() = false for the next day")
	}
}

func TestDay_addDays(t *testing.T) {
	day := NewDay(time.Date(2026, 2, 27, 0, 0, 0, 0, time.Local))
	if got := day.AddDays(3).String(); got != "2026-03-02" {
		t.Errorf("AddDays(3) = %q, want %q", got, "2026-03-02")
	}
	if got := day.AddDays(-27).String(); got != "2026-01-31" {
		t.Errorf("AddDays(-27) = %q, want %q", got, "2026-01-31")
	}
}

func TestDay_jsonRoundTrip(t *testing.T) {
	day, err := ParseDay("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDay() failed: %v", err)
	}

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if got := string(data); got != `"2026-03-02"` {
		t.Errorf("Marshal() = %s, want %q", got, `"2026-03-02"`)
	}

	var back Day
	if err = json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !back.Equal(day) {
		t.Errorf("round trip = %v, want %v", back, day)
	}

	var zero Day
	if err = json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("Unmarshal(blank) failed: %v", err)
	}
	if !zero.IsZero() {
		t.Error("Unmarshal(blank) is not the zero day")
	}

	data, err = json.Marshal(Day{})
	if err != nil {
		t.Fatalf("Marshal(zero) failed: %v", err)
	}
	if got := string(data); got != `""` {
		t.Errorf("Marshal(zero) = %s, want %q", got, `""`)
	}
}
