package parse

import (
	"testing"
	"time"
)

func TestClockMinutesText(t *testing.T) {
	tests := []struct {
		input string
		mins  int
		ok    bool
	}{
		{"2:30pm", 870, true},
		{"14:30", 870, true},
		{"2.30pm", 870, true},
		{"2pm", 840, true},
		{"  2:30 PM ", 870, true},
		{"12am", 0, true},
		{"12:15am", 15, true},
		{"12pm", 720, true},
		{"9", 540, true},
		{"10:00", 600, true},
		{"", 0, false},
		{"   ", 0, false},
		{"tba", 0, false},
		{"lunch", 0, false},
	}

	for _, tt := range tests {
		mins, ok := ClockMinutes(tt.input)
		if ok != tt.ok {
			t.Errorf("ClockMinutes(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && mins != tt.mins {
			t.Errorf("ClockMinutes(%q) = %d, want %d", tt.input, mins, tt.mins)
		}
	}
}

func TestClockMinutesEquivalentForms(t *testing.T) {
	// All spellings of the same wall-clock time must normalize identically.
	forms := []string{"2:30pm", "14:30", "2.30pm", "14.30"}
	for _, f := range forms {
		mins, ok := ClockMinutes(f)
		if !ok || mins != 870 {
			t.Errorf("ClockMinutes(%q) = %d, %v; want 870, true", f, mins, ok)
		}
	}
}

func TestClockMinutesTime(t *testing.T) {
	v := time.Date(2025, 9, 13, 14, 30, 0, 0, time.UTC)
	mins, ok := ClockMinutes(v)
	if !ok || mins != 870 {
		t.Errorf("ClockMinutes(time.Time 14:30) = %d, %v; want 870, true", mins, ok)
	}
}

func TestClockMinutesSerial(t *testing.T) {
	// Fraction-of-day serial: 0.5 is noon.
	if mins, ok := ClockMinutes(0.5); !ok || mins != 720 {
		t.Errorf("ClockMinutes(0.5) = %d, %v; want 720, true", mins, ok)
	}
	// 14:30 as a fraction of the day.
	if mins, ok := ClockMinutes(14.5 / 24); !ok || mins != 870 {
		t.Errorf("ClockMinutes(14.5/24) = %d, %v; want 870, true", mins, ok)
	}
	// Full date-time serial keeps only the time of day.
	serial := time.Date(2025, 9, 13, 12, 0, 0, 0, time.UTC).
		Sub(time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)).Hours() / 24
	if mins, ok := ClockMinutes(serial); !ok || mins != 720 {
		t.Errorf("ClockMinutes(%v) = %d, %v; want 720, true", serial, mins, ok)
	}
	if _, ok := ClockMinutes(-1.0); ok {
		t.Error("ClockMinutes(-1.0) should not parse")
	}
}

func TestClockMinutesUnsupported(t *testing.T) {
	if _, ok := ClockMinutes(nil); ok {
		t.Error("ClockMinutes(nil) should not parse")
	}
	if _, ok := ClockMinutes(struct{}{}); ok {
		t.Error("ClockMinutes(struct{}{}) should not parse")
	}
}
