package clock

import (
	"testing"
	"time"
)

func TestTimestampFormat(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		min      int
		sec      int
		expected string
	}{
		{"Midnight", 0, 0, 0, "00:00:00"},
		{"Morning with padding", 9, 5, 7, "09:05:07"},
		{"Noon", 12, 0, 0, "12:00:00"},
		{"Afternoon stays 24-hour", 15, 30, 45, "15:30:45"},
		{"Last second of day", 23, 59, 59, "23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2024, 6, 1, tt.hour, tt.min, tt.sec, 0, time.Local)
			got := Timestamp(ts)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
			if len(got) != 8 {
				t.Errorf("Expected 8 characters, got %d", len(got))
			}
		})
	}
}

func TestTimestampAlphabet(t *testing.T) {
	// Every cycle renders only digits and colons, the full glyph alphabet
	ts := Timestamp(time.Date(2024, 6, 1, 18, 42, 3, 0, time.Local))
	for i, c := range ts {
		if i == 2 || i == 5 {
			if c != ':' {
				t.Errorf("Expected ':' at index %d, got %q", i, c)
			}
			continue
		}
		if c < '0' || c > '9' {
			t.Errorf("Expected digit at index %d, got %q", i, c)
		}
	}
}

func TestSystemSourceNow(t *testing.T) {
	src := NewSystemSource()
	before := time.Now()
	got := src.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Expected Now() between %v and %v, got %v", before, after, got)
	}
}

func TestMockSource(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 59, 58, 0, time.Local)
	src := NewMockSource(start)

	if got := src.Now(); !got.Equal(start) {
		t.Errorf("Expected %v, got %v", start, got)
	}

	src.Advance(2 * time.Second)
	if got := src.Now(); got.Hour() != 11 || got.Second() != 0 {
		t.Errorf("Expected 11:00:00 after advance, got %v", got)
	}

	reset := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	src.SetTime(reset)
	if got := src.Now(); !got.Equal(reset) {
		t.Errorf("Expected %v after SetTime, got %v", reset, got)
	}
}
