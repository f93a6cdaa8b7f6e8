package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTimeRoundTrip(t *testing.T) {
	in := "2025-09-16T10:30:00"
	parsed, err := ParseDateTime(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := FormatDateTime(parsed); got != in {
		t.Errorf("round trip changed the value: %q -> %q", in, got)
	}
}

func TestParseDateTimeLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"zoneless seconds", "2025-09-16T10:30:00"},
		{"rfc3339", "2025-09-16T10:30:00Z"},
		{"rfc3339 offset", "2025-09-16T10:30:00+02:00"},
		{"no seconds", "2025-09-16T10:30"},
		{"date only", "2025-09-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if got.Year() != 2025 || got.Month() != time.September || got.Day() != 16 {
				t.Errorf("parse %q: wrong date %v", tt.in, got)
			}
		})
	}
}

func TestParseDateTimeKeepsWallClock(t *testing.T) {
	parsed, err := ParseDateTime("2025-09-16T10:30:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Hour() != 10 || parsed.Minute() != 30 {
		t.Errorf("wall clock shifted: got %02d:%02d", parsed.Hour(), parsed.Minute())
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "16/09/2025", "2025-13-40T99:99:99"} {
		if _, err := ParseDateTime(in); !errors.Is(err, ErrBadDateTime) {
			t.Errorf("ParseDateTime(%q): expected ErrBadDateTime, got %v", in, err)
		}
	}
}
