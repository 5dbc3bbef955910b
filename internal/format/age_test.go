package format

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		// Now (sub-minute)
		{"zero", 0, "now"},
		{"59 seconds", 59 * time.Second, "now"},

		// Minutes
		{"1 minute", time.Minute, "1m"},
		{"59 minutes", 59 * time.Minute, "59m"},

		// Hours
		{"1 hour", time.Hour, "1h"},
		{"23 hours", 23 * time.Hour, "23h"},

		// Days
		{"1 day", 24 * time.Hour, "1d"},
		{"6 days", 6 * 24 * time.Hour, "6d"},

		// Weeks
		{"7 days", 7 * 24 * time.Hour, "1w"},
		{"29 days", 29 * 24 * time.Hour, "4w"},

		// Months
		{"30 days", 30 * 24 * time.Hour, "1mo"},
		{"364 days", 364 * 24 * time.Hour, "12mo"},

		// Years
		{"365 days", 365 * 24 * time.Hour, "1y"},
		{"800 days", 800 * 24 * time.Hour, "2y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Age(tt.duration)
			if got != tt.expected {
				t.Errorf("Age(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{999999, "1000.0k"},
		{2000000, "2.0m"},
	}

	for _, tt := range tests {
		got := Count(tt.n)
		if got != tt.expected {
			t.Errorf("Count(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestLanguageColor(t *testing.T) {
	if got := LanguageColor("Go"); got != "#00ADD8" {
		t.Errorf("LanguageColor(Go) = %q, want #00ADD8", got)
	}
	if got := LanguageColor("Brainfuck"); got != DefaultLanguageColor {
		t.Errorf("LanguageColor(unknown) = %q, want %q", got, DefaultLanguageColor)
	}
}
