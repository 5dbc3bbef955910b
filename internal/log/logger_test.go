package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerbosityLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", LevelQuiet, false, false},
		{"info", LevelInfo, true, false},
		{"debug", LevelDebug, true, true},
		{"trace", LevelTrace, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Initialize(tt.level, &buf)

			if got := IsInfo(); got != tt.wantInfo {
				t.Errorf("IsInfo() = %v, want %v", got, tt.wantInfo)
			}
			if got := IsDebug(); got != tt.wantDebug {
				t.Errorf("IsDebug() = %v, want %v", got, tt.wantDebug)
			}
			if got := Verbosity(); got != tt.level {
				t.Errorf("Verbosity() = %d, want %d", got, tt.level)
			}
		})
	}
}

func TestInfoSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelQuiet, &buf)

	Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output at quiet level, got %q", buf.String())
	}

	Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestInfoEmittedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelInfo, &buf)

	Info("fetching profile", "handle", "octocat")
	out := buf.String()
	if !strings.Contains(out, "fetching profile") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "octocat") {
		t.Errorf("expected attr value in output, got %q", out)
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelInfo, &buf)

	Debug("cache lookup")
	if strings.Contains(buf.String(), "cache lookup") {
		t.Errorf("debug message should be suppressed at info level, got %q", buf.String())
	}
}
