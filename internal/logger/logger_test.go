package logger

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{in: "debug", want: DebugLevel, ok: true},
		{in: " WARN ", want: WarnLevel, ok: true},
		{in: "Error", want: ErrorLevel, ok: true},
		{in: "info", want: InfoLevel, ok: true},
		{in: "trace", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := ParseLevel(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	tests := map[LogLevel]charmlog.Level{
		DebugLevel: charmlog.DebugLevel,
		InfoLevel:  charmlog.InfoLevel,
		WarnLevel:  charmlog.WarnLevel,
		ErrorLevel: charmlog.ErrorLevel,
		"":         charmlog.InfoLevel,
	}
	for level, want := range tests {
		if got := level.ToCharmlogLevel(); got != want {
			t.Fatalf("%q.ToCharmlogLevel() = %v, want %v", level, got, want)
		}
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: WarnLevel, Output: &buf})

	log.Info("hidden message")
	log.Warn("delegate not derived", "type", "Header")

	got := buf.String()
	if strings.Contains(got, "hidden message") {
		t.Fatalf("info message should be filtered: %q", got)
	}
	for _, want := range []string{"gen-shape", "delegate not derived", "type=Header"} {
		if !strings.Contains(got, want) {
			t.Fatalf("log output missing %q: %q", want, got)
		}
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}
