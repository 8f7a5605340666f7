package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{input: "debug", want: log.DebugLevel},
		{input: "info", want: log.InfoLevel},
		{input: "warn", want: log.WarnLevel},
		{input: "error", want: log.ErrorLevel},
		{input: "", want: log.InfoLevel},
		{input: "bogus", want: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewWritesToConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog, err := New(&buf, DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closeLog()

	logger.Info("task added", "task", "Exercise")

	out := buf.String()
	if !strings.Contains(out, "task added") {
		t.Errorf("console output %q does not contain the message", out)
	}
	if !strings.Contains(out, "Exercise") {
		t.Errorf("console output %q does not contain the field value", out)
	}
}

func TestNewAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.log")

	opts := DefaultOptions()
	opts.Path = path

	for _, msg := range []string{"first run", "second run"} {
		var buf bytes.Buffer
		logger, closeLog, err := New(&buf, opts)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		logger.Info(msg)
		if err := closeLog(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	// Append mode: the first run's line survives the second.
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("log file %q missing appended lines", string(data))
	}
}

func TestNewLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.WarnLevel

	logger, closeLog, err := New(&buf, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closeLog()

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info message leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn message missing: %q", out)
	}
}
