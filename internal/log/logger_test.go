package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerTagsComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: slog.LevelInfo, Component: "account", Output: buf})

	logger.Info("timer started", "session_start", "09:00")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=account") {
		t.Fatalf("output missing component: %q", out)
	}
	if !strings.Contains(out, `msg="timer started"`) {
		t.Fatalf("output missing message: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked at info level: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Output: buf}).WithComponent("ui")

	if logger.Component() != "ui" {
		t.Fatalf("Component() = %q, want ui", logger.Component())
	}
	logger.Warn("refresh failed")
	if !strings.Contains(buf.String(), "component=ui") {
		t.Fatalf("output missing child component: %q", buf.String())
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "worktimer.log")

	logger, closer, err := OpenFile(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Info("first")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	logger, closer, err = OpenFile(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("OpenFile again: %v", err)
	}
	logger.Info("second")
	closer.Close()

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(contents), "first") || !strings.Contains(string(contents), "second") {
		t.Fatalf("log file missing records: %q", contents)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
