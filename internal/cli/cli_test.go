package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/worktimer/internal/account"
	"github.com/faizmokh/worktimer/internal/clock"
)

func newTestApp(t *testing.T) (*App, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(time.Date(2025, time.November, 3, 9, 0, 0, 0, time.Local))
	app := NewApp(clk)
	app.home = t.TempDir()
	t.Cleanup(func() { app.Close() })
	return app, clk
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func TestOneShotCommandsWorkflow(t *testing.T) {
	app, clk := newTestApp(t)

	assertContains(t, executeCommand(t, newStartCommand(app)), "Timer started.")
	assertContains(t, executeCommand(t, newStartCommand(app)), "Timer is already running.")

	clk.Advance(150 * time.Minute)
	assertContains(t, executeCommand(t, newStopCommand(app)), "Timer stopped. Duration: 2:30:00 (2.50 hours)")
	assertContains(t, executeCommand(t, newStopCommand(app)), "Timer is not running.")

	status := executeCommand(t, newStatusCommand(app))
	assertContains(t, status, "Weekly Goal: 100.00 hours")
	assertContains(t, status, "Current Week's Work: 2.50 hours (2:30:00)")
	assertContains(t, status, "Remaining Hours: 97.50 hours")
	assertContains(t, status, "Status: Stopped")

	assertContains(t, executeCommand(t, newResetCommand(app)), "Timer has been reset.")
	assertContains(t, executeCommand(t, newStatusCommand(app)), "Current Week's Work: 0.00 hours")
}

func TestStatusJSON(t *testing.T) {
	app, clk := newTestApp(t)
	executeCommand(t, newStartCommand(app))
	clk.Advance(30 * time.Second)

	out := executeCommand(t, newStatusCommand(app), "--json")

	var got struct {
		TotalHours            float64  `json:"total_hours"`
		RemainingHours        float64  `json:"remaining_hours"`
		Running               bool     `json:"running"`
		CurrentSessionSeconds *float64 `json:"current_session_seconds"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	if !got.Running || got.CurrentSessionSeconds == nil || *got.CurrentSessionSeconds != 30 {
		t.Fatalf("status json = %+v", got)
	}
	if got.RemainingHours != 100 {
		t.Fatalf("remaining_hours = %v, want 100", got.RemainingHours)
	}
}

func TestGoalFlagAndConfigFile(t *testing.T) {
	app, _ := newTestApp(t)
	if err := os.WriteFile(filepath.Join(app.home, "config.env"), []byte("WEEKLY_GOAL_HOURS=40\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := NewRootCommand(context.Background(), app)
	assertContains(t, executeCommand(t, root, "status"), "Weekly Goal: 40.00 hours")

	other, _ := newTestApp(t)
	root = NewRootCommand(context.Background(), other)
	assertContains(t, executeCommand(t, root, "status", "--goal", "12.5"), "Weekly Goal: 12.50 hours")
}

func TestInvalidGoalFlag(t *testing.T) {
	app, _ := newTestApp(t)
	root := NewRootCommand(context.Background(), app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"status", "--goal=-3"})

	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "--goal") {
		t.Fatalf("Execute() error = %v, want --goal error", err)
	}
}

func TestCorruptStateIsReportedNotFatal(t *testing.T) {
	app, _ := newTestApp(t)
	if err := os.WriteFile(filepath.Join(app.home, "state.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := executeCommand(t, newStatusCommand(app))
	assertContains(t, out, "saved timer state could not be read")
	assertContains(t, out, "Current Week's Work: 0.00 hours")
}

func TestWeekRolloverNotice(t *testing.T) {
	app, _ := newTestApp(t)
	state := `{"week_start": "2025-10-27T00:00:00", "accumulated_seconds": 7200, "is_running": false, "start_time": null}`
	if err := os.WriteFile(filepath.Join(app.home, "state.json"), []byte(state), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := executeCommand(t, newStatusCommand(app))
	assertContains(t, out, "New week started; total for the week of 2025-10-27 was reset.")
	assertContains(t, out, "Current Week's Work: 0.00 hours")
}

func TestWriteFailureExitsWithError(t *testing.T) {
	app, _ := newTestApp(t)
	// Open the account first, then make the directory unwritable by replacing it.
	executeCommand(t, newStatusCommand(app))
	app.Close()
	if err := os.RemoveAll(app.home); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if err := os.WriteFile(app.home, []byte("blocker"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := newStartCommand(app)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "not saved") {
		t.Fatalf("Execute() error = %v, want not saved", err)
	}
	assertContains(t, buf.String(), "Timer started.")
}

func TestUnusableHomeDegradesToFreshState(t *testing.T) {
	app, _ := newTestApp(t)
	blocker := filepath.Join(app.home, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	app.home = filepath.Join(blocker, "data")

	out := executeCommand(t, newStatusCommand(app))
	assertContains(t, out, "Warning: data directory unavailable")
	assertContains(t, out, "Current Week's Work: 0.00 hours")
	assertContains(t, out, "Status: Stopped")

	cmd := newStartCommand(app)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	if !errors.Is(err, account.ErrStorageWrite) {
		t.Fatalf("Execute() error = %v, want ErrStorageWrite", err)
	}
	assertContains(t, buf.String(), "Timer started.")
}

func TestDashboardShowsLoadNoticeOnlyInside(t *testing.T) {
	app, _ := newTestApp(t)
	state := `{"week_start": "2025-10-27T00:00:00", "accumulated_seconds": 7200, "is_running": false, "start_time": null}`
	if err := os.WriteFile(filepath.Join(app.home, "state.json"), []byte(state), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := NewRootCommand(context.Background(), app)
	stderr := &bytes.Buffer{}
	cmd.SetErr(stderr)

	m, err := app.dashboard(cmd)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q, want nothing before the dashboard opens", stderr.String())
	}
	assertContains(t, m.View(), "New week started")
}
