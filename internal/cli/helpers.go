package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/faizmokh/worktimer/internal/account"
	"github.com/faizmokh/worktimer/internal/format"
)

func describeOutcome(outcome account.Outcome, elapsed time.Duration) string {
	if outcome == account.OutcomeStopped {
		return fmt.Sprintf("Timer stopped. Duration: %s (%s hours)", format.Duration(elapsed), format.Hours(elapsed.Hours()))
	}
	return outcome.Message()
}

// notSaved turns a write failure into the command's error so the process
// exits non-zero after the outcome has been printed.
func notSaved(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("change applied but not saved: %w", err)
}

func loadNotice(report account.LoadReport) string {
	switch report.Outcome {
	case account.LoadRecovered:
		return fmt.Sprintf("Warning: saved timer state could not be read (%v); starting fresh.", report.Err)
	case account.LoadRolledOver:
		msg := fmt.Sprintf("New week started; total for the week of %s was reset.", report.PreviousWeek.Format("2006-01-02"))
		if report.SessionClamped {
			msg += " The running session now counts from Monday 00:00."
		}
		return msg
	default:
		return ""
	}
}

func printStatus(out io.Writer, st account.Status) {
	fmt.Fprintf(out, "Week Of: %s\n", st.WeekStart.Format("Monday, 02 January 2006"))
	fmt.Fprintf(out, "Weekly Goal: %s hours\n", format.Hours(st.GoalHours))
	fmt.Fprintf(out, "Current Week's Work: %s hours (%s)\n", format.Hours(st.TotalHours), format.Clock(st.TotalHours*3600))
	fmt.Fprintf(out, "Remaining Hours: %s hours\n", format.Hours(st.RemainingHours))
	if st.Running {
		fmt.Fprintln(out, "Status: Running")
		fmt.Fprintf(out, "Current Session: %s\n", format.Clock(st.CurrentSessionSeconds))
		return
	}
	fmt.Fprintln(out, "Status: Stopped")
}
