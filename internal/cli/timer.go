package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/worktimer/internal/account"
)

func newStartCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a work session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := app.Account(cmd)
			if err != nil {
				return err
			}
			outcome, err := acct.Start()
			fmt.Fprintln(cmd.OutOrStdout(), describeOutcome(outcome, 0))
			return notSaved(err)
		},
	}
}

func newStopCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session and add it to this week's total.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := app.Account(cmd)
			if err != nil {
				return err
			}
			outcome, elapsed, err := acct.Stop()
			fmt.Fprintln(cmd.OutOrStdout(), describeOutcome(outcome, elapsed))
			return notSaved(err)
		},
	}
}

func newResetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear this week's total and discard any running session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := app.Account(cmd)
			if err != nil {
				return err
			}
			outcome, err := acct.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), describeOutcome(outcome, 0))
			return notSaved(err)
		},
	}
}

func newStatusCommand(app *App) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hours worked this week and hours remaining.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := app.Account(cmd)
			if err != nil {
				return err
			}
			st := acct.Status()
			if outputJSON {
				return printStatusJSON(cmd, st)
			}
			printStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit status as a JSON object")

	return cmd
}

func printStatusJSON(cmd *cobra.Command, st account.Status) error {
	type dto struct {
		WeekStart             string   `json:"week_start"`
		GoalHours             float64  `json:"goal_hours"`
		TotalHours            float64  `json:"total_hours"`
		RemainingHours        float64  `json:"remaining_hours"`
		Running               bool     `json:"running"`
		CurrentSessionSeconds *float64 `json:"current_session_seconds,omitempty"`
	}

	out := dto{
		WeekStart:      st.WeekStart.Format(time.RFC3339),
		GoalHours:      st.GoalHours,
		TotalHours:     st.TotalHours,
		RemainingHours: st.RemainingHours,
		Running:        st.Running,
	}
	if st.Running {
		session := st.CurrentSessionSeconds
		out.CurrentSessionSeconds = &session
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
