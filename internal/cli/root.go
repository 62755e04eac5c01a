package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/worktimer/internal/clock"
	"github.com/faizmokh/worktimer/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "worktimer",
		Short:   "Track this week's work hours against a goal.",
		Version: version.Info(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.dashboard(cmd)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&app.home, "home", app.home, "Data directory (default: $WORKTIMER_HOME or ~/.worktimer)")
	cmd.PersistentFlags().StringVar(&app.goal, "goal", app.goal, "Weekly goal in hours (default: config.env or 100)")

	cmd.AddCommand(
		newStartCommand(app),
		newStopCommand(app),
		newResetCommand(app),
		newStatusCommand(app),
		newMenuCommand(ctx, app),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	app := NewApp(clock.System{})
	defer app.Close()

	cmd := NewRootCommand(ctx, app)
	return cmd.Execute()
}

// Main is a helper used by cmd/worktimer/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
