package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/faizmokh/worktimer/internal/account"
	"github.com/faizmokh/worktimer/internal/clock"
	"github.com/faizmokh/worktimer/internal/config"
	"github.com/faizmokh/worktimer/internal/files"
	"github.com/faizmokh/worktimer/internal/log"
	"github.com/faizmokh/worktimer/internal/ui"
)

// App owns the process-wide account and its collaborators. The account is
// opened on first use so flags can change where it is read from.
type App struct {
	home  string
	goal  string
	clock clock.Clock

	acct   *account.Account
	report account.LoadReport
	logger *log.Logger
	closer io.Closer
}

// NewApp prepares an App that reads time from clk.
func NewApp(clk clock.Clock) *App {
	return &App{clock: clk, logger: log.Discard()}
}

// Account opens the account on first call and returns the same instance
// afterwards. Load notices are written to the command's stderr.
func (a *App) Account(cmd *cobra.Command) (*account.Account, error) {
	if a.acct != nil {
		return a.acct, nil
	}
	acct, err := a.open(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if notice := loadNotice(a.report); notice != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
	}
	return acct, nil
}

// open builds the account without printing its load notice; callers decide
// where the notice goes. Storage problems only produce warnings on warn: the
// account then starts fresh and reports write failures on mutation.
func (a *App) open(warn io.Writer) (*account.Account, error) {
	if a.acct != nil {
		return a.acct, nil
	}

	manager, err := files.NewManager(a.home)
	if err != nil {
		return nil, err
	}
	if err := manager.EnsureBaseDir(); err != nil {
		fmt.Fprintf(warn, "Warning: data directory unavailable: %v\n", err)
	}

	cfg, err := config.Load(manager)
	if err != nil {
		return nil, err
	}
	if a.goal != "" {
		goal, err := config.ParseGoal(a.goal)
		if err != nil {
			return nil, fmt.Errorf("--goal: %w", err)
		}
		cfg.WeeklyGoalHours = goal
	}

	logger, closer, err := log.OpenFile(manager.LogPath(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(warn, "Warning: logging disabled: %v\n", err)
	} else {
		a.logger, a.closer = logger, closer
	}

	a.acct, a.report = account.Open(account.NewFileStore(manager), a.clock, cfg.WeeklyGoalHours, account.WithLogger(a.logger))
	return a.acct, nil
}

// dashboard prepares the TUI model. The load notice is shown inside the
// dashboard rather than on stderr, which the alt screen would hide anyway.
func (a *App) dashboard(cmd *cobra.Command) (ui.Model, error) {
	acct, err := a.open(cmd.ErrOrStderr())
	if err != nil {
		return ui.Model{}, err
	}
	m := ui.NewModel(acct, a.logger)
	m.SetNotice(loadNotice(a.report))
	return m, nil
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
