package account

import (
	"errors"
	"time"

	"github.com/faizmokh/worktimer/internal/clock"
	"github.com/faizmokh/worktimer/internal/log"
)

// Account tracks this week's work time against a goal. It is not safe for
// concurrent use; one process owns it for its whole lifetime.
type Account struct {
	store     Store
	clock     clock.Clock
	logger    *log.Logger
	goalHours float64

	state Snapshot
}

// Option customizes Open.
type Option func(*Account)

// WithLogger routes account events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(a *Account) {
		if logger != nil {
			a.logger = logger.WithComponent("account")
		}
	}
}

// Open loads the account from store and normalizes it against the current
// week. Read failures never fail Open: they degrade to a fresh state and are
// described by the returned LoadReport. A goalHours <= 0 selects
// DefaultGoalHours.
func Open(store Store, clk clock.Clock, goalHours float64, opts ...Option) (*Account, LoadReport) {
	if goalHours <= 0 {
		goalHours = DefaultGoalHours
	}
	a := &Account{
		store:     store,
		clock:     clk,
		logger:    log.Discard(),
		goalHours: goalHours,
	}
	for _, opt := range opts {
		opt(a)
	}

	report := a.load()
	a.logger.Info("account loaded",
		"outcome", report.Outcome.String(),
		"week_start", a.state.WeekStart.Format(time.RFC3339),
		"accumulated_seconds", a.state.AccumulatedSeconds,
		"running", a.state.Running,
	)
	return a, report
}

func (a *Account) load() LoadReport {
	now := a.clock.Now()

	stored, err := a.store.Load()
	if err != nil {
		a.state = fresh(now)
		if errors.Is(err, ErrNoSnapshot) {
			return LoadReport{Outcome: LoadFresh}
		}
		a.logger.Warn("discarding unreadable snapshot", "error", err)
		return LoadReport{Outcome: LoadRecovered, Err: err}
	}

	current := WeekStart(now)
	if !stored.WeekStart.Before(current) {
		a.state = stored
		return LoadReport{Outcome: LoadExisting}
	}

	report := LoadReport{Outcome: LoadRolledOver, PreviousWeek: stored.WeekStart}
	next := Snapshot{WeekStart: current}
	if stored.Running {
		next.Running = true
		next.SessionStart = stored.SessionStart
		if next.SessionStart.Before(current) {
			next.SessionStart = current
			report.SessionClamped = true
		}
	}
	a.state = next
	a.logger.Info("week rolled over",
		"previous_week", stored.WeekStart.Format(time.RFC3339),
		"discarded_seconds", stored.AccumulatedSeconds,
		"session_clamped", report.SessionClamped,
	)
	return report
}

// GoalHours returns the configured weekly goal.
func (a *Account) GoalHours() float64 {
	return a.goalHours
}

// Snapshot returns a copy of the current state.
func (a *Account) Snapshot() Snapshot {
	return a.state
}

// Start opens a session. Starting while a session is open is a no-op.
func (a *Account) Start() (Outcome, error) {
	if a.state.Running {
		return OutcomeAlreadyRunning, nil
	}

	a.state.Running = true
	a.state.SessionStart = a.clock.Now()
	a.logger.Info("timer started", "session_start", a.state.SessionStart.Format(time.RFC3339))
	return OutcomeStarted, a.persist("start")
}

// Stop closes the open session, credits its duration to the weekly total, and
// returns that duration. Stopping with no open session is a no-op.
func (a *Account) Stop() (Outcome, time.Duration, error) {
	if !a.state.Running {
		return OutcomeNotRunning, 0, nil
	}

	elapsed := a.elapsed()
	a.state.AccumulatedSeconds += elapsed.Seconds()
	a.state.Running = false
	a.state.SessionStart = time.Time{}
	a.logger.Info("timer stopped",
		"duration_seconds", elapsed.Seconds(),
		"accumulated_seconds", a.state.AccumulatedSeconds,
	)
	return OutcomeStopped, elapsed, a.persist("stop")
}

// Reset clears the weekly total and drops any open session without crediting
// it. The week anchor is kept.
func (a *Account) Reset() (Outcome, error) {
	discarded := a.state.AccumulatedSeconds
	if a.state.Running {
		discarded += a.elapsed().Seconds()
	}

	a.state.AccumulatedSeconds = 0
	a.state.Running = false
	a.state.SessionStart = time.Time{}
	a.logger.Info("timer reset", "discarded_seconds", discarded)
	return OutcomeReset, a.persist("reset")
}

// Status computes totals as of now. It never changes or saves state, so it
// can be polled freely.
func (a *Account) Status() Status {
	total := a.state.AccumulatedSeconds / 3600
	st := Status{
		WeekStart:      a.state.WeekStart,
		GoalHours:      a.goalHours,
		TotalHours:     total,
		RemainingHours: max(0, a.goalHours-total),
		Running:        a.state.Running,
	}
	if a.state.Running {
		st.CurrentSessionSeconds = a.elapsed().Seconds()
	}
	return st
}

// elapsed is the open session's length, never negative even if the clock
// stepped backwards.
func (a *Account) elapsed() time.Duration {
	d := a.clock.Now().Sub(a.state.SessionStart)
	if d < 0 {
		return 0
	}
	return d
}

func (a *Account) persist(op string) error {
	if err := a.store.Save(a.state); err != nil {
		a.logger.Error("save failed", "op", op, "error", err)
		return &WriteError{Op: op, Err: err}
	}
	return nil
}
