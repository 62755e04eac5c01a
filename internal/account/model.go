package account

import (
	"math"
	"time"
)

// DefaultGoalHours is the weekly goal used when none is configured.
const DefaultGoalHours = 100.0

// Snapshot is the durable part of the account. SessionStart is the zero time
// whenever Running is false.
type Snapshot struct {
	WeekStart          time.Time
	AccumulatedSeconds float64
	Running            bool
	SessionStart       time.Time
}

// fresh is the state of a new install for the week containing now.
func fresh(now time.Time) Snapshot {
	return Snapshot{WeekStart: WeekStart(now)}
}

// Status is a read-only view computed from the account at a point in time.
type Status struct {
	WeekStart      time.Time
	GoalHours      float64
	TotalHours     float64
	RemainingHours float64
	Running        bool
	// CurrentSessionSeconds is the open session's elapsed time. It is not
	// part of TotalHours and is zero when Running is false.
	CurrentSessionSeconds float64
}

// Progress is TotalHours as a fraction of the goal, clamped to [0, 1].
func (s Status) Progress() float64 {
	if s.GoalHours <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, s.TotalHours/s.GoalHours))
}

// Outcome names the result of a start, stop, or reset.
type Outcome uint8

const (
	// OutcomeStarted means a new session opened.
	OutcomeStarted Outcome = iota + 1
	// OutcomeAlreadyRunning means start was a no-op.
	OutcomeAlreadyRunning
	// OutcomeStopped means the open session closed and was credited.
	OutcomeStopped
	// OutcomeNotRunning means stop was a no-op.
	OutcomeNotRunning
	// OutcomeReset means the weekly total was cleared.
	OutcomeReset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStarted:
		return "started"
	case OutcomeAlreadyRunning:
		return "already_running"
	case OutcomeStopped:
		return "stopped"
	case OutcomeNotRunning:
		return "not_running"
	case OutcomeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Message is the short sentence front ends show for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeStarted:
		return "Timer started."
	case OutcomeAlreadyRunning:
		return "Timer is already running."
	case OutcomeStopped:
		return "Timer stopped."
	case OutcomeNotRunning:
		return "Timer is not running."
	case OutcomeReset:
		return "Timer has been reset."
	default:
		return ""
	}
}

// IsNoop reports whether the operation left the account untouched.
func (o Outcome) IsNoop() bool {
	return o == OutcomeAlreadyRunning || o == OutcomeNotRunning
}

// LoadOutcome describes where the in-memory state came from when the account
// was opened.
type LoadOutcome uint8

const (
	// LoadExisting means the stored snapshot was used unchanged.
	LoadExisting LoadOutcome = iota
	// LoadFresh means there was no snapshot yet.
	LoadFresh
	// LoadRecovered means the snapshot could not be read or was invalid and
	// a fresh state replaced it.
	LoadRecovered
	// LoadRolledOver means the snapshot belonged to an earlier week and its
	// total was discarded.
	LoadRolledOver
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadExisting:
		return "existing"
	case LoadFresh:
		return "fresh"
	case LoadRecovered:
		return "recovered"
	case LoadRolledOver:
		return "rolled_over"
	default:
		return "unknown"
	}
}

// LoadReport is returned by Open. Err carries the read or parse failure
// behind LoadRecovered and is nil otherwise.
type LoadReport struct {
	Outcome LoadOutcome
	Err     error
	// PreviousWeek is the stored week anchor that was replaced on rollover.
	PreviousWeek time.Time
	// SessionClamped is set when a session left open across the rollover was
	// moved to start at the new week boundary.
	SessionClamped bool
}
