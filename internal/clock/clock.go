package clock

import (
	"sync"
	"time"
)

// Clock is the single source of "now" for the accounting code.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local time zone.
type System struct{}

// Now returns the current local time with its monotonic reading intact, so
// durations measured within one process ignore wall clock steps.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a Clock whose time only changes when told to. Tests use it to
// drive sessions without sleeping.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock frozen at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the frozen time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
