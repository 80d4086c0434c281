package core

import "time"

//go:generate go tool mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks

// Clock is the single source of wall-clock time for the simulation.
// Power-up expiry is computed by comparing stored deadlines against Now.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to.
// Tests use it to drive frame timing and power-up expiry.
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// Millis converts a millisecond count to a time.Duration.
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
