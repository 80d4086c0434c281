package driver

import (
	"time"

	"github.com/vovakirdan/jet-defender/internal/core"
)

// FrameClock measures the time between frames.
type FrameClock struct {
	clock    core.Clock
	last     time.Time
	maxFrame float64
}

// NewFrameClock creates a clock whose deltas never exceed maxFrame ms.
func NewFrameClock(clock core.Clock, maxFrame float64) *FrameClock {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &FrameClock{clock: clock, maxFrame: maxFrame}
}

// Tick returns the milliseconds since the previous Tick, clamped. The first
// call returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.clock.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	return ClampDT(dt, c.maxFrame)
}

// Reset forgets the previous frame so a resumed loop does not see the pause
// as one long frame.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// ClampDT bounds a frame delta to [0, maxFrame]. A non-positive maxFrame
// disables the upper bound.
func ClampDT(dt, maxFrame float64) float64 {
	if dt < 0 {
		return 0
	}
	if maxFrame > 0 && dt > maxFrame {
		return maxFrame
	}
	return dt
}
