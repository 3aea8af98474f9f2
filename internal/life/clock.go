package life

import "time"

// DefaultTickInterval is the simulated time between generations.
const DefaultTickInterval = 100 * time.Millisecond

// Clock gates generation steps behind an accumulated-time threshold and a
// run/pause flag.
type Clock struct {
	running  bool
	elapsed  time.Duration
	interval time.Duration
}

// NewClock constructs a paused clock firing once per interval. Non-positive
// intervals fall back to DefaultTickInterval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{interval: interval}
}

// Running reports whether the clock is in the running state.
func (c *Clock) Running() bool { return c.running }

// Toggle flips the clock between running and paused. The accumulator keeps
// counting while paused, so resuming past the threshold fires a step on the
// next Advance.
func (c *Clock) Toggle() {
	c.running = !c.running
}

// Advance adds dt of real time to the accumulator and reports whether one
// generation is due. The accumulator resets to zero when a step fires; lagged
// frames never produce more than one step per crossing. Negative dt is
// clamped to zero.
func (c *Clock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.elapsed += dt
	}
	if c.running && c.elapsed > c.interval {
		c.elapsed = 0
		return true
	}
	return false
}
