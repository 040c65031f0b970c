package core

import "time"

// FrameClock measures the wall-clock time between consecutive frames. The
// first Tick only records a baseline; simulated time never advances on it.
type FrameClock struct {
	last    time.Time
	hasLast bool
}

// Tick records now and returns the time elapsed since the previous Tick. ok is
// false when there was no previous timestamp.
func (c *FrameClock) Tick(now time.Time) (elapsed time.Duration, ok bool) {
	if !c.hasLast {
		c.last = now
		c.hasLast = true
		return 0, false
	}
	elapsed = now.Sub(c.last)
	if elapsed < 0 {
		elapsed = 0
	}
	c.last = now
	return elapsed, true
}

// Reset forgets the previous timestamp so the next Tick is a baseline again.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
	c.hasLast = false
}

// HasBaseline reports whether a previous timestamp is recorded.
func (c *FrameClock) HasBaseline() bool { return c.hasLast }
