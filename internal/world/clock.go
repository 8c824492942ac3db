package world

import "time"

// Clock is game time: elapsed time since creation minus time spent paused.
// It is driven by the frame loop and is not safe for concurrent use.
type Clock struct {
	source func() time.Time

	start       time.Time
	paused      bool
	pauseStart  time.Time
	pausedTotal time.Duration
}

// NewClock creates a clock over the wall clock.
func NewClock() *Clock {
	return NewClockFrom(time.Now)
}

// NewClockFrom creates a clock over an arbitrary time source.
func NewClockFrom(source func() time.Time) *Clock {
	return &Clock{source: source, start: source()}
}

// Now returns elapsed game time. While paused it stays frozen at the pause point.
func (c *Clock) Now() time.Duration {
	at := c.source()
	if c.paused {
		at = c.pauseStart
	}
	return at.Sub(c.start) - c.pausedTotal
}

// Pause freezes game time. Pausing a paused clock is a no-op.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.source()
}

// Resume continues game time. Resuming a running clock is a no-op.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.source().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// Paused reports whether game time is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}

// PausedFor returns the cumulative pause duration, including a pause in progress.
func (c *Clock) PausedFor() time.Duration {
	total := c.pausedTotal
	if c.paused {
		total += c.source().Sub(c.pauseStart)
	}
	return total
}
