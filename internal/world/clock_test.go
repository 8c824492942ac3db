package world

import (
	"testing"
	"time"
)

type manualTime struct {
	t time.Time
}

func (m *manualTime) Now() time.Time          { return m.t }
func (m *manualTime) Advance(d time.Duration) { m.t = m.t.Add(d) }

func TestClockAdvances(t *testing.T) {
	src := &manualTime{t: time.Unix(0, 0)}
	c := NewClockFrom(src.Now)

	src.Advance(time.Second)
	if got := c.Now(); got != time.Second {
		t.Errorf("Now() = %v, want 1s", got)
	}
}

func TestClockPauseFreezesTime(t *testing.T) {
	src := &manualTime{t: time.Unix(0, 0)}
	c := NewClockFrom(src.Now)

	src.Advance(2 * time.Second)
	c.Pause()
	c.Pause()
	src.Advance(5 * time.Second)

	if !c.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	if got := c.Now(); got != 2*time.Second {
		t.Errorf("Now() while paused = %v, want 2s", got)
	}
	if got := c.PausedFor(); got != 5*time.Second {
		t.Errorf("PausedFor() = %v, want 5s", got)
	}

	c.Resume()
	c.Resume()
	src.Advance(time.Second)

	if got := c.Now(); got != 3*time.Second {
		t.Errorf("Now() after resume = %v, want 3s", got)
	}
	if got := c.PausedFor(); got != 5*time.Second {
		t.Errorf("PausedFor() after resume = %v, want 5s", got)
	}
}
