// Package audio plays short synthesized cues in reaction to arena events.
// Audio is optional: every call is a no-op until Initialize succeeds.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/arenasurvivors/internal/event"
	"github.com/samdwyer/arenasurvivors/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound.
type Cue int

const (
	CuePickup Cue = iota
	CueKill
	CueLevelUp
	CueChoice
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueKill:
		return "kill"
	case CueLevelUp:
		return "level_up"
	case CueChoice:
		return "choice"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CueFor maps an event type to its cue.
func CueFor(t event.Type) (Cue, bool) {
	switch t {
	case event.PickupConsumed:
		return CuePickup, true
	case event.EnemyKilled:
		return CueKill, true
	case event.LevelUp:
		return CueLevelUp, true
	case event.AbilityChosen:
		return CueChoice, true
	case event.GameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

// Player mixes cues into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues cue c.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(Stream(c))
	speaker.Unlock()
}

// OnEvent plays the cue for e, if any.
func (p *Player) OnEvent(e event.Event) {
	c, ok := CueFor(e.Type)
	if !ok {
		return
	}
	logger.Log.WithField("cue", c.String()).Trace("audio cue")
	p.Play(c)
}

// Stream builds the finite streamer for cue c.
func Stream(c Cue) beep.Streamer {
	switch c {
	case CuePickup:
		return tone(880, 1320, 60*time.Millisecond)
	case CueKill:
		return tone(220, 110, 90*time.Millisecond)
	case CueLevelUp:
		return beep.Seq(
			tone(523, 523, 80*time.Millisecond),
			tone(659, 659, 80*time.Millisecond),
			tone(784, 784, 140*time.Millisecond),
		)
	case CueChoice:
		return tone(660, 990, 70*time.Millisecond)
	case CueGameOver:
		return beep.Seq(
			tone(392, 392, 200*time.Millisecond),
			tone(262, 196, 400*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
}

func tone(from, to float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewSweepGenerator(sampleRate, from, to, d))
}
