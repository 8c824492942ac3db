package audio

import (
	"math"
	"testing"
	"time"

	"github.com/samdwyer/arenasurvivors/internal/event"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		typ  event.Type
		want Cue
		ok   bool
	}{
		{event.PickupConsumed, CuePickup, true},
		{event.EnemyKilled, CueKill, true},
		{event.LevelUp, CueLevelUp, true},
		{event.AbilityChosen, CueChoice, true},
		{event.GameOver, CueGameOver, true},
		{event.WaveSpawned, 0, false},
	}
	for _, tt := range tests {
		got, ok := CueFor(tt.typ)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("CueFor(%q) = %v, %v, want %v, %v", tt.typ, got, ok, tt.want, tt.ok)
		}
	}
}

// TestPlayerWithoutSpeaker verifies every call is safe before Initialize.
func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized player panicked: %v", r)
		}
	}()

	p.Play(CueKill)
	p.OnEvent(event.Event{Type: event.GameOver})
	p.OnEvent(event.Event{Type: event.WaveSpawned})
	p.Close()
}

func TestSweepGeneratorEnvelope(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 440, 880, 50*time.Millisecond)
	buf := make([][2]float64, g.length)

	n, ok := g.Stream(buf)

	if n != len(buf) || !ok {
		t.Fatalf("Stream() = %d, %v, want %d, true", n, ok, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at the start of the fade-in", buf[0][0])
	}
	peak := 0.0
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d channels differ: %v", i, s)
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 0.25 {
		t.Errorf("peak = %v, want within (0, 0.25]", peak)
	}
	if last := math.Abs(buf[len(buf)-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, want faded out", last)
	}
}

func TestStreamIsFinite(t *testing.T) {
	for _, c := range []Cue{CuePickup, CueKill, CueLevelUp, CueChoice, CueGameOver} {
		s := Stream(c)
		buf := make([][2]float64, 512)
		total := 0
		for i := 0; i < 1000; i++ {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 || total >= 512*1000 {
			t.Errorf("%s streamed %d samples, want a short finite cue", c, total)
		}
	}
}
