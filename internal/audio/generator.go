package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// attack is the fade-in and fade-out length that keeps cues click-free.
const attack = 5 * time.Millisecond

// SweepGenerator is a sine tone gliding linearly from one frequency to
// another over its length, with short linear fades at both ends.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	fade     int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep of duration d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	length := sr.N(d)
	if length < 1 {
		length = 1
	}
	fade := sr.N(attack)
	if fade > length/2 {
		fade = length / 2
	}
	return &SweepGenerator{sr: sr, from: from, to: to, length: length, fade: fade}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.25 * g.envelope() * math.Sin(g.phase)
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) envelope() float64 {
	if g.fade == 0 {
		return 1
	}
	if g.pos < g.fade {
		return float64(g.pos) / float64(g.fade)
	}
	if tail := g.length - g.pos; tail < g.fade {
		return math.Max(float64(tail), 0) / float64(g.fade)
	}
	return 1
}

func (g *SweepGenerator) Err() error {
	return nil
}
