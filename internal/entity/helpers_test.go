package entity

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/arenasurvivors/internal/ability"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

type manualTime struct {
	t time.Time
}

func (m *manualTime) Now() time.Time          { return m.t }
func (m *manualTime) Advance(d time.Duration) { m.t = m.t.Add(d) }

// settableRandom returns the same roll until changed.
type settableRandom struct {
	roll float64
}

func (r *settableRandom) Float64() float64 { return r.roll }

type harness struct {
	world *world.World
	time  *manualTime
	rng   *settableRandom
	reg   *ability.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	reg, err := ability.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	src := &manualTime{t: time.Unix(1000, 0)}
	rng := &settableRandom{roll: 0.99}
	return &harness{
		world: world.New(world.NewClockFrom(src.Now), rng),
		time:  src,
		rng:   rng,
		reg:   reg,
	}
}

func (h *harness) spawn(kind Kind, health int, pos mgl32.Vec3) *Entity {
	return New(kind, Stats{Name: kind.String(), Health: health, Size: 0.5}, pos, h.world, h.reg)
}

type deathCounter struct {
	calls int
}

func (d *deathCounter) HandleDeath(*Entity) { d.calls++ }

type collisionRecorder struct {
	others []world.Actor
}

func (c *collisionRecorder) HandleCollision(_ *Entity, other world.Actor) {
	c.others = append(c.others, other)
}

func countShape(w *world.World, s world.Shape) int {
	n := 0
	for _, e := range w.Effects() {
		if e.Shape == s {
			n++
		}
	}
	return n
}
