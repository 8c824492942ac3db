package ability

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/arenasurvivors/internal/world"
)

// manualTime is a controllable time source for the game clock.
type manualTime struct {
	t time.Time
}

func (m *manualTime) Now() time.Time          { return m.t }
func (m *manualTime) Advance(d time.Duration) { m.t = m.t.Add(d) }

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

// fakeActor is a minimal Owner used in place of a real entity.
type fakeActor struct {
	pos     mgl32.Vec3
	tags    world.Tags
	health  int
	evasion float64
	hits    int
}

func newFakeActor(tag string, pos mgl32.Vec3, health int) *fakeActor {
	return &fakeActor{pos: pos, tags: world.Tags{tag}, health: health}
}

func (f *fakeActor) Position() mgl32.Vec3    { return f.pos }
func (f *fakeActor) Bounds() world.Box       { return world.BoxAround(f.pos, 0.5) }
func (f *fakeActor) Tags() world.Tags        { return f.tags }
func (f *fakeActor) Alive() bool             { return f.health > 0 }
func (f *fakeActor) Evasion() float64        { return f.evasion }
func (f *fakeActor) SetEvasion(pct float64)  { f.evasion = pct }
func (f *fakeActor) TakeDamage(amount int) bool {
	if !f.Alive() {
		return false
	}
	f.hits++
	f.health -= amount
	return true
}

func newTestWorld() (*world.World, *manualTime) {
	src := &manualTime{t: time.Unix(1000, 0)}
	return world.New(world.NewClockFrom(src.Now), fixedRandom(0.5)), src
}

func mustLookup(t *testing.T, title string) *Definition {
	t.Helper()
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	def, ok := reg.Lookup(title)
	if !ok {
		t.Fatalf("Lookup(%q) not found", title)
	}
	return def
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
