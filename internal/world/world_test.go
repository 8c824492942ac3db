package world

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type stubActor struct {
	pos  mgl32.Vec3
	tags Tags
}

func (s *stubActor) Position() mgl32.Vec3       { return s.pos }
func (s *stubActor) Bounds() Box                { return BoxAround(s.pos, 0.5) }
func (s *stubActor) Tags() Tags                 { return s.tags }
func (s *stubActor) Alive() bool                { return true }
func (s *stubActor) TakeDamage(amount int) bool { return true }

func newTestWorld() *World {
	return New(NewClock(), rand.New(rand.NewSource(1)))
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"overlap", BoxAround(mgl32.Vec3{0, 0, 0}, 1), BoxAround(mgl32.Vec3{1.5, 0, 0}, 1), true},
		{"touching", BoxAround(mgl32.Vec3{0, 0, 0}, 1), BoxAround(mgl32.Vec3{2, 0, 0}, 1), true},
		{"apart on x", BoxAround(mgl32.Vec3{0, 0, 0}, 1), BoxAround(mgl32.Vec3{2.1, 0, 0}, 1), false},
		{"apart on y", BoxAround(mgl32.Vec3{0, 0, 0}, 0.5), BoxAround(mgl32.Vec3{0, 3, 0}, 0.5), false},
		{"apart on z", BoxAround(mgl32.Vec3{0, 0, 0}, 0.5), BoxAround(mgl32.Vec3{0, 0, -3}, 0.5), false},
		{"contained", BoxAround(mgl32.Vec3{0, 0, 0}, 3), BoxAround(mgl32.Vec3{1, 1, 1}, 0.2), true},
	}

	for _, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(tt.a); got != tt.want {
			t.Errorf("%s: Intersects() not symmetric", tt.name)
		}
	}
}

func TestBoxCenter(t *testing.T) {
	c := mgl32.Vec3{1, 2, 3}
	if got := BoxAround(c, 0.75).Center(); !got.ApproxEqual(c) {
		t.Errorf("Center() = %v, want %v", got, c)
	}
}

func TestTagsSharesAny(t *testing.T) {
	tests := []struct {
		a, b Tags
		want bool
	}{
		{Tags{TagPlayer}, Tags{TagEnemy}, false},
		{Tags{TagEnemy}, Tags{TagEnemy}, true},
		{Tags{TagEnemy, "boss"}, Tags{"boss"}, true},
		{Tags{}, Tags{TagEnemy}, false},
		{nil, nil, false},
	}

	for _, tt := range tests {
		if got := tt.a.SharesAny(tt.b); got != tt.want {
			t.Errorf("%v.SharesAny(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestActorMembership(t *testing.T) {
	w := newTestWorld()
	a := &stubActor{tags: Tags{TagEnemy}}
	b := &stubActor{tags: Tags{TagPlayer}}

	w.AddActor(a)
	w.AddActor(a)
	w.AddActor(b)

	if got := len(w.Actors()); got != 2 {
		t.Fatalf("len(Actors()) = %d, want 2", got)
	}
	if !w.HasActor(a) {
		t.Error("HasActor(a) = false after AddActor")
	}

	if !w.RemoveActor(a) {
		t.Error("RemoveActor(a) = false, want true")
	}
	if w.RemoveActor(a) {
		t.Error("second RemoveActor(a) = true, want false")
	}
	if w.HasActor(a) {
		t.Error("HasActor(a) = true after removal")
	}
}

func TestActorsSnapshotIsolation(t *testing.T) {
	w := newTestWorld()
	a := &stubActor{}
	w.AddActor(a)

	snap := w.Actors()
	w.RemoveActor(a)

	if len(snap) != 1 {
		t.Errorf("snapshot changed after removal: len = %d", len(snap))
	}
}

func TestEffectsAndPickups(t *testing.T) {
	w := newTestWorld()
	e := &Effect{Shape: ShapeCube, Half: 0.25}
	w.AddEffect(e)

	if len(w.Effects()) != 1 {
		t.Fatalf("len(Effects()) = %d, want 1", len(w.Effects()))
	}
	if !w.RemoveEffect(e) || len(w.Effects()) != 0 {
		t.Error("RemoveEffect did not remove the effect")
	}

	p := w.SpawnPickup(mgl32.Vec3{1, 0, 1}, PickupExperience)
	if got := w.Pickups(); len(got) != 1 || got[0].Kind != PickupExperience {
		t.Fatalf("Pickups() = %v, want one experience pickup", got)
	}
	if !w.RemovePickup(p) || w.RemovePickup(p) {
		t.Error("RemovePickup should succeed exactly once")
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{ShapeCube, "cube"},
		{ShapeSphere, "sphere"},
		{ShapeOrb, "orb"},
		{Shape(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("Shape(%d).String() = %q, want %q", tt.shape, got, tt.want)
		}
	}
}

func TestWorldNowFollowsClock(t *testing.T) {
	src := &manualTime{t: time.Unix(100, 0)}
	w := New(NewClockFrom(src.Now), rand.New(rand.NewSource(1)))

	src.Advance(250 * time.Millisecond)
	if got := w.Now(); got != 250*time.Millisecond {
		t.Errorf("Now() = %v, want 250ms", got)
	}
}
