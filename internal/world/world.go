// Package world holds the shared arena state: live actors, transient effect
// objects spawned by abilities, reward pickups, game time and randomness.
//
// The World owns everything it contains. Entities and abilities keep only
// non-owning references into it and must go through Add/Remove to change
// membership.
package world

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Actor is a positioned, damageable participant (an Entity).
type Actor interface {
	Position() mgl32.Vec3
	Bounds() Box
	Tags() Tags
	Alive() bool
	TakeDamage(amount int) bool
}

// Random is a uniform source over [0,1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Shape selects how an effect object is drawn and bounded.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeOrb
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapeOrb:
		return "orb"
	default:
		return "unknown"
	}
}

// Effect is a transient visual+collision object spawned by an ability:
// a trail zone, a veil shield, an orb projectile.
type Effect struct {
	Shape  Shape
	Center mgl32.Vec3
	Half   float32 // half edge for cubes, radius otherwise
	Tags   Tags    // copied from the owning actor
}

// Bounds returns the effect's bounding box.
func (e *Effect) Bounds() Box {
	return BoxAround(e.Center, e.Half)
}

// PickupExperience is the type tag of experience rewards.
const PickupExperience = "experience"

// Pickup is a reward object dropped where an entity died.
type Pickup struct {
	Position mgl32.Vec3
	Kind     string
}

// World is the arena context.
type World struct {
	actors  []Actor
	effects []*Effect
	pickups []*Pickup

	clock *Clock
	rng   Random
}

// New creates an empty world over the given clock and random source.
func New(clock *Clock, rng Random) *World {
	return &World{clock: clock, rng: rng}
}

// Now returns current game time.
func (w *World) Now() time.Duration {
	return w.clock.Now()
}

// Clock returns the world's game clock.
func (w *World) Clock() *Clock {
	return w.clock
}

// Rand draws a uniform value in [0,1).
func (w *World) Rand() float64 {
	return w.rng.Float64()
}

// AddActor inserts a into the world. Adding a present actor is a no-op.
func (w *World) AddActor(a Actor) {
	if w.HasActor(a) {
		return
	}
	w.actors = append(w.actors, a)
}

// RemoveActor detaches a. It reports whether a was present.
func (w *World) RemoveActor(a Actor) bool {
	for i, x := range w.actors {
		if x == a {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			return true
		}
	}
	return false
}

// HasActor reports whether a is a live member of the world.
func (w *World) HasActor(a Actor) bool {
	for _, x := range w.actors {
		if x == a {
			return true
		}
	}
	return false
}

// Actors returns a snapshot of the current actors. Callers may mutate the
// world (kill actors) while ranging over it.
func (w *World) Actors() []Actor {
	out := make([]Actor, len(w.actors))
	copy(out, w.actors)
	return out
}

// AddEffect inserts an effect object.
func (w *World) AddEffect(e *Effect) {
	w.effects = append(w.effects, e)
}

// RemoveEffect deletes an effect object. It reports whether e was present.
func (w *World) RemoveEffect(e *Effect) bool {
	for i, x := range w.effects {
		if x == e {
			w.effects = append(w.effects[:i], w.effects[i+1:]...)
			return true
		}
	}
	return false
}

// Effects returns a snapshot of live effect objects.
func (w *World) Effects() []*Effect {
	out := make([]*Effect, len(w.effects))
	copy(out, w.effects)
	return out
}

// SpawnPickup drops a pickup of the given kind at pos.
func (w *World) SpawnPickup(pos mgl32.Vec3, kind string) *Pickup {
	p := &Pickup{Position: pos, Kind: kind}
	w.pickups = append(w.pickups, p)
	return p
}

// RemovePickup consumes p. It reports whether p was present.
func (w *World) RemovePickup(p *Pickup) bool {
	for i, x := range w.pickups {
		if x == p {
			w.pickups = append(w.pickups[:i], w.pickups[i+1:]...)
			return true
		}
	}
	return false
}

// Pickups returns a snapshot of uncollected pickups.
func (w *World) Pickups() []*Pickup {
	out := make([]*Pickup, len(w.pickups))
	copy(out, w.pickups)
	return out
}
