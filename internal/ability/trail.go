package ability

import (
	"time"

	"github.com/samdwyer/arenasurvivors/internal/world"
)

const defaultTrailCadence = 500 * time.Millisecond

// trailEffect drops cube damage zones behind its owner. Zones never expire
// while the effect is active.
type trailEffect struct {
	owner Owner
	world *world.World

	cadence time.Duration
	half    float32
	damage  int

	lastSpawn time.Duration
	zones     []*world.Effect
}

func newTrail(def *Definition, level int, owner Owner, w *world.World) Effect {
	t := def.Tuning()
	cadence := time.Duration(t.CadenceMs) * time.Millisecond
	if cadence <= 0 {
		cadence = defaultTrailCadence
	}
	damage := t.Damage
	if damage <= 0 {
		damage = 1
	}
	return &trailEffect{
		owner:     owner,
		world:     w,
		cadence:   cadence,
		half:      t.ZoneEdge * float32(level) / 2,
		damage:    damage,
		lastSpawn: w.Now(),
	}
}

func (t *trailEffect) Update() {
	now := t.world.Now()
	if now-t.lastSpawn >= t.cadence {
		t.spawn()
		t.lastSpawn = now
	}
	t.strike()
}

func (t *trailEffect) spawn() {
	zone := &world.Effect{
		Shape:  world.ShapeCube,
		Center: t.owner.Position(),
		Half:   t.half,
		Tags:   t.owner.Tags(),
	}
	t.world.AddEffect(zone)
	t.zones = append(t.zones, zone)
}

// strike hits every foe once per overlapping zone, so stacked zones land
// stacked hits in the same tick.
func (t *trailEffect) strike() {
	if len(t.zones) == 0 {
		return
	}
	self := world.Actor(t.owner)
	tags := t.owner.Tags()
	for _, a := range t.world.Actors() {
		if a == self || tags.SharesAny(a.Tags()) {
			continue
		}
		box := a.Bounds()
		for _, z := range t.zones {
			if !a.Alive() {
				break
			}
			if z.Bounds().Intersects(box) {
				a.TakeDamage(t.damage)
			}
		}
	}
}

func (t *trailEffect) Deactivate() {
	for _, z := range t.zones {
		t.world.RemoveEffect(z)
	}
	t.zones = nil
}
