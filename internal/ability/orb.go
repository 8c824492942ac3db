package ability

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/arenasurvivors/internal/world"
)

// orbEffect is a single projectile that orbits its owner until a foe is
// available, then homes in on the nearest one. A hit deals damage, drops the
// lock and puts the orb back on its orbit.
type orbEffect struct {
	owner Owner
	world *world.World

	projectile *world.Effect
	target     world.Actor

	radius float32
	speed  float64
	step   float32
	damage int
}

func newOrb(def *Definition, level int, owner Owner, w *world.World) Effect {
	t := def.Tuning()
	damage := t.Damage
	if damage <= 0 {
		damage = 1
	}
	o := &orbEffect{
		owner:  owner,
		world:  w,
		radius: t.OrbitRadius,
		speed:  t.OrbitSpeed,
		step:   t.Step * (1 + t.StepPerLevel*float32(level-1)),
		damage: damage,
		projectile: &world.Effect{
			Shape: world.ShapeOrb,
			Half:  t.ProjectileSize,
			Tags:  owner.Tags(),
		},
	}
	o.orbit()
	w.AddEffect(o.projectile)
	return o
}

func (o *orbEffect) Update() {
	if o.target != nil && (!o.target.Alive() || !o.world.HasActor(o.target)) {
		o.target = nil
	}
	if o.target == nil {
		o.target = NearestFoe(o.world, o.owner)
	}
	if o.target == nil {
		o.orbit()
		return
	}
	o.seek()
}

func (o *orbEffect) orbit() {
	angle := o.world.Now().Seconds() * o.speed
	offset := mgl32.Vec3{
		o.radius * float32(math.Cos(angle)),
		0,
		o.radius * float32(math.Sin(angle)),
	}
	o.projectile.Center = o.owner.Position().Add(offset)
}

func (o *orbEffect) seek() {
	goal := o.target.Position()
	to := goal.Sub(o.projectile.Center)
	if dist := to.Len(); dist <= o.step {
		o.projectile.Center = goal
	} else {
		o.projectile.Center = o.projectile.Center.Add(to.Mul(o.step / dist))
	}

	if o.projectile.Bounds().Intersects(o.target.Bounds()) {
		o.target.TakeDamage(o.damage)
		o.target = nil
		o.orbit()
	}
}

func (o *orbEffect) Deactivate() {
	o.world.RemoveEffect(o.projectile)
	o.target = nil
}

// NearestFoe returns the live actor closest to owner's position that shares
// no tag with owner, or nil when there is none.
func NearestFoe(w *world.World, owner world.Actor) world.Actor {
	origin := owner.Position()
	tags := owner.Tags()

	var best world.Actor
	bestDist := float32(math.MaxFloat32)
	for _, a := range w.Actors() {
		if a == owner || !a.Alive() || tags.SharesAny(a.Tags()) {
			continue
		}
		if d := a.Position().Sub(origin).Len(); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
