package ability

import "github.com/samdwyer/arenasurvivors/internal/world"

// veilEffect raises the owner's evasion and keeps a shield sphere centered
// on the owner. Deactivation removes the shield but leaves evasion as set.
type veilEffect struct {
	owner  Owner
	world  *world.World
	shield *world.Effect
}

func newVeil(def *Definition, level int, owner Owner, w *world.World) Effect {
	t := def.Tuning()
	owner.SetEvasion(t.BaseEvasion + t.EvasionPerLevel*float64(level))

	shield := &world.Effect{
		Shape:  world.ShapeSphere,
		Center: owner.Position(),
		Half:   t.ShieldRadius,
		Tags:   owner.Tags(),
	}
	w.AddEffect(shield)

	return &veilEffect{owner: owner, world: w, shield: shield}
}

func (v *veilEffect) Update() {
	v.shield.Center = v.owner.Position()
}

func (v *veilEffect) Deactivate() {
	v.world.RemoveEffect(v.shield)
}
