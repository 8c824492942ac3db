package ability

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/arenasurvivors/internal/logger"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

// Instance binds one Definition to one owner at a level.
type Instance struct {
	def   *Definition
	owner Owner
	world *world.World

	level  int
	active bool
	effect Effect
}

// NewInstance creates an inactive instance. The level is clamped to [1, MaxLevel].
func NewInstance(def *Definition, owner Owner, w *world.World, level int) *Instance {
	return &Instance{
		def:   def,
		owner: owner,
		world: w,
		level: ClampLevel(level),
	}
}

// Activate runs the effect factory at the current level. An active instance
// is deactivated first, so calling Activate after a level change rebuilds
// every level-dependent object.
func (i *Instance) Activate() {
	if i.active {
		i.Deactivate()
	}
	i.effect = i.def.factory(i.def, i.level, i.owner, i.world)
	i.active = true

	logger.Log.WithFields(logrus.Fields{
		"ability": i.def.Title(),
		"level":   i.level,
	}).Debug("ability activated")
}

// Update advances the effect by one frame. No-op when inactive.
func (i *Instance) Update() {
	if !i.active || i.effect == nil {
		return
	}
	i.effect.Update()
}

// Deactivate releases the effect and its world objects. Safe to call repeatedly.
func (i *Instance) Deactivate() {
	if !i.active {
		return
	}
	if i.effect != nil {
		i.effect.Deactivate()
	}
	i.effect = nil
	i.active = false
}

// LevelUp re-levels the instance in place: deactivate, raise the level by
// delta (capped at MaxLevel), activate. Returns the new level.
func (i *Instance) LevelUp(delta int) int {
	i.Deactivate()
	i.level = ClampLevel(i.level + delta)
	i.Activate()
	return i.level
}

// Definition returns the bound catalog entry.
func (i *Instance) Definition() *Definition { return i.def }

// Title returns the definition title.
func (i *Instance) Title() string { return i.def.Title() }

// Description returns the definition description.
func (i *Instance) Description() string { return i.def.Description() }

// Tooltip returns the definition tooltip.
func (i *Instance) Tooltip() string { return i.def.Tooltip() }

// Flavor returns the definition flavor line.
func (i *Instance) Flavor() string { return i.def.Flavor() }

// Thumbnail returns the definition thumbnail.
func (i *Instance) Thumbnail() string { return i.def.Thumbnail() }

// Tags returns the definition tags.
func (i *Instance) Tags() world.Tags { return i.def.Tags() }

// Level returns the current level.
func (i *Instance) Level() int { return i.level }

// Active reports whether the effect is running.
func (i *Instance) Active() bool { return i.active }
