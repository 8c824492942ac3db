// Package ability implements leveled, composable behaviors attached to
// entities. A Definition is an immutable catalog entry bound to an effect
// factory; an Instance binds one Definition to one owner at a level and
// drives the activate/update/deactivate lifecycle of the Effect it creates.
package ability

import (
	"github.com/samdwyer/arenasurvivors/internal/gamedata"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

// MaxLevel caps ability levels.
const MaxLevel = 10

// Owner is the entity an ability is attached to.
type Owner interface {
	world.Actor
	Evasion() float64
	SetEvasion(pct float64)
}

// Effect is the per-activation state of an ability. Update runs once per
// frame; Deactivate releases every world object the effect created.
type Effect interface {
	Update()
	Deactivate()
}

// Factory performs one-time setup for an activation and returns its Effect.
type Factory func(def *Definition, level int, owner Owner, w *world.World) Effect

// Definition is an immutable ability catalog entry.
type Definition struct {
	data    gamedata.AbilityDef
	tags    world.Tags
	factory Factory
}

// Title returns the unique catalog key.
func (d *Definition) Title() string { return d.data.Title }

// Description returns the card text.
func (d *Definition) Description() string { return d.data.Description }

// Tooltip returns the detailed hover text.
func (d *Definition) Tooltip() string { return d.data.Tooltip }

// Flavor returns the flavor line.
func (d *Definition) Flavor() string { return d.data.Flavor }

// Thumbnail returns the icon reference.
func (d *Definition) Thumbnail() string { return d.data.Thumbnail }

// Tags returns the ability's tag set.
func (d *Definition) Tags() world.Tags { return d.tags }

// Kind returns the effect kind.
func (d *Definition) Kind() gamedata.AbilityKind { return d.data.Kind }

// Tuning returns the numeric parameters.
func (d *Definition) Tuning() gamedata.Tuning { return d.data.Tuning }

// ClampLevel bounds a level to [1, MaxLevel].
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
