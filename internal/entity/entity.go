// Package entity provides the actors of the arena: the player and enemies.
package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/arenasurvivors/internal/ability"
	"github.com/samdwyer/arenasurvivors/internal/gamedata"
	"github.com/samdwyer/arenasurvivors/internal/logger"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

// Kind classifies an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Tags returns the classification tags for the kind.
func (k Kind) Tags() world.Tags {
	switch k {
	case KindPlayer:
		return world.Tags{world.TagPlayer}
	case KindEnemy:
		return world.Tags{world.TagEnemy}
	default:
		return nil
	}
}

// CollisionHandler reacts to bounding-box overlap with another actor.
type CollisionHandler interface {
	HandleCollision(self *Entity, other world.Actor)
}

// DeathHandler is notified once when an entity dies.
type DeathHandler interface {
	HandleDeath(e *Entity)
}

type noCollision struct{}

func (noCollision) HandleCollision(*Entity, world.Actor) {}

// Stats is the spawn profile of an entity.
type Stats struct {
	Name     string
	Glyph    rune
	Color    string // hex, empty for the default
	Health   int
	Speed    float32
	Evasion  float64
	XPReward int
	Size     float32 // bounding half extent
}

// Entity is a positioned, damageable actor with an ordered ability list.
type Entity struct {
	id    uuid.UUID
	kind  Kind
	tags  world.Tags
	stats Stats

	position mgl32.Vec3
	rotation float32

	health    int
	maxHealth int
	evasion   float64

	abilities []*ability.Instance

	world     *world.World
	registry  *ability.Registry
	roster    *Roster
	collision CollisionHandler
	death     DeathHandler
	dead      bool
}

// New creates an entity and inserts it into the world. Abilities are
// installed separately with InitAbilities.
func New(kind Kind, stats Stats, pos mgl32.Vec3, w *world.World, reg *ability.Registry) *Entity {
	if stats.Size <= 0 {
		stats.Size = 0.5
	}
	e := &Entity{
		id:        uuid.New(),
		kind:      kind,
		tags:      kind.Tags(),
		stats:     stats,
		position:  pos,
		health:    stats.Health,
		maxHealth: stats.Health,
		evasion:   stats.Evasion,
		world:     w,
		registry:  reg,
		collision: noCollision{},
	}
	w.AddActor(e)
	return e
}

// NewPlayer creates the player from its profile with its starting abilities.
func NewPlayer(def *gamedata.PlayerDef, pos mgl32.Vec3, w *world.World, reg *ability.Registry) *Entity {
	e := New(KindPlayer, Stats{
		Name:    def.Name,
		Glyph:   def.GlyphRune(),
		Health:  def.Health,
		Speed:   def.Speed,
		Evasion: def.Evasion,
		Size:    def.Size,
	}, pos, w, reg)
	e.InitAbilities(def.Abilities)
	return e
}

// NewEnemyFromDef creates an enemy from a catalog definition with its spawn abilities.
func NewEnemyFromDef(def *gamedata.EnemyDef, pos mgl32.Vec3, w *world.World, reg *ability.Registry) *Entity {
	e := New(KindEnemy, Stats{
		Name:     def.Name,
		Glyph:    def.GlyphRune(),
		Color:    def.Color,
		Health:   def.Health,
		Speed:    def.Speed,
		Evasion:  def.Evasion,
		XPReward: def.XPReward,
		Size:     def.Size,
	}, pos, w, reg)
	e.InitAbilities(def.Abilities)
	return e
}

// ID returns the correlation id used in logs and traces.
func (e *Entity) ID() uuid.UUID { return e.id }

// Kind returns the entity kind.
func (e *Entity) Kind() Kind { return e.kind }

// Name returns the display name.
func (e *Entity) Name() string { return e.stats.Name }

// Glyph returns the display rune.
func (e *Entity) Glyph() rune { return e.stats.Glyph }

// Color returns the hex display color.
func (e *Entity) Color() string { return e.stats.Color }

// Tags returns the classification tags.
func (e *Entity) Tags() world.Tags { return e.tags }

// Position returns the current position.
func (e *Entity) Position() mgl32.Vec3 { return e.position }

// Rotation returns the facing yaw in radians.
func (e *Entity) Rotation() float32 { return e.rotation }

// Health returns current health.
func (e *Entity) Health() int { return e.health }

// MaxHealth returns starting health.
func (e *Entity) MaxHealth() int { return e.maxHealth }

// Speed returns movement speed in units per frame.
func (e *Entity) Speed() float32 { return e.stats.Speed }

// Evasion returns the evasion percentage.
func (e *Entity) Evasion() float64 { return e.evasion }

// SetEvasion sets the evasion percentage. It is not clamped.
func (e *Entity) SetEvasion(pct float64) { e.evasion = pct }

// XPReward returns the score credited when the entity dies.
func (e *Entity) XPReward() int { return e.stats.XPReward }

// Alive reports whether the entity has not died.
func (e *Entity) Alive() bool { return !e.dead }

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() world.Box {
	return world.BoxAround(e.position, e.stats.Size)
}

// SetCollisionHandler replaces the collision callback. nil restores the no-op default.
func (e *Entity) SetCollisionHandler(h CollisionHandler) {
	if h == nil {
		h = noCollision{}
	}
	e.collision = h
}

// SetDeathHandler sets the death callback.
func (e *Entity) SetDeathHandler(h DeathHandler) {
	e.death = h
}

// Move translates the entity by v. The arena has no terrain.
func (e *Entity) Move(v mgl32.Vec3) {
	e.position = e.position.Add(v)
}

// TurnToward eases the facing toward heading by factor along the shortest arc.
func (e *Entity) TurnToward(heading, factor float32) {
	delta := math.Remainder(float64(heading-e.rotation), 2*math.Pi)
	e.rotation += float32(delta) * factor
}

// TakeDamage draws one evasion roll; a roll below evasion/100 negates the
// hit entirely. Otherwise health drops by amount and reaching zero kills the
// entity. Damage to a dead entity is ignored. Reports whether the hit landed.
func (e *Entity) TakeDamage(amount int) bool {
	if e.dead {
		return false
	}
	if e.world.Rand() < e.evasion/100 {
		return false
	}
	e.health -= amount
	if e.health <= 0 {
		e.Die()
	}
	return true
}

// Die drops an experience pickup, tears down all abilities, detaches the
// entity from the world and its roster and notifies the death handler.
// Only the first call has any effect.
func (e *Entity) Die() {
	if e.dead {
		return
	}
	e.dead = true

	e.world.SpawnPickup(e.position, world.PickupExperience)
	for _, inst := range e.abilities {
		inst.Deactivate()
	}
	e.abilities = nil
	e.world.RemoveActor(e)
	if e.roster != nil {
		e.roster.Remove(e)
	}

	logger.Log.WithFields(logrus.Fields{
		"entity": e.id.String(),
		"kind":   e.kind.String(),
		"name":   e.stats.Name,
	}).Debug("entity died")

	if e.death != nil {
		e.death.HandleDeath(e)
	}
}

// DetectCollisions tests the entity against every other live actor and
// reports overlaps to the collision handler.
func (e *Entity) DetectCollisions() {
	box := e.Bounds()
	self := world.Actor(e)
	for _, a := range e.world.Actors() {
		if e.dead {
			return
		}
		if a == self || !a.Alive() {
			continue
		}
		if box.Intersects(a.Bounds()) {
			e.collision.HandleCollision(e, a)
		}
	}
}

// Advance runs one frame: every ability update in order, then collision detection.
func (e *Entity) Advance() {
	for _, inst := range e.abilities {
		if e.dead {
			return
		}
		inst.Update()
	}
	if e.dead {
		return
	}
	e.DetectCollisions()
}

// InitAbilities installs each grant. A title the entity already holds is
// re-leveled in place by the grant's level; a new title is looked up,
// instantiated at the grant's level, appended and activated. Unknown titles
// are skipped.
func (e *Entity) InitAbilities(grants []gamedata.AbilityGrant) {
	if e.dead {
		return
	}
	for _, g := range grants {
		if inst := e.AbilityByTitle(g.Title); inst != nil {
			inst.LevelUp(g.Level)
			continue
		}
		def, ok := e.registry.Lookup(g.Title)
		if !ok {
			logger.Log.WithField("ability", g.Title).Debug("unknown ability skipped")
			continue
		}
		inst := ability.NewInstance(def, e, e.world, g.Level)
		e.abilities = append(e.abilities, inst)
		inst.Activate()
	}
}

// Abilities returns the ability instances in insertion order.
func (e *Entity) Abilities() []*ability.Instance {
	out := make([]*ability.Instance, len(e.abilities))
	copy(out, e.abilities)
	return out
}

// Ability returns the instance at index i, or nil when out of range.
func (e *Entity) Ability(i int) *ability.Instance {
	if i < 0 || i >= len(e.abilities) {
		return nil
	}
	return e.abilities[i]
}

// AbilityByTitle returns the instance with the given title, or nil.
func (e *Entity) AbilityByTitle(title string) *ability.Instance {
	for _, inst := range e.abilities {
		if inst.Title() == title {
			return inst
		}
	}
	return nil
}

var _ ability.Owner = (*Entity)(nil)
