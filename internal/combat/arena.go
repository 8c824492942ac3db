// Package combat runs the real-time arena: movement, ability updates,
// collisions, rewards, spawning and level-up resolution.
package combat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/arenasurvivors/internal/ability"
	"github.com/samdwyer/arenasurvivors/internal/entity"
	"github.com/samdwyer/arenasurvivors/internal/event"
	"github.com/samdwyer/arenasurvivors/internal/gamedata"
	"github.com/samdwyer/arenasurvivors/internal/levelup"
	"github.com/samdwyer/arenasurvivors/internal/logger"
	"github.com/samdwyer/arenasurvivors/internal/telemetry"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

var (
	// ErrNotReady means the arena has no world or player; the frame is skipped.
	ErrNotReady = errors.New("arena not ready")
	// ErrNoOffer means Choose was called with no level-up pending.
	ErrNoOffer = errors.New("no level-up offer pending")
	// ErrInvalidChoice means the index does not name a candidate.
	ErrInvalidChoice = errors.New("invalid level-up choice")
)

const (
	// ExperiencePerPickup is granted for each consumed pickup.
	ExperiencePerPickup = 100
	// ExperiencePerLevel triggers a level-up when reached.
	ExperiencePerLevel = 100
	// PickupRadius is the consumption distance around the player.
	PickupRadius float32 = 1
	// ChaseFactor scales enemy speed while chasing.
	ChaseFactor float32 = 0.5
	// TurnEasing is the per-frame rotation interpolation factor.
	TurnEasing float32 = 0.1
)

// Input is the directional input for one frame: X right, Y forward.
type Input struct {
	X, Y float32
}

// Settings tunes a run.
type Settings struct {
	Countdown     time.Duration
	SpawnInterval time.Duration
	SpawnBatch    int
	SpawnRadius   float32
	CameraYaw     float32 // radians
}

// DefaultSettings returns the standard run tuning.
func DefaultSettings() Settings {
	return Settings{
		Countdown:     5 * time.Minute,
		SpawnInterval: 3 * time.Second,
		SpawnBatch:    3,
		SpawnRadius:   12,
	}
}

// Catalog bundles the data an arena spawns from.
type Catalog struct {
	Abilities *ability.Registry
	Enemies   *gamedata.EnemyRegistry
	Player    *gamedata.PlayerDef
}

// Arena owns the world and drives one run.
type Arena struct {
	settings Settings
	catalog  Catalog

	world  *world.World
	rng    *rand.Rand
	player *entity.Entity
	roster *entity.Roster

	events *event.Dispatcher
	tracer trace.Tracer

	phase      Phase
	experience int
	level      int
	kills      int
	score      int
	waves      int
	countdown  time.Duration
	lastSpawn  time.Duration
	offer      *levelup.Offer
	result     string
}

// New creates an arena over clock and rng and spawns the player at the origin.
// The first wave spawns on the first Step.
func New(s Settings, clock *world.Clock, rng *rand.Rand, cat Catalog, events *event.Dispatcher) *Arena {
	w := world.New(clock, rng)
	a := &Arena{
		settings:  s,
		catalog:   cat,
		world:     w,
		rng:       rng,
		roster:    entity.NewRoster(),
		events:    events,
		tracer:    telemetry.Tracer("combat"),
		phase:     PhaseRunning,
		level:     1,
		countdown: s.Countdown,
		lastSpawn: clock.Now() - s.SpawnInterval,
	}
	a.player = entity.NewPlayer(cat.Player, mgl32.Vec3{}, w, cat.Abilities)
	a.player.SetDeathHandler(a)
	return a
}

// Step runs one frame. It does nothing outside PhaseRunning.
func (a *Arena) Step(ctx context.Context, in Input, dt time.Duration) error {
	if a.world == nil || a.player == nil {
		return fmt.Errorf("step: %w", ErrNotReady)
	}
	if a.phase != PhaseRunning {
		return nil
	}

	if a.world.Now()-a.lastSpawn >= a.settings.SpawnInterval {
		a.SpawnWave(ctx)
	}
	a.movePlayer(in)
	a.player.Advance()
	if a.player.Alive() {
		a.collectPickups(ctx)
	}
	a.chase()

	a.countdown -= dt
	switch {
	case !a.player.Alive():
		a.end(ctx, ResultDefeat)
	case a.countdown <= 0:
		a.countdown = 0
		a.end(ctx, ResultSurvived)
	}
	return nil
}

// movePlayer maps input into camera space. Forward at yaw 0 is +Z.
func (a *Arena) movePlayer(in Input) {
	sin, cos := math.Sincos(float64(a.settings.CameraYaw))
	forward := mgl32.Vec3{float32(sin), 0, float32(cos)}
	right := mgl32.Vec3{float32(cos), 0, float32(-sin)}

	move := right.Mul(in.X).Add(forward.Mul(in.Y))
	if move.Len() == 0 {
		return
	}
	move = move.Normalize().Mul(a.player.Speed())
	a.player.Move(move)

	heading := float32(math.Atan2(float64(move.X()), float64(move.Z())))
	a.player.TurnToward(heading, TurnEasing)
}

// collectPickups consumes every pickup in range and triggers at most one
// level-up after the scan.
func (a *Arena) collectPickups(ctx context.Context) {
	pos := a.player.Position()
	for _, p := range a.world.Pickups() {
		if p.Position.Sub(pos).Len() > PickupRadius {
			continue
		}
		a.world.RemovePickup(p)
		a.experience += ExperiencePerPickup
		a.events.Dispatch(event.Event{
			Type: event.PickupConsumed,
			Data: event.Pickup{Experience: a.experience},
		})
	}
	if a.experience >= ExperiencePerLevel {
		a.experience = 0
		a.levelUp(ctx)
	}
}

func (a *Arena) chase() {
	target := a.player.Position()
	for _, e := range a.roster.Members() {
		if !e.Alive() {
			continue
		}
		dir := target.Sub(e.Position())
		if dir.Len() > 0 {
			e.Move(dir.Normalize().Mul(e.Speed() * ChaseFactor))
		}
		e.Advance()
	}
}

// SpawnWave places a batch of enemies on the spawn ring around the player
// and returns how many were spawned.
func (a *Arena) SpawnWave(ctx context.Context) int {
	a.lastSpawn = a.world.Now()
	if a.catalog.Enemies == nil || a.catalog.Enemies.Count() == 0 {
		return 0
	}

	_, span := a.tracer.Start(ctx, "combat.wave")
	defer span.End()

	center := a.player.Position()
	n := 0
	for i := 0; i < a.settings.SpawnBatch; i++ {
		def := a.catalog.Enemies.SpawnRandom(a.rng)
		if def == nil {
			continue
		}
		angle := a.rng.Float64() * 2 * math.Pi
		offset := mgl32.Vec3{
			float32(math.Cos(angle)) * a.settings.SpawnRadius,
			0,
			float32(math.Sin(angle)) * a.settings.SpawnRadius,
		}
		a.AddEnemy(def, center.Add(offset))
		n++
	}
	a.waves++

	span.SetAttributes(
		attribute.Int("wave", a.waves),
		attribute.Int("spawned", n),
		attribute.Int("roster", a.roster.Len()),
	)
	a.events.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.Wave{Count: n, RosterSize: a.roster.Len()},
	})
	return n
}

// AddEnemy spawns one enemy at pos and tracks it in the roster.
func (a *Arena) AddEnemy(def *gamedata.EnemyDef, pos mgl32.Vec3) *entity.Entity {
	e := entity.NewEnemyFromDef(def, pos, a.world, a.catalog.Abilities)
	e.SetDeathHandler(a)
	a.roster.Add(e)
	return e
}

// HandleDeath credits enemy kills. Player death is resolved at the end of the frame.
func (a *Arena) HandleDeath(e *entity.Entity) {
	if e.Kind() != entity.KindEnemy {
		logger.Log.WithField("entity", e.ID().String()).Info("player died")
		return
	}
	a.kills++
	a.score += e.XPReward()
	a.events.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.Kill{Name: e.Name(), XPReward: e.XPReward(), Total: a.kills},
	})
}

func (a *Arena) levelUp(ctx context.Context) {
	_, span := a.tracer.Start(ctx, "combat.level_up")
	defer span.End()

	offer := levelup.NewOffer(a.level+1, a.player.Abilities(), a.catalog.Abilities, a.rng)
	if offer == nil {
		span.SetAttributes(attribute.Bool("empty_pool", true))
		logger.Log.Warn("level-up with empty ability pool")
		return
	}
	a.offer = offer
	a.phase = PhaseAwaitingChoice
	a.world.Clock().Pause()

	span.SetAttributes(
		attribute.Int("player.level", offer.PlayerLevel),
		attribute.Int("candidates", len(offer.Candidates)),
	)
	a.events.Dispatch(event.Event{
		Type: event.LevelUp,
		Data: event.Offer{PlayerLevel: offer.PlayerLevel, Candidates: len(offer.Candidates)},
	})
}

// Choose resolves the pending offer with candidate i and resumes the run.
func (a *Arena) Choose(ctx context.Context, i int) error {
	if a.phase != PhaseAwaitingChoice || a.offer == nil {
		return ErrNoOffer
	}
	if !a.offer.Valid(i) {
		return fmt.Errorf("choose %d of %d: %w", i, len(a.offer.Candidates), ErrInvalidChoice)
	}

	_, span := a.tracer.Start(ctx, "combat.choose")
	defer span.End()

	c := a.offer.Candidates[i]
	levelup.Apply(c, a.player)
	a.level = a.offer.PlayerLevel
	a.offer = nil
	a.phase = PhaseRunning
	a.world.Clock().Resume()

	inst := a.player.AbilityByTitle(c.Title())
	level := 0
	if inst != nil {
		level = inst.Level()
	}
	span.SetAttributes(
		attribute.String("ability", c.Title()),
		attribute.Int("ability.level", level),
		attribute.Bool("upgrade", c.Upgrade()),
	)
	logger.Log.WithFields(logrus.Fields{
		"ability": c.Title(),
		"level":   level,
		"upgrade": c.Upgrade(),
	}).Info("ability chosen")
	a.events.Dispatch(event.Event{
		Type: event.AbilityChosen,
		Data: event.Choice{Title: c.Title(), Level: level, Upgraded: c.Upgrade()},
	})
	return nil
}

// TogglePause switches between running and paused. Other phases are unaffected.
func (a *Arena) TogglePause() Phase {
	switch a.phase {
	case PhaseRunning:
		a.phase = PhasePaused
		a.world.Clock().Pause()
	case PhasePaused:
		a.phase = PhaseRunning
		a.world.Clock().Resume()
	}
	return a.phase
}

func (a *Arena) end(ctx context.Context, result string) {
	_, span := a.tracer.Start(ctx, "combat.game_over")
	defer span.End()

	a.phase = PhaseGameOver
	a.result = result
	a.offer = nil
	a.world.Clock().Pause()

	survived := (a.settings.Countdown - a.countdown).Seconds()
	span.SetAttributes(
		attribute.String("result", result),
		attribute.Int("kills", a.kills),
		attribute.Int("player.level", a.level),
		attribute.Float64("survived_seconds", survived),
	)
	logger.Log.WithFields(logrus.Fields{
		"result": result,
		"kills":  a.kills,
		"level":  a.level,
	}).Info("game over")
	a.events.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.Outcome{Result: result, Kills: a.kills, PlayerLevel: a.level, Survived: survived},
	})
}

// Phase returns the current phase.
func (a *Arena) Phase() Phase { return a.phase }

// World returns the arena world.
func (a *Arena) World() *world.World { return a.world }

// Player returns the player entity.
func (a *Arena) Player() *entity.Entity { return a.player }

// Roster returns the live enemies.
func (a *Arena) Roster() *entity.Roster { return a.roster }

// Experience returns experience toward the next level.
func (a *Arena) Experience() int { return a.experience }

// Level returns the number of resolved level-ups plus one.
func (a *Arena) Level() int { return a.level }

// Kills returns the enemy kill count.
func (a *Arena) Kills() int { return a.kills }

// Score returns the summed XP reward of killed enemies.
func (a *Arena) Score() int { return a.score }

// Waves returns the number of waves spawned.
func (a *Arena) Waves() int { return a.waves }

// Countdown returns the remaining run time.
func (a *Arena) Countdown() time.Duration { return a.countdown }

// Offer returns the pending level-up offer, or nil.
func (a *Arena) Offer() *levelup.Offer { return a.offer }

// Result returns the outcome once the run is over.
func (a *Arena) Result() string { return a.result }

// Settings returns the run tuning.
func (a *Arena) Settings() Settings { return a.settings }
