package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arenasurvivors/internal/ability"
	"github.com/samdwyer/arenasurvivors/internal/audio"
	"github.com/samdwyer/arenasurvivors/internal/combat"
	"github.com/samdwyer/arenasurvivors/internal/event"
	"github.com/samdwyer/arenasurvivors/internal/gamedata"
	"github.com/samdwyer/arenasurvivors/internal/input"
	"github.com/samdwyer/arenasurvivors/internal/logger"
	"github.com/samdwyer/arenasurvivors/internal/telemetry"
	"github.com/samdwyer/arenasurvivors/internal/ui"
	"github.com/samdwyer/arenasurvivors/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	arena    *combat.Arena
	keys     *input.State
	audio    *audio.Player
	menu     Menu
	running  bool
}

// New creates a new game instance drawing to screen.
func New(cfg Config, screen *ui.Screen) *Game {
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		keys:     input.NewState(input.HoldTimeout),
		running:  true,
	}
}

// setup loads the catalogs and builds the arena.
func (g *Game) setup(ctx context.Context, clock *world.Clock) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	abilities, err := ability.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load abilities: %w", err)
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return fmt.Errorf("load enemies: %w", err)
	}
	player, err := gamedata.LoadPlayer()
	if err != nil {
		return fmt.Errorf("load player: %w", err)
	}

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	events := event.NewDispatcher()
	events.SubscribeAll(event.ListenerFunc(logEvent))
	if g.cfg.Audio {
		g.audio = audio.NewPlayer()
		if err := g.audio.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("audio unavailable")
		} else {
			events.SubscribeAll(g.audio)
		}
	}

	cat := combat.Catalog{Abilities: abilities, Enemies: enemies, Player: player}
	g.arena = combat.New(g.cfg.Settings(), clock, rand.New(rand.NewSource(seed)), cat, events)

	span.SetAttributes(
		attribute.Int64("seed", seed),
		attribute.Int("abilities", abilities.Count()),
		attribute.Int("enemy_types", enemies.Count()),
		attribute.String("player.id", g.arena.Player().ID().String()),
	)
	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"countdown": g.cfg.Countdown.String(),
		"fps":       g.cfg.FPS,
	}).Info("game started")
	return nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	if err := g.setup(ctx, world.NewClock()); err != nil {
		g.screen.Close()
		return err
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go g.screen.Events(events, quit)

	ticker := time.NewTicker(g.cfg.FrameInterval())
	last := time.Now()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.frame(ctx, now, now.Sub(last))
			last = now
		}
	}

	// Cleanup
	ticker.Stop()
	close(quit)
	if g.audio != nil {
		g.audio.Close()
	}
	g.screen.Close()
	logger.Log.WithFields(logrus.Fields{
		"phase":  g.arena.Phase().String(),
		"kills":  g.arena.Kills(),
		"level":  g.arena.Level(),
		"paused": g.arena.World().Clock().PausedFor().String(),
	}).Info("game closed")
	return nil
}

// frame advances the arena one step and redraws.
func (g *Game) frame(ctx context.Context, now time.Time, dt time.Duration) {
	x, y := g.keys.Axis(now)
	if err := g.arena.Step(ctx, combat.Input{X: x, Y: y}, dt); err != nil {
		logger.Log.WithError(err).Warn("frame skipped")
	}
	g.renderer.Render(g.arena, g.menu.Cursor)
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey processes keyboard input.
func (g *Game) handleKey(ctx context.Context, ev *tcell.EventKey) {
	cmd := g.keys.HandleKey(ev)
	switch cmd {
	case input.CommandQuit:
		g.running = false
		return
	case input.CommandPause:
		g.arena.TogglePause()
		g.keys.Clear()
		return
	}

	if g.arena.Phase() != combat.PhaseAwaitingChoice {
		return
	}
	n := 0
	if offer := g.arena.Offer(); offer != nil {
		n = len(offer.Candidates)
	}
	switch cmd {
	case input.CommandUp:
		g.menu.Move(-1, n)
	case input.CommandDown:
		g.menu.Move(1, n)
	case input.CommandConfirm:
		if err := g.arena.Choose(ctx, g.menu.Cursor); err != nil {
			logger.Log.WithError(err).Warn("choice rejected")
			return
		}
		g.menu.Reset()
		g.keys.Clear()
	}
}

func logEvent(e event.Event) {
	logger.Log.WithFields(logrus.Fields{
		"event": string(e.Type),
		"data":  fmt.Sprintf("%+v", e.Data),
	}).Debug("arena event")
}
