package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/samdwyer/arenasurvivors/internal/combat"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible spawns and rolls.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Countdown     time.Duration
	SpawnInterval time.Duration
	SpawnBatch    int
	SpawnRadius   float32
	FPS           int
	// CameraYaw in degrees; movement input is relative to it.
	CameraYaw float32
	Audio     bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	s := combat.DefaultSettings()
	return Config{
		Countdown:     s.Countdown,
		SpawnInterval: s.SpawnInterval,
		SpawnBatch:    s.SpawnBatch,
		SpawnRadius:   s.SpawnRadius,
		FPS:           30,
	}
}

// LoadConfig reads ARENA_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	c := DefaultConfig()
	var err error

	if c.Seed, err = envInt64("ARENA_SEED", c.Seed); err != nil {
		return c, err
	}
	if c.Countdown, err = envDuration("ARENA_COUNTDOWN", c.Countdown); err != nil {
		return c, err
	}
	if c.SpawnInterval, err = envDuration("ARENA_SPAWN_INTERVAL", c.SpawnInterval); err != nil {
		return c, err
	}
	batch, err := envInt64("ARENA_SPAWN_BATCH", int64(c.SpawnBatch))
	if err != nil {
		return c, err
	}
	c.SpawnBatch = int(batch)
	if c.SpawnRadius, err = envFloat("ARENA_SPAWN_RADIUS", c.SpawnRadius); err != nil {
		return c, err
	}
	fps, err := envInt64("ARENA_FPS", int64(c.FPS))
	if err != nil {
		return c, err
	}
	c.FPS = int(fps)
	if c.CameraYaw, err = envFloat("ARENA_CAMERA_YAW", c.CameraYaw); err != nil {
		return c, err
	}
	if v, ok := os.LookupEnv("ARENA_AUDIO"); ok {
		if c.Audio, err = strconv.ParseBool(v); err != nil {
			return c, fmt.Errorf("ARENA_AUDIO: %w", err)
		}
	}

	return c, c.Validate()
}

// Validate rejects configurations the frame loop cannot run.
func (c Config) Validate() error {
	switch {
	case c.Countdown <= 0:
		return fmt.Errorf("countdown must be positive, got %v", c.Countdown)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("spawn interval must be positive, got %v", c.SpawnInterval)
	case c.SpawnBatch < 0:
		return fmt.Errorf("spawn batch must not be negative, got %d", c.SpawnBatch)
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("fps must be in 1..240, got %d", c.FPS)
	}
	return nil
}

// Settings converts the config into arena tuning.
func (c Config) Settings() combat.Settings {
	return combat.Settings{
		Countdown:     c.Countdown,
		SpawnInterval: c.SpawnInterval,
		SpawnBatch:    c.SpawnBatch,
		SpawnRadius:   c.SpawnRadius,
		CameraYaw:     mgl32.DegToRad(c.CameraYaw),
	}
}

// FrameInterval returns the target time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func envInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float32) (float32, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return float32(f), nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
