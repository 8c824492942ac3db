// Package main is the entry point for Arena Survivors.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/arenasurvivors/internal/game"
	"github.com/samdwyer/arenasurvivors/internal/logger"
	"github.com/samdwyer/arenasurvivors/internal/telemetry"
	"github.com/samdwyer/arenasurvivors/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one; overrides ARENA_SEED)")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_ARENA_API_KEY available
	envErr := godotenv.Load()

	// The terminal belongs to tcell, so logs default to a file.
	if os.Getenv("LOG_FILE") == "" {
		os.Setenv("LOG_FILE", "arena.log")
	}
	closer, err := logger.Init(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable, logging to stderr: %v\n", err)
	}
	defer closer.Close()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Log.WithError(err).Warn("telemetry shutdown failed")
			}
		}()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to initialize terminal")
	}

	if err := game.New(cfg, screen).Run(ctx); err != nil {
		logger.Log.WithError(err).Error("game error")
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ARENA_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_ARENA_DATASET")
	if dataset == "" {
		dataset = "arenasurvivors" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
