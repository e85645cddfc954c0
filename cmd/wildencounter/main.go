// Package main is the entry point for wildencounter.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wildencounter/internal/config"
	"github.com/samdwyer/wildencounter/internal/game"
	"github.com/samdwyer/wildencounter/internal/gamedata"
	"github.com/samdwyer/wildencounter/internal/telemetry"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	seedFlag   = flag.Int64("seed", 0, "random seed (0 uses the clock or config)")
	logPath    = flag.String("log", "", "write logs to this file while the game runs")
)

func main() {
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_WILDENCOUNTER_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := loadConfig(*configPath, *seedFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalogs, err := gamedata.LoadCatalogsFrom(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	// The screen owns the terminal from here on
	closeLog, err := setupLogging(*logPath)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	g, err := game.New(cfg, catalogs)
	if err != nil {
		restoreLogging()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		restoreLogging()
		log.Fatalf("Game error: %v", err)
	}
}

// loadConfig reads the config file if given, then applies environment and
// flag overrides in that order.
func loadConfig(path string, seed int64) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging routes the standard logger to path, or discards it when path
// is empty. The returned func closes the file.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func restoreLogging() {
	log.SetOutput(os.Stderr)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv(config.EnvTelemetryAPIKey)
	dataset := os.Getenv(config.EnvTelemetryDataset)
	if dataset == "" {
		dataset = "wildencounter"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
