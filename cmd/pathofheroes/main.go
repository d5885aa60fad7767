// Package main is the entry point for Path of Heroes.
package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/pathofheroes/internal/game"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
	"github.com/samdwyer/pathofheroes/internal/telemetry"
	"github.com/samdwyer/pathofheroes/internal/ui"
)

func main() {
	// Variables set in the environment take precedence over .env.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := configFromEnv(game.DefaultConfig())
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flag.StringVar(&cfg.Lang, "lang", cfg.Lang, "display language (en, ar)")
	flag.StringVar(&cfg.TuningPath, "tuning", cfg.TuningPath, "tuning YAML overriding the built-in values")
	flag.DurationVar(&cfg.Pacing, "pacing", cfg.Pacing, "pause before the foe acts")
	flag.Parse()

	setupOTelEnv()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	tables := gamedata.MustLoadTables()
	tuning, err := gamedata.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	catalog, err := locale.Load(cfg.Lang)
	if err != nil {
		log.Fatalf("Failed to load strings: %v", err)
	}

	session, err := game.NewSession(tables, tuning, nil, catalog, game.NewRand(cfg.Seed))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	app, err := ui.New(session, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	if err := app.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// configFromEnv applies PATH_OF_HEROES_* variables on top of cfg.
func configFromEnv(cfg game.Config) game.Config {
	if lang := os.Getenv("PATH_OF_HEROES_LANG"); lang != "" {
		cfg.Lang = lang
	} else if lang := os.Getenv("LANG"); lang != "" {
		cfg.Lang = locale.Match(lang).String()
	}
	if seed := os.Getenv("PATH_OF_HEROES_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			log.Printf("Ignoring PATH_OF_HEROES_SEED=%q: %v", seed, err)
		}
	}
	if path := os.Getenv("PATH_OF_HEROES_TUNING"); path != "" {
		cfg.TuningPath = path
	}
	return cfg
}

// setupOTelEnv points the exporter at Honeycomb when
// HONEYCOMB_PATHOFHEROES_API_KEY is set. An endpoint already given through
// OTEL_EXPORTER_OTLP_ENDPOINT wins; the dataset defaults to "pathofheroes".
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_PATHOFHEROES_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := cmp.Or(os.Getenv("HONEYCOMB_PATHOFHEROES_DATASET"), "pathofheroes")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
