// Package main runs batches of simulated runs and writes a JSON summary.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/samdwyer/pathofheroes/internal/balance"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/telemetry"
)

func main() {
	var classID, tuningPath, out string
	var seed int64
	var n, workers, maxFloor int
	var traceRuns bool
	flag.StringVar(&classID, "class", "warrior", "hero class id")
	flag.IntVar(&n, "n", 1000, "number of runs")
	flag.Int64Var(&seed, "seed", 12345, "base seed")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers")
	flag.IntVar(&maxFloor, "max-floor", 10, "stop a run after clearing this floor (0 = no cap)")
	flag.StringVar(&tuningPath, "tuning", "", "tuning YAML overriding the built-in values")
	flag.StringVar(&out, "out", "", "summary file (default stdout)")
	flag.BoolVar(&traceRuns, "trace-runs", false, "emit a span per run")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	tuning, err := gamedata.LoadTuning(tuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	summary, err := balance.Batch(ctx, balance.Params{
		Tables:   gamedata.MustLoadTables(),
		Tuning:   tuning,
		ClassID:  classID,
		Seed:     seed,
		MaxFloor: maxFloor,
		Trace:    traceRuns,
	}, n, workers)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode summary: %v", err)
	}
	if out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}
	fmt.Printf("Batch of %d %s runs: win rate %.3f, mean floors %.2f -> %s\n",
		summary.Runs, classID, summary.WinRate, summary.MeanFloors, out)
}
