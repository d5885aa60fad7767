package balance

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/pathofheroes/internal/game"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/telemetry"
)

// maxActionsPerBattle bounds a single simulated battle. Every strike deals at
// least 1 damage, so only a broken policy can reach it.
const maxActionsPerBattle = 10000

// seedStride separates the seeds of consecutive runs in a batch.
const seedStride = 7919

// ErrStalled is returned when a simulated battle exceeds maxActionsPerBattle.
var ErrStalled = errors.New("battle did not end")

// Params configures simulated runs.
type Params struct {
	Tables   *gamedata.Tables
	Tuning   gamedata.Tuning
	Policy   Policy // DefaultPolicy when nil
	ClassID  string
	Seed     int64
	MaxFloor int  // Stop once this floor is cleared; 0 plays until the run ends
	Trace    bool // Emit a span per simulated run
}

// Result summarizes one simulated run.
type Result struct {
	Seed          int64  `json:"seed"`
	FloorsCleared int    `json:"floors_cleared"`
	ReachedCap    bool   `json:"reached_cap"`
	Outcome       string `json:"outcome"` // Outcome of the last battle
	Battles       int    `json:"battles"`
	Turns         int    `json:"turns"`
	GoldGained    int    `json:"gold_gained"`
	GoldLost      int    `json:"gold_lost"`
	LevelsGained  int    `json:"levels_gained"`
	HeroLevel     int    `json:"hero_level"`
}

// Simulate plays one run with a fresh player save until the hero falls,
// flees, or clears MaxFloor.
func Simulate(ctx context.Context, p Params) (Result, error) {
	return simulate(ctx, p, tracerFor(p))
}

func simulate(ctx context.Context, p Params, tracer trace.Tracer) (Result, error) {
	policy := p.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}

	ctx, span := tracer.Start(ctx, "balance.run")
	defer span.End()

	session, err := game.NewSession(p.Tables, p.Tuning, nil, nil, rand.New(rand.NewSource(p.Seed)))
	if err != nil {
		return Result{}, err
	}
	run, err := session.StartRun(ctx, p.ClassID)
	if err != nil {
		return Result{}, err
	}

	res := Result{Seed: p.Seed}
	for !run.Over() {
		if p.MaxFloor > 0 && run.Floor > p.MaxFloor {
			res.ReachedCap = true
			break
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		b, err := run.NextBattle(ctx)
		if err != nil {
			return res, err
		}
		if err := playBattle(ctx, b, policy); err != nil {
			return res, fmt.Errorf("floor %d: %w", run.Floor, err)
		}
		res.Battles++
		res.Turns += b.TurnCount

		st, err := run.Conclude(ctx)
		if err != nil {
			return res, err
		}
		res.Outcome = st.Outcome.String()
		res.GoldGained += st.GoldGained
		res.GoldLost += st.GoldLost
		res.LevelsGained += st.LevelsGained
		res.HeroLevel = st.Progress.Level

		if len(st.Rewards) > 0 {
			if err := run.ChooseReward(ctx, policy.Reward(run.Hero, st.Rewards)); err != nil {
				return res, err
			}
		}
	}
	res.FloorsCleared = run.Floor - 1

	span.SetAttributes(
		attribute.String("run.id", run.ID.String()),
		attribute.String("hero", p.ClassID),
		attribute.Int64("seed", p.Seed),
		attribute.Int("floors_cleared", res.FloorsCleared),
		attribute.String("outcome", res.Outcome),
	)
	return res, nil
}

// playBattle drives the battle to its end. A rejected intent falls back to a
// basic attack, which is always accepted.
func playBattle(ctx context.Context, b *game.Battle, policy Policy) error {
	for i := 0; !b.Ended(); i++ {
		if i >= maxActionsPerBattle {
			return ErrStalled
		}
		if _, err := b.Act(ctx, policy.Action(b)); err != nil {
			if _, err := b.Act(ctx, game.ActionAttack); err != nil {
				return err
			}
		}
		if b.Ended() {
			break
		}
		if _, err := b.EnemyTurn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func tracerFor(p Params) trace.Tracer {
	if p.Trace {
		return telemetry.Tracer("balance")
	}
	return telemetry.NoopTracer()
}

// =============================================================================
// Batches
// =============================================================================

// Summary aggregates a batch of simulated runs.
type Summary struct {
	BatchID       string         `json:"batch_id"`
	ClassID       string         `json:"class"`
	Runs          int            `json:"runs"`
	Seed          int64          `json:"seed"`
	MaxFloor      int            `json:"max_floor"`
	WinRate       float64        `json:"win_rate"` // Share of runs that cleared MaxFloor
	MeanFloors    float64        `json:"mean_floors_cleared"`
	DeepestFloor  int            `json:"deepest_floor_cleared"`
	MeanTurns     float64        `json:"mean_turns"`
	MeanGold      float64        `json:"mean_gold_gained"`
	MeanGoldLost  float64        `json:"mean_gold_lost"`
	MeanLevels    float64        `json:"mean_levels_gained"`
	Outcomes      map[string]int `json:"outcomes"`
	FloorsCleared map[int]int    `json:"floors_cleared_histogram"`
}

// Batch plays n runs on a pool of workers. Run i uses seed
// p.Seed + i*seedStride, so the summary does not depend on the worker count.
func Batch(ctx context.Context, p Params, n, workers int) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("batch size %d must be positive", n)
	}
	if workers <= 0 {
		workers = 1
	}
	workers = min(workers, n)

	batchID := uuid.New()
	ctx, span := telemetry.Tracer("balance").Start(ctx, "balance.batch")
	defer span.End()
	span.SetAttributes(
		attribute.String("batch.id", batchID.String()),
		attribute.String("hero", p.ClassID),
		attribute.Int("runs", n),
		attribute.Int("workers", workers),
		attribute.Int("max_floor", p.MaxFloor),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracer := tracerFor(p)
	results := make([]Result, n)
	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				run := p
				run.Seed = p.Seed + int64(i)*seedStride
				res, err := simulate(ctx, run, tracer)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("run %d (seed %d): %w", i, run.Seed, err)
						cancel()
					}
					mu.Unlock()
					continue
				}
				results[i] = res
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		span.RecordError(firstErr)
		return Summary{}, firstErr
	}

	sum := summarize(results)
	sum.BatchID = batchID.String()
	sum.ClassID = p.ClassID
	sum.Seed = p.Seed
	sum.MaxFloor = p.MaxFloor
	span.SetAttributes(
		attribute.Float64("win_rate", sum.WinRate),
		attribute.Float64("mean_floors_cleared", sum.MeanFloors),
	)
	return sum, nil
}

func summarize(results []Result) Summary {
	s := Summary{
		Runs:          len(results),
		Outcomes:      make(map[string]int),
		FloorsCleared: make(map[int]int),
	}
	var wins, floors, turns, gold, lost, levels int
	for _, r := range results {
		if r.ReachedCap {
			wins++
		}
		floors += r.FloorsCleared
		turns += r.Turns
		gold += r.GoldGained
		lost += r.GoldLost
		levels += r.LevelsGained
		s.DeepestFloor = max(s.DeepestFloor, r.FloorsCleared)
		s.Outcomes[r.Outcome]++
		s.FloorsCleared[r.FloorsCleared]++
	}

	n := float64(len(results))
	s.WinRate = float64(wins) / n
	s.MeanFloors = float64(floors) / n
	s.MeanTurns = float64(turns) / n
	s.MeanGold = float64(gold) / n
	s.MeanGoldLost = float64(lost) / n
	s.MeanLevels = float64(levels) / n
	return s
}
