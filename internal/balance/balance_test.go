package balance

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/pathofheroes/internal/entity"
	"github.com/samdwyer/pathofheroes/internal/game"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
)

func testParams(t *testing.T, classID string) Params {
	t.Helper()
	tuning, err := gamedata.LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	return Params{
		Tables:   gamedata.MustLoadTables(),
		Tuning:   tuning,
		ClassID:  classID,
		Seed:     12345,
		MaxFloor: 6,
	}
}

func testBattle(t *testing.T, classID string) *game.Battle {
	t.Helper()
	p := testParams(t, classID)
	hero, err := entity.NewHero(p.Tables, classID, 1)
	if err != nil {
		t.Fatalf("NewHero: %v", err)
	}
	def, _ := p.Tables.Foes.Get("goblin")
	foe := entity.NewFoe(def, 1, p.Tuning.Progression)
	return game.NewBattle(hero, foe, p.Tuning.Combat, rand.New(rand.NewSource(12345)), locale.MustLoad("en"))
}

func TestGreedyAction(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		hp       int
		resource int
		potions  bool
		want     game.Action
	}{
		{"healthy with resource", 120, 60, true, game.ActionSkill},
		{"healthy without resource", 120, 10, true, game.ActionAttack},
		{"low with potion", 30, 60, true, game.ActionItem},
		{"low without potion", 30, 60, false, game.ActionSkill},
		{"at threshold", 36, 0, true, game.ActionAttack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBattle(t, "warrior")
			b.Hero.HP = tt.hp
			b.Hero.Resource = tt.resource
			if !tt.potions {
				b.Hero.Inventory.Remove(gamedata.HealthPotionID, 1)
			}
			if got := policy.Action(b); got != tt.want {
				t.Errorf("Action() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGreedyReward(t *testing.T) {
	policy := DefaultPolicy()
	hero, _ := entity.NewHero(gamedata.MustLoadTables(), "rogue", 1)

	offer := []game.RewardKind{game.RewardHeal, game.RewardDefense, game.RewardMaxHP}
	if got := policy.Reward(hero, offer); got != game.RewardMaxHP {
		t.Errorf("Healthy hero picked %v, want max_hp", got)
	}

	hero.HP = 40
	if got := policy.Reward(hero, offer); got != game.RewardHeal {
		t.Errorf("Wounded hero picked %v, want heal", got)
	}

	offer = []game.RewardKind{game.RewardItem, game.RewardAttack, game.RewardDefense}
	if got := policy.Reward(hero, offer); got != game.RewardAttack {
		t.Errorf("Wounded hero without Rest picked %v, want attack", got)
	}

	picky := Greedy{Priority: []game.RewardKind{game.RewardMaxResource}}
	if got := picky.Reward(hero, offer); got != game.RewardItem {
		t.Errorf("Fallback picked %v, want the first offer", got)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	ctx := context.Background()
	p := testParams(t, "warrior")

	first, err := Simulate(ctx, p)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	second, err := Simulate(ctx, p)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if first != second {
		t.Errorf("Same seed gave different runs:\n%+v\n%+v", first, second)
	}
}

func TestSimulateStopsAtCap(t *testing.T) {
	ctx := context.Background()

	for _, classID := range []string{"warrior", "sorceress", "rogue"} {
		p := testParams(t, classID)
		for seed := int64(1); seed <= 20; seed++ {
			p.Seed = seed
			res, err := Simulate(ctx, p)
			if err != nil {
				t.Fatalf("Simulate(%s, %d): %v", classID, seed, err)
			}
			if res.FloorsCleared > p.MaxFloor {
				t.Errorf("%s seed %d cleared %d floors past cap %d", classID, seed, res.FloorsCleared, p.MaxFloor)
			}
			if res.ReachedCap != (res.FloorsCleared == p.MaxFloor) {
				t.Errorf("%s seed %d: reached cap %v with %d floors", classID, seed, res.ReachedCap, res.FloorsCleared)
			}
			if !res.ReachedCap && res.Outcome != "defeat" {
				t.Errorf("%s seed %d ended with %q, want defeat", classID, seed, res.Outcome)
			}
			wantBattles := res.FloorsCleared
			if !res.ReachedCap {
				wantBattles++
			}
			if res.Battles != wantBattles {
				t.Errorf("%s seed %d: %d battles for %d floors", classID, seed, res.Battles, res.FloorsCleared)
			}
			if res.Turns <= 0 {
				t.Errorf("%s seed %d: no turns recorded", classID, seed)
			}
		}
	}
}

func TestSimulateUnknownClass(t *testing.T) {
	p := testParams(t, "bard")
	if _, err := Simulate(context.Background(), p); !errors.Is(err, gamedata.ErrUnknownID) {
		t.Errorf("Simulate(bard) error = %v, want ErrUnknownID", err)
	}
}

func TestBatchIndependentOfWorkers(t *testing.T) {
	ctx := context.Background()
	p := testParams(t, "rogue")

	serial, err := Batch(ctx, p, 24, 1)
	if err != nil {
		t.Fatalf("Batch(1 worker): %v", err)
	}
	parallel, err := Batch(ctx, p, 24, 6)
	if err != nil {
		t.Fatalf("Batch(6 workers): %v", err)
	}

	if serial.Runs != 24 || parallel.Runs != 24 {
		t.Fatalf("Expected 24 runs, got %d and %d", serial.Runs, parallel.Runs)
	}
	if serial.WinRate != parallel.WinRate || serial.MeanFloors != parallel.MeanFloors ||
		serial.MeanTurns != parallel.MeanTurns || serial.MeanGold != parallel.MeanGold {
		t.Errorf("Worker count changed the summary:\n%+v\n%+v", serial, parallel)
	}
	if serial.BatchID == parallel.BatchID {
		t.Error("Batches should have distinct ids")
	}

	total := 0
	for _, n := range serial.Outcomes {
		total += n
	}
	if total != 24 {
		t.Errorf("Outcome counts sum to %d, want 24", total)
	}
	if serial.DeepestFloor > p.MaxFloor {
		t.Errorf("Deepest floor %d beyond cap %d", serial.DeepestFloor, p.MaxFloor)
	}
	if serial.WinRate < 0 || serial.WinRate > 1 {
		t.Errorf("Win rate %f out of range", serial.WinRate)
	}
}

func TestBatchErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := Batch(ctx, testParams(t, "warrior"), 0, 4); err == nil {
		t.Error("Batch of 0 runs should fail")
	}
	if _, err := Batch(ctx, testParams(t, "bard"), 4, 2); !errors.Is(err, gamedata.ErrUnknownID) {
		t.Errorf("Batch(bard) error = %v, want ErrUnknownID", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Batch(canceled, testParams(t, "warrior"), 4, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("Canceled batch error = %v, want context.Canceled", err)
	}
}
