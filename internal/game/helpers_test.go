package game

import (
	"testing"

	"github.com/samdwyer/pathofheroes/internal/entity"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
)

// scriptedRand replays fixed rolls. Once a script runs out, Float64 returns
// 0.99 (every chance fails) and Intn returns 0. Shuffle keeps the order.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {}

func testTuning(t *testing.T) gamedata.Tuning {
	t.Helper()
	tuning, err := gamedata.LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	return tuning
}

// newTestBattle builds a battle between a level 1 hero and a foe on floor.
func newTestBattle(t *testing.T, classID, foeID string, floor int, rng Rand) *Battle {
	t.Helper()
	tables := gamedata.MustLoadTables()
	tuning := testTuning(t)

	hero, err := entity.NewHero(tables, classID, 1)
	if err != nil {
		t.Fatalf("NewHero(%s): %v", classID, err)
	}
	def, err := tables.Foes.Get(foeID)
	if err != nil {
		t.Fatalf("Foes.Get(%s): %v", foeID, err)
	}
	foe := entity.NewFoe(def, floor, tuning.Progression)
	return NewBattle(hero, foe, tuning.Combat, rng, locale.MustLoad("en"))
}
