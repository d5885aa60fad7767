package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

func TestNewHeroLevelOne(t *testing.T) {
	tables := gamedata.MustLoadTables()

	hero, err := NewHero(tables, "warrior", 1)
	if err != nil {
		t.Fatalf("NewHero: %v", err)
	}

	if hero.MaxHP != 120 || hero.HP != 120 {
		t.Errorf("Expected full 120 HP, got %d/%d", hero.HP, hero.MaxHP)
	}
	if hero.MaxResource != 60 || hero.Resource != 60 {
		t.Errorf("Expected full 60 resource, got %d/%d", hero.Resource, hero.MaxResource)
	}
	if hero.Attack != 14 || hero.Defense != 10 {
		t.Errorf("Expected atk 14 def 10, got atk %d def %d", hero.Attack, hero.Defense)
	}
	if got := hero.Inventory.Count(gamedata.HealthPotionID); got != 1 {
		t.Errorf("Expected 1 starting potion, got %d", got)
	}
	if hero.Name("ar") != "طه" || hero.Name("en") != "Taha" {
		t.Errorf("Unexpected names: %q / %q", hero.Name("en"), hero.Name("ar"))
	}
}

func TestNewHeroGrowth(t *testing.T) {
	tables := gamedata.MustLoadTables()

	tests := []struct {
		class       string
		level       int
		hp, atk, df int
	}{
		{"warrior", 2, 140, 17, 12},
		{"warrior", 4, 180, 23, 16},
		{"sorceress", 3, 100, 26, 8},
		{"rogue", 5, 160, 32, 12},
	}

	for _, tt := range tests {
		hero, err := NewHero(tables, tt.class, tt.level)
		if err != nil {
			t.Fatalf("NewHero(%s, %d): %v", tt.class, tt.level, err)
		}
		if hero.MaxHP != tt.hp || hero.HP != tt.hp || hero.Attack != tt.atk || hero.Defense != tt.df {
			t.Errorf("%s L%d: got hp %d/%d atk %d def %d, want hp %d atk %d def %d",
				tt.class, tt.level, hero.HP, hero.MaxHP, hero.Attack, hero.Defense, tt.hp, tt.atk, tt.df)
		}
		if hero.Resource != hero.Def.Base.Resource {
			t.Errorf("%s L%d: resource should not grow with level, got %d", tt.class, tt.level, hero.Resource)
		}
	}
}

func TestNewHeroErrors(t *testing.T) {
	tables := gamedata.MustLoadTables()

	if _, err := NewHero(tables, "paladin", 1); !errors.Is(err, gamedata.ErrUnknownID) {
		t.Errorf("NewHero(paladin) error = %v, want ErrUnknownID", err)
	}
	if _, err := NewHero(tables, "warrior", 0); err == nil {
		t.Error("NewHero with level 0 should fail")
	}
}

func TestFoeScale(t *testing.T) {
	p := gamedata.ProgressionTuning{EnemyScaleFactor: 0.5, BossFloorInterval: 3}

	tests := []struct {
		floor int
		boss  bool
		want  float64
	}{
		{1, false, 1.0},
		{2, false, 1.5},
		{4, false, 2.5},
		{3, true, 1.0},
		{6, true, 1.5},
		{9, true, 2.0},
	}

	for _, tt := range tests {
		if got := FoeScale(tt.floor, tt.boss, p); got != tt.want {
			t.Errorf("FoeScale(%d, boss=%v) = %v, want %v", tt.floor, tt.boss, got, tt.want)
		}
	}
}

func TestNewFoeScaling(t *testing.T) {
	tables := gamedata.MustLoadTables()
	p := gamedata.ProgressionTuning{EnemyScaleFactor: 0.5, BossFloorInterval: 3}
	goblin, _ := tables.Foes.Get("goblin")

	floor1 := NewFoe(goblin, 1, p)
	if floor1.MaxHP != 60 || floor1.HP != 60 || floor1.Attack != 18 || floor1.Defense != 6 {
		t.Errorf("Floor 1 goblin should have base stats, got %+v", floor1)
	}

	floor4 := NewFoe(goblin, 4, p)
	if floor4.MaxHP != 150 || floor4.Attack != 45 || floor4.Defense != 15 {
		t.Errorf("Floor 4 goblin: got hp %d atk %d def %d, want 150/45/15",
			floor4.MaxHP, floor4.Attack, floor4.Defense)
	}
	if floor4.MaxResource != 20 || floor4.Resource != 20 {
		t.Errorf("Resource should not scale, got %d/%d", floor4.Resource, floor4.MaxResource)
	}

	// Floor 2 slime: 80*1.5=120, 16*1.5=24, 10*1.5=15.
	slime, _ := tables.Foes.Get("slime")
	floor2 := NewFoe(slime, 2, p)
	if floor2.MaxHP != 120 || floor2.Attack != 24 || floor2.Defense != 15 {
		t.Errorf("Floor 2 slime: got %d/%d/%d", floor2.MaxHP, floor2.Attack, floor2.Defense)
	}
}

func TestNewFoeBossScaling(t *testing.T) {
	tables := gamedata.MustLoadTables()
	p := gamedata.ProgressionTuning{EnemyScaleFactor: 0.5, BossFloorInterval: 3}
	warlord, _ := tables.Foes.Get("orc_warlord")

	first := NewFoe(warlord, 3, p)
	if first.MaxHP != 250 || first.Attack != 25 || first.Defense != 15 {
		t.Errorf("First boss should have base stats, got %d/%d/%d", first.MaxHP, first.Attack, first.Defense)
	}
	if !first.IsBoss() {
		t.Error("orc_warlord should be a boss")
	}

	// Second boss encounter: scale 1.5 -> 375 hp, 37 atk, 22 def.
	second := NewFoe(warlord, 6, p)
	if second.MaxHP != 375 || second.Attack != 37 || second.Defense != 22 {
		t.Errorf("Second boss: got %d/%d/%d, want 375/37/22", second.MaxHP, second.Attack, second.Defense)
	}
}

func TestHeroClamping(t *testing.T) {
	tables := gamedata.MustLoadTables()
	hero, _ := NewHero(tables, "rogue", 1)

	if got := hero.TakeDamage(500); got != 100 {
		t.Errorf("TakeDamage(500) = %d, want 100", got)
	}
	if hero.HP != 0 || hero.IsAlive() {
		t.Errorf("Expected dead hero at 0 HP, got %d", hero.HP)
	}
	if got := hero.Heal(1000); got != 100 || hero.HP != 100 {
		t.Errorf("Heal(1000) = %d, HP %d; want 100, 100", got, hero.HP)
	}
	if hero.SpendResource(81) {
		t.Error("SpendResource(81) should fail with 80 resource")
	}
	if hero.Resource != 80 {
		t.Errorf("Failed spend changed resource to %d", hero.Resource)
	}
	if !hero.SpendResource(25) || hero.Resource != 55 {
		t.Errorf("SpendResource(25) should leave 55, got %d", hero.Resource)
	}
	if got := hero.RestoreResource(100); got != 25 {
		t.Errorf("RestoreResource(100) = %d, want 25", got)
	}
}

func TestHeroUseItem(t *testing.T) {
	tables := gamedata.MustLoadTables()
	hero, _ := NewHero(tables, "warrior", 1)

	if _, err := hero.UseItem(gamedata.HealthPotionID); !errors.Is(err, ErrFullHealth) {
		t.Errorf("UseItem at full HP error = %v, want ErrFullHealth", err)
	}
	if hero.Inventory.Count(gamedata.HealthPotionID) != 1 {
		t.Error("Rejected potion should not be consumed")
	}

	hero.TakeDamage(100) // 20/120
	healed, err := hero.UseItem(gamedata.HealthPotionID)
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if healed != 48 || hero.HP != 68 {
		t.Errorf("Expected 48 healed to 68 HP, got %d healed, %d HP", healed, hero.HP)
	}
	if len(hero.Inventory) != 0 {
		t.Errorf("Empty stack should be removed, inventory = %+v", hero.Inventory)
	}

	if _, err := hero.UseItem(gamedata.HealthPotionID); !errors.Is(err, ErrNoItem) {
		t.Errorf("UseItem with no potions error = %v, want ErrNoItem", err)
	}
}

func TestInventoryAddRemove(t *testing.T) {
	potion := &gamedata.ItemDef{ID: "hp_potion", Effect: gamedata.EffectHealPercent, Value: 0.4}
	var inv Inventory

	inv.Add(potion, 1)
	inv.Add(potion, 2)
	if len(inv) != 1 || inv.Count("hp_potion") != 3 {
		t.Errorf("Expected one stack of 3, got %+v", inv)
	}
	if inv.Remove("hp_potion", 4) {
		t.Error("Removing more than carried should fail")
	}
	if !inv.Remove("hp_potion", 3) || len(inv) != 0 {
		t.Errorf("Removing all should drop the stack, got %+v", inv)
	}
	if inv.Remove("elixir", 1) {
		t.Error("Removing an absent item should fail")
	}
	inv.Add(potion, 0)
	if len(inv) != 0 {
		t.Error("Adding zero should not create a stack")
	}
}

func TestHeroRewardMutations(t *testing.T) {
	tables := gamedata.MustLoadTables()
	hero, _ := NewHero(tables, "sorceress", 1)
	hero.TakeDamage(30)
	hero.SpendResource(30)

	hero.RaiseMaxHP(10)
	if hero.MaxHP != 90 || hero.HP != 60 {
		t.Errorf("RaiseMaxHP: got %d/%d, want 60/90", hero.HP, hero.MaxHP)
	}
	hero.RaiseMaxResource(10)
	if hero.MaxResource != 110 || hero.Resource != 80 {
		t.Errorf("RaiseMaxResource: got %d/%d, want 80/110", hero.Resource, hero.MaxResource)
	}
	hero.RaiseAttack(2)
	hero.RaiseDefense(2)
	if hero.Attack != 20 || hero.Defense != 8 {
		t.Errorf("Raise atk/def: got %d/%d, want 20/8", hero.Attack, hero.Defense)
	}
}
