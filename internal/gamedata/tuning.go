package gamedata

import (
	"errors"
	"fmt"
)

// Tuning holds the numeric knobs of combat and progression.
type Tuning struct {
	Combat      CombatTuning      `yaml:"combat"`
	Progression ProgressionTuning `yaml:"progression"`
}

// CombatTuning controls per-turn probabilities.
type CombatTuning struct {
	FleeChance       float64 `yaml:"flee_chance"`        // Probability a flee attempt succeeds
	EnemySkillChance float64 `yaml:"enemy_skill_chance"` // Probability a foe tries its skill
	DefendDivisor    int     `yaml:"defend_divisor"`     // Incoming damage is floor-divided by this while defending
}

// ProgressionTuning controls scaling, leveling and the death penalty.
type ProgressionTuning struct {
	EnemyScaleFactor       float64 `yaml:"enemy_scale_factor"`
	BaseXPToLevel          int     `yaml:"base_xp_to_level"`
	XPGrowthMultiplier     float64 `yaml:"xp_growth_multiplier"`
	GoldLossOnDeathPercent float64 `yaml:"gold_loss_on_death_percent"` // Fraction of gold lost, 0.9 = 90%
	BossFloorInterval      int     `yaml:"boss_floor_interval"`
}

// LoadTuning reads tuning from path, or from the embedded tuning.yaml when path is empty.
func LoadTuning(path string) (Tuning, error) {
	var t Tuning
	if err := loadYAML("tuning.yaml", path, &t); err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning in %s: %w", nameOr(path, "tuning.yaml"), err)
	}
	return t, nil
}

// MustLoadTuning loads the embedded tuning, panicking on error.
func MustLoadTuning() Tuning {
	t, err := LoadTuning("")
	if err != nil {
		panic(err)
	}
	return t
}

// Validate rejects values that would break the invariants of the game loop.
func (t Tuning) Validate() error {
	var errs []error
	if t.Combat.FleeChance < 0 || t.Combat.FleeChance > 1 {
		errs = append(errs, fmt.Errorf("flee_chance %v outside [0,1]", t.Combat.FleeChance))
	}
	if t.Combat.EnemySkillChance < 0 || t.Combat.EnemySkillChance > 1 {
		errs = append(errs, fmt.Errorf("enemy_skill_chance %v outside [0,1]", t.Combat.EnemySkillChance))
	}
	if t.Combat.DefendDivisor < 1 {
		errs = append(errs, fmt.Errorf("defend_divisor must be at least 1, got %d", t.Combat.DefendDivisor))
	}
	if t.Progression.BaseXPToLevel <= 0 {
		errs = append(errs, fmt.Errorf("base_xp_to_level must be positive, got %d", t.Progression.BaseXPToLevel))
	}
	if t.Progression.XPGrowthMultiplier < 1 {
		errs = append(errs, fmt.Errorf("xp_growth_multiplier must be at least 1, got %v", t.Progression.XPGrowthMultiplier))
	}
	if t.Progression.GoldLossOnDeathPercent < 0 || t.Progression.GoldLossOnDeathPercent > 1 {
		errs = append(errs, fmt.Errorf("gold_loss_on_death_percent %v outside [0,1]", t.Progression.GoldLossOnDeathPercent))
	}
	if t.Progression.BossFloorInterval < 1 {
		errs = append(errs, fmt.Errorf("boss_floor_interval must be at least 1, got %d", t.Progression.BossFloorInterval))
	}
	if t.Progression.EnemyScaleFactor < 0 {
		errs = append(errs, fmt.Errorf("enemy_scale_factor must not be negative, got %v", t.Progression.EnemyScaleFactor))
	}
	return errors.Join(errs...)
}
