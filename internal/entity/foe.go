package entity

import (
	"math"

	"github.com/samdwyer/pathofheroes/internal/combat"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

// Foe is an enemy or boss scaled for the floor it was spawned on.
type Foe struct {
	Def   *gamedata.FoeDef // Reference to the foe definition
	Floor int              // Floor the foe was scaled for
	Scale float64          // Multiplier applied to hp, attack and defense

	HP, MaxHP             int
	Resource, MaxResource int
	Attack                int
	Defense               int
}

// FoeScale returns the stat multiplier for a foe on floor.
//
// Ordinary foes scale with the floor number. Bosses scale with the number of
// boss encounters so far, floor / bossInterval.
func FoeScale(floor int, boss bool, p gamedata.ProgressionTuning) float64 {
	index := float64(floor)
	if boss && p.BossFloorInterval > 0 {
		index = float64(floor) / float64(p.BossFloorInterval)
	}
	return 1 + (index-1)*p.EnemyScaleFactor
}

// NewFoe creates a foe from its definition scaled for floor.
// The resource pool is not scaled.
func NewFoe(def *gamedata.FoeDef, floor int, p gamedata.ProgressionTuning) *Foe {
	scale := FoeScale(floor, def.Boss, p)
	f := &Foe{
		Def:         def,
		Floor:       floor,
		Scale:       scale,
		MaxHP:       scaled(def.Base.HP, scale),
		MaxResource: def.Base.Resource,
		Attack:      scaled(def.Base.Attack, scale),
		Defense:     scaled(def.Base.Defense, scale),
	}
	f.HP = f.MaxHP
	f.Resource = f.MaxResource
	return f
}

// scaled multiplies base by scale and rounds down. The small epsilon keeps
// products such as 60 * 2.5 from landing one below their exact value.
func scaled(base int, scale float64) int {
	return int(math.Floor(float64(base)*scale + 1e-9))
}

// Name returns the foe's display name in lang.
func (f *Foe) Name(lang string) string { return f.Def.Names.In(lang) }

// Skill returns the foe's skill.
func (f *Foe) Skill() gamedata.SkillDef { return f.Def.Skill }

// IsBoss reports whether the foe came from the boss table.
func (f *Foe) IsBoss() bool { return f.Def.Boss }

// =============================================================================
// Combatant interface implementation
// =============================================================================

// ID returns the foe's definition identifier.
func (f *Foe) ID() string { return f.Def.ID }

// IsAlive returns true if the foe has HP remaining.
func (f *Foe) IsAlive() bool { return f.HP > 0 }

// GetHP returns current HP.
func (f *Foe) GetHP() int { return f.HP }

// GetMaxHP returns maximum HP.
func (f *Foe) GetMaxHP() int { return f.MaxHP }

// GetResource returns current resource.
func (f *Foe) GetResource() int { return f.Resource }

// GetMaxResource returns maximum resource.
func (f *Foe) GetMaxResource() int { return f.MaxResource }

// GetAttack returns the scaled attack stat.
func (f *Foe) GetAttack() int { return f.Attack }

// GetDefense returns the scaled defense stat.
func (f *Foe) GetDefense() int { return f.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (f *Foe) TakeDamage(amount int) int { return drain(&f.HP, amount) }

// Heal restores HP and returns actual amount healed.
func (f *Foe) Heal(amount int) int { return fill(&f.HP, f.MaxHP, amount) }

// SpendResource reduces resource and returns false if insufficient.
func (f *Foe) SpendResource(amount int) bool { return spend(&f.Resource, amount) }

// RestoreResource restores resource and returns actual amount restored.
func (f *Foe) RestoreResource(amount int) int { return fill(&f.Resource, f.MaxResource, amount) }

var _ combat.Combatant = (*Foe)(nil)
