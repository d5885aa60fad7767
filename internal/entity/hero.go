// Package entity provides the runtime combat entities: the hero and the foes.
package entity

import (
	"fmt"

	"github.com/samdwyer/pathofheroes/internal/combat"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

// Hero is the player's combat entity for one run.
type Hero struct {
	Def   *gamedata.ClassDef // Class the hero was built from
	Level int                // Level the stats were derived from

	// Combat stats
	HP, MaxHP             int
	Resource, MaxResource int
	Attack                int
	Defense               int

	Inventory Inventory
}

// NewHero builds a hero of the given class at the given level.
//
// Stats start from the class base and gain one unit of per-level growth for
// every level above 1. HP and resource start full, and the inventory holds the
// starting item set.
func NewHero(tables *gamedata.Tables, classID string, level int) (*Hero, error) {
	def, err := tables.Classes.Get(classID)
	if err != nil {
		return nil, err
	}
	if level < 1 {
		return nil, fmt.Errorf("hero %q: level %d below 1", classID, level)
	}

	gains := level - 1
	h := &Hero{
		Def:         def,
		Level:       level,
		MaxHP:       def.Base.HP + gains*def.Growth.HP,
		MaxResource: def.Base.Resource,
		Attack:      def.Base.Attack + gains*def.Growth.Attack,
		Defense:     def.Base.Defense + gains*def.Growth.Defense,
	}
	h.HP = h.MaxHP
	h.Resource = h.MaxResource

	for _, id := range tables.Items.Starting() {
		item, err := tables.Items.Get(id)
		if err != nil {
			return nil, fmt.Errorf("hero %q starting items: %w", classID, err)
		}
		h.Inventory.Add(item, 1)
	}
	return h, nil
}

// Name returns the hero's display name in lang.
func (h *Hero) Name(lang string) string { return h.Def.Names.In(lang) }

// Skill returns the hero's class skill.
func (h *Hero) Skill() gamedata.SkillDef { return h.Def.Skill }

// UseItem consumes one unit of the item and applies its effect.
// It returns the amount of HP restored.
func (h *Hero) UseItem(id string) (int, error) {
	stack := h.Inventory.Find(id)
	if stack == nil {
		return 0, fmt.Errorf("%s: %w", id, ErrNoItem)
	}

	switch stack.Item.Effect {
	case gamedata.EffectHealPercent:
		if h.HP >= h.MaxHP {
			return 0, ErrFullHealth
		}
		amount := scaled(h.MaxHP, stack.Item.Value)
		h.Inventory.Remove(id, 1)
		return h.Heal(amount), nil
	default:
		return 0, fmt.Errorf("item %q has unknown effect %q", id, stack.Item.Effect)
	}
}

// =============================================================================
// Reward mutations
// =============================================================================

// RaiseAttack permanently increases attack for the rest of the run.
func (h *Hero) RaiseAttack(amount int) { h.Attack += amount }

// RaiseDefense permanently increases defense for the rest of the run.
func (h *Hero) RaiseDefense(amount int) { h.Defense += amount }

// RaiseMaxHP increases maximum HP and current HP by the same amount.
func (h *Hero) RaiseMaxHP(amount int) {
	h.MaxHP += amount
	h.HP += amount
}

// RaiseMaxResource increases maximum and current resource by the same amount.
func (h *Hero) RaiseMaxResource(amount int) {
	h.MaxResource += amount
	h.Resource += amount
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// ID returns the class identifier.
func (h *Hero) ID() string { return h.Def.ID }

// IsAlive returns true if the hero has HP remaining.
func (h *Hero) IsAlive() bool { return h.HP > 0 }

// GetHP returns current HP.
func (h *Hero) GetHP() int { return h.HP }

// GetMaxHP returns maximum HP.
func (h *Hero) GetMaxHP() int { return h.MaxHP }

// GetResource returns current resource.
func (h *Hero) GetResource() int { return h.Resource }

// GetMaxResource returns maximum resource.
func (h *Hero) GetMaxResource() int { return h.MaxResource }

// GetAttack returns attack stat.
func (h *Hero) GetAttack() int { return h.Attack }

// GetDefense returns defense stat.
func (h *Hero) GetDefense() int { return h.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (h *Hero) TakeDamage(amount int) int { return drain(&h.HP, amount) }

// Heal restores HP and returns actual amount healed.
func (h *Hero) Heal(amount int) int { return fill(&h.HP, h.MaxHP, amount) }

// SpendResource reduces resource and returns false if insufficient.
func (h *Hero) SpendResource(amount int) bool { return spend(&h.Resource, amount) }

// RestoreResource restores resource and returns actual amount restored.
func (h *Hero) RestoreResource(amount int) int { return fill(&h.Resource, h.MaxResource, amount) }

// Ensure Hero implements combat.Combatant
var _ combat.Combatant = (*Hero)(nil)
