// Package combat provides the damage formula and single-strike resolution for Path of Heroes.
package combat

// Combatant is the interface for any entity that can take part in a strike.
// Both heroes and foes implement this interface.
type Combatant interface {
	// Identity
	ID() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	GetResource() int
	GetMaxResource() int
	GetAttack() int
	GetDefense() int

	// Mutations
	TakeDamage(amount int) int      // Returns actual damage taken
	Heal(amount int) int            // Returns actual amount healed
	SpendResource(amount int) bool  // Returns false if insufficient resource
	RestoreResource(amount int) int // Returns actual amount restored
}

// ComputeDamage returns the damage an attack deals before any defending reduction.
//
// Basic attacks subtract the full defense. Skills subtract half of it, rounded
// down. Every hit deals at least 1 damage.
func ComputeDamage(attack, defense int, isSkill bool) int {
	effective := defense
	if isSkill {
		effective = defense / 2
	}
	damage := attack - effective
	if damage < 1 {
		damage = 1
	}
	return damage
}

// StrikeResult contains the outcome of one attack.
type StrikeResult struct {
	Computed   int  // Damage from ComputeDamage
	Dealt      int  // Damage actually removed from the defender
	Skill      bool // True when the attacker used its skill
	Defended   bool // True when the defender's guard reduced the hit
	DefenderHP int  // Defender HP after the hit
}

// Strike resolves one attack from attacker onto defender and applies the damage.
//
// When defending is true, the computed damage is floor-divided by defendDivisor
// before it is applied. Resource costs are the caller's concern.
func Strike(attacker, defender Combatant, isSkill, defending bool, defendDivisor int) StrikeResult {
	computed := ComputeDamage(attacker.GetAttack(), defender.GetDefense(), isSkill)
	damage := computed
	if defending && defendDivisor > 1 {
		damage = computed / defendDivisor
	}

	dealt := defender.TakeDamage(damage)
	return StrikeResult{
		Computed:   computed,
		Dealt:      dealt,
		Skill:      isSkill,
		Defended:   defending,
		DefenderHP: defender.GetHP(),
	}
}

// CanUseSkill checks if a combatant has enough resource for a skill costing cost.
func CanUseSkill(user Combatant, cost int) bool {
	return user.GetResource() >= cost
}
