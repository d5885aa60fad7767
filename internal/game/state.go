// Package game provides the battle state machine, runs and rewards of Path of Heroes.
package game

// Phase represents the current phase of a battle.
type Phase int

const (
	// PhasePlayerTurn - waiting for the player's intent
	PhasePlayerTurn Phase = iota
	// PhaseResolving - an action is being applied
	PhaseResolving
	// PhaseEnemyTurn - the foe acts next
	PhaseEnemyTurn
	// PhaseEnded - the battle has an outcome
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseResolving:
		return "resolving"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

// String returns the outcome tag used in telemetry.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Action is a player intent or a foe move.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionSkill
	ActionFlee
	ActionItem
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionSkill:
		return "skill"
	case ActionFlee:
		return "flee"
	case ActionItem:
		return "item"
	default:
		return "unknown"
	}
}
