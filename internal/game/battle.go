package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pathofheroes/internal/combat"
	"github.com/samdwyer/pathofheroes/internal/entity"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
	"github.com/samdwyer/pathofheroes/internal/telemetry"
)

// Rejection reasons returned by Act. A rejected intent changes nothing and the
// hero may act again.
var (
	ErrNotPlayerTurn        = errors.New("not the player's turn")
	ErrNotEnemyTurn         = errors.New("not the enemy's turn")
	ErrInsufficientResource = errors.New("not enough resource")
	ErrFleeForbidden        = errors.New("cannot flee from a boss")
	ErrUnknownAction        = errors.New("unknown action")
	ErrNoItem               = entity.ErrNoItem
	ErrFullHealth           = entity.ErrFullHealth
)

// Side identifies which combatant acted.
type Side int

const (
	SideHero Side = iota
	SideFoe
)

// String returns the side name.
func (s Side) String() string {
	if s == SideFoe {
		return "foe"
	}
	return "hero"
}

// TurnResult describes one resolved action.
type TurnResult struct {
	Actor   Side
	Action  Action
	Move    string // Skill or item name; empty for basic attacks
	Damage  int    // Damage dealt to the other side
	Healed  int    // HP restored by an item
	Fled    bool   // Flee attempt succeeded
	Phase   Phase  // Phase after the action
	Outcome Outcome
	Message string // Localized description for display
}

// CombatantView is a read-only snapshot of one side for presentation.
type CombatantView struct {
	ID           string
	Name         string
	HP, MaxHP    int
	Resource     int
	MaxResource  int
	ResourceName string
	Boss         bool
}

// Snapshot is the battle state handed to the presentation layer.
type Snapshot struct {
	Phase     Phase
	Outcome   Outcome
	Turn      int
	Defending bool
	Hero      CombatantView
	Foe       CombatantView
	Potions   int
	Message   string
}

// Battle holds all state for a single encounter between the hero and one foe.
type Battle struct {
	Phase     Phase
	Outcome   Outcome
	Hero      *entity.Hero
	Foe       *entity.Foe
	Defending bool         // Hero guard for the next foe attack
	TurnCount int          // Completed rounds
	Last      TurnResult   // Most recent resolved action
	Log       []TurnResult // Every resolved action in order

	tuning  gamedata.CombatTuning
	rng     Rand
	catalog *locale.Catalog
}

// NewBattle creates a battle in the player's turn.
func NewBattle(hero *entity.Hero, foe *entity.Foe, tuning gamedata.CombatTuning, rng Rand, catalog *locale.Catalog) *Battle {
	b := &Battle{
		Phase:   PhasePlayerTurn,
		Hero:    hero,
		Foe:     foe,
		tuning:  tuning,
		rng:     rng,
		catalog: catalog,
	}
	b.Last = TurnResult{Phase: PhasePlayerTurn, Message: catalog.T(locale.BattleBegins, catalog.Name(foe.Def.Names))}
	return b
}

// Ended reports whether the battle has an outcome.
func (b *Battle) Ended() bool { return b.Phase == PhaseEnded }

// =============================================================================
// Player actions
// =============================================================================

// Act resolves a player intent.
//
// Intents are accepted only in PhasePlayerTurn. Rejections (wrong phase,
// insufficient resource, fleeing a boss, unusable item) return an error that
// wraps one of the Err* reasons and leave the battle untouched. An accepted
// action moves the battle to PhaseEnemyTurn unless it ended the battle.
func (b *Battle) Act(ctx context.Context, action Action) (TurnResult, error) {
	if b.Phase != PhasePlayerTurn {
		return TurnResult{}, fmt.Errorf("%s: %w", action, ErrNotPlayerTurn)
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("actor", b.Hero.ID()),
		attribute.String("action", action.String()),
		attribute.String("target", b.Foe.ID()),
		attribute.Int("turn", b.TurnCount),
	)

	var (
		result TurnResult
		err    error
	)
	switch action {
	case ActionAttack:
		result = b.strike(SideHero, false)
	case ActionDefend:
		result = b.defend()
	case ActionSkill:
		result, err = b.useSkill()
	case ActionFlee:
		result, err = b.flee()
	case ActionItem:
		result, err = b.useItem(gamedata.HealthPotionID)
	default:
		err = fmt.Errorf("%d: %w", action, ErrUnknownAction)
	}
	if err != nil {
		span.SetAttributes(attribute.Bool("rejected", true), attribute.String("reason", err.Error()))
		return TurnResult{}, err
	}

	if b.Phase == PhaseResolving {
		b.Phase = PhaseEnemyTurn
	}
	result.Phase, result.Outcome = b.Phase, b.Outcome
	b.record(result)

	span.SetAttributes(
		attribute.Int("damage", result.Damage),
		attribute.String("phase", b.Phase.String()),
	)
	return result, nil
}

func (b *Battle) defend() TurnResult {
	b.Phase = PhaseResolving
	b.Defending = true
	return TurnResult{
		Actor:   SideHero,
		Action:  ActionDefend,
		Message: b.catalog.T(locale.Defending, b.catalog.Name(b.Hero.Def.Names)),
	}
}

func (b *Battle) useSkill() (TurnResult, error) {
	skill := b.Hero.Skill()
	if !combat.CanUseSkill(b.Hero, skill.Cost) {
		return TurnResult{}, fmt.Errorf("%w: %s needs %d %s, have %d",
			ErrInsufficientResource, skill.Name, skill.Cost, b.Hero.Def.Resource, b.Hero.Resource)
	}
	b.Hero.SpendResource(skill.Cost)
	return b.strike(SideHero, true), nil
}

func (b *Battle) flee() (TurnResult, error) {
	if b.Foe.IsBoss() {
		return TurnResult{}, fmt.Errorf("%w: %s", ErrFleeForbidden, b.Foe.Def.Names.In(gamedata.DefaultLang))
	}

	b.Phase = PhaseResolving
	result := TurnResult{Actor: SideHero, Action: ActionFlee}
	if b.rng.Float64() < b.tuning.FleeChance {
		b.end(OutcomeFled)
		result.Fled = true
		result.Message = b.catalog.T(locale.Fled)
		return result, nil
	}
	result.Message = b.catalog.T(locale.FleeFailed)
	return result, nil
}

func (b *Battle) useItem(id string) (TurnResult, error) {
	var names gamedata.Names
	if stack := b.Hero.Inventory.Find(id); stack != nil {
		names = stack.Item.Names
	}
	healed, err := b.Hero.UseItem(id)
	if err != nil {
		return TurnResult{}, err
	}

	b.Phase = PhaseResolving
	name := b.catalog.Name(names)
	return TurnResult{
		Actor:   SideHero,
		Action:  ActionItem,
		Move:    name,
		Healed:  healed,
		Message: b.catalog.T(locale.Drinks, b.catalog.Name(b.Hero.Def.Names), name, healed),
	}, nil
}

// =============================================================================
// Foe action
// =============================================================================

// EnemyTurn lets the foe take exactly one action.
//
// The foe uses its skill when a roll lands under the skill chance and it can
// pay the cost, and attacks otherwise. The hero's guard drops afterwards
// whether or not it was used.
func (b *Battle) EnemyTurn(ctx context.Context) (TurnResult, error) {
	if b.Phase != PhaseEnemyTurn {
		return TurnResult{}, ErrNotEnemyTurn
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()

	roll := b.rng.Float64()
	skill := b.Foe.Skill()
	useSkill := roll < b.tuning.EnemySkillChance && combat.CanUseSkill(b.Foe, skill.Cost)
	if useSkill {
		b.Foe.SpendResource(skill.Cost)
	}

	result := b.strike(SideFoe, useSkill)
	b.Defending = false
	if b.Phase == PhaseResolving {
		b.Phase = PhasePlayerTurn
		b.TurnCount++
	}
	result.Phase, result.Outcome = b.Phase, b.Outcome
	b.record(result)

	action := ActionAttack
	if useSkill {
		action = ActionSkill
	}
	span.SetAttributes(
		attribute.String("actor", b.Foe.ID()),
		attribute.String("action", action.String()),
		attribute.String("target", b.Hero.ID()),
		attribute.Int("turn", b.TurnCount),
		attribute.Int("damage", result.Damage),
		attribute.String("phase", b.Phase.String()),
	)
	return result, nil
}

// =============================================================================
// Resolution
// =============================================================================

// strike resolves one attack and checks whether it ended the battle.
func (b *Battle) strike(side Side, isSkill bool) TurnResult {
	b.Phase = PhaseResolving

	var (
		attacker, defender         combat.Combatant
		attackerNames, targetNames gamedata.Names
		skillName                  string
		defending                  bool
	)
	if side == SideHero {
		attacker, defender = b.Hero, b.Foe
		attackerNames, targetNames = b.Hero.Def.Names, b.Foe.Def.Names
		skillName = b.Hero.Skill().Name
	} else {
		attacker, defender = b.Foe, b.Hero
		attackerNames, targetNames = b.Foe.Def.Names, b.Hero.Def.Names
		skillName = b.Foe.Skill().Name
		defending = b.Defending
	}

	hit := combat.Strike(attacker, defender, isSkill, defending, b.tuning.DefendDivisor)

	result := TurnResult{Actor: side, Action: ActionAttack, Damage: hit.Dealt}
	moveName := b.catalog.T(locale.BasicAttack)
	if isSkill {
		result.Action = ActionSkill
		result.Move = skillName
		moveName = skillName
	}
	result.Message = b.catalog.T(locale.Strike,
		b.catalog.Name(attackerNames), moveName, b.catalog.Name(targetNames), hit.Dealt)

	b.checkEnd()
	return result
}

// checkEnd ends the battle when either side is out of HP. Defeat is checked first.
func (b *Battle) checkEnd() bool {
	switch {
	case !b.Hero.IsAlive():
		b.end(OutcomeDefeat)
	case !b.Foe.IsAlive():
		b.end(OutcomeVictory)
	default:
		return false
	}
	return true
}

func (b *Battle) end(outcome Outcome) {
	b.Phase = PhaseEnded
	b.Outcome = outcome
	b.Defending = false
}

func (b *Battle) record(result TurnResult) {
	b.Last = result
	b.Log = append(b.Log, result)
}

// =============================================================================
// Presentation
// =============================================================================

// Snapshot returns the state the presentation layer draws.
func (b *Battle) Snapshot() Snapshot {
	return Snapshot{
		Phase:     b.Phase,
		Outcome:   b.Outcome,
		Turn:      b.TurnCount,
		Defending: b.Defending,
		Hero: CombatantView{
			ID:           b.Hero.ID(),
			Name:         b.catalog.Name(b.Hero.Def.Names),
			HP:           b.Hero.HP,
			MaxHP:        b.Hero.MaxHP,
			Resource:     b.Hero.Resource,
			MaxResource:  b.Hero.MaxResource,
			ResourceName: b.Hero.Def.Resource,
		},
		Foe: CombatantView{
			ID:          b.Foe.ID(),
			Name:        b.catalog.Name(b.Foe.Def.Names),
			HP:          b.Foe.HP,
			MaxHP:       b.Foe.MaxHP,
			Resource:    b.Foe.Resource,
			MaxResource: b.Foe.MaxResource,
			Boss:        b.Foe.IsBoss(),
		},
		Potions: b.Hero.Inventory.Count(gamedata.HealthPotionID),
		Message: b.Last.Message,
	}
}

// RejectionMessage turns an Act error into display text in the battle's language.
func (b *Battle) RejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientResource):
		return b.catalog.T(locale.NotEnough, b.Hero.Def.Resource)
	case errors.Is(err, ErrFleeForbidden):
		return b.catalog.T(locale.CannotFlee, b.catalog.Name(b.Foe.Def.Names))
	case errors.Is(err, ErrNoItem):
		return b.catalog.T(locale.NoItem)
	case errors.Is(err, ErrFullHealth):
		return b.catalog.T(locale.FullHealth)
	default:
		return err.Error()
	}
}
