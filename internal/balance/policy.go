// Package balance plays runs without a player so tuning changes can be
// compared over many seeded runs.
package balance

import (
	"slices"

	"github.com/samdwyer/pathofheroes/internal/combat"
	"github.com/samdwyer/pathofheroes/internal/entity"
	"github.com/samdwyer/pathofheroes/internal/game"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

// Policy decides for the simulated player.
type Policy interface {
	// Action picks the hero's intent for the current player turn.
	Action(b *game.Battle) game.Action
	// Reward picks one of the offered rewards after a victory.
	Reward(hero *entity.Hero, offer []game.RewardKind) game.RewardKind
}

// Greedy drinks a potion when low, spends resource whenever it can and
// never runs away.
type Greedy struct {
	PotionBelow float64           // HP fraction under which a potion is drunk
	RestBelow   float64           // HP fraction under which Rest beats any upgrade
	Priority    []game.RewardKind // Reward preference, best first
}

// DefaultPolicy returns the policy used by the simulator CLI.
func DefaultPolicy() Greedy {
	return Greedy{
		PotionBelow: 0.3,
		RestBelow:   0.5,
		Priority: []game.RewardKind{
			game.RewardAttack,
			game.RewardMaxHP,
			game.RewardDefense,
			game.RewardItem,
			game.RewardHeal,
			game.RewardMaxResource,
		},
	}
}

// Action implements Policy.
func (p Greedy) Action(b *game.Battle) game.Action {
	h := b.Hero
	if below(h.HP, h.MaxHP, p.PotionBelow) && h.Inventory.Count(gamedata.HealthPotionID) > 0 {
		return game.ActionItem
	}
	if combat.CanUseSkill(h, h.Skill().Cost) {
		return game.ActionSkill
	}
	return game.ActionAttack
}

// Reward implements Policy.
func (p Greedy) Reward(hero *entity.Hero, offer []game.RewardKind) game.RewardKind {
	if below(hero.HP, hero.MaxHP, p.RestBelow) && slices.Contains(offer, game.RewardHeal) {
		return game.RewardHeal
	}
	for _, kind := range p.Priority {
		if slices.Contains(offer, kind) {
			return kind
		}
	}
	return offer[0]
}

func below(cur, maxValue int, fraction float64) bool {
	return maxValue > 0 && float64(cur) < float64(maxValue)*fraction
}
