package game

import (
	"fmt"

	"github.com/samdwyer/pathofheroes/internal/entity"
	"github.com/samdwyer/pathofheroes/internal/gamedata"
	"github.com/samdwyer/pathofheroes/internal/locale"
)

// RewardOfferSize is how many distinct rewards are offered after a victory.
const RewardOfferSize = 3

const (
	rewardHealFraction = 2  // Rest heals maxHP / 2
	rewardStatBoost    = 2  // Attack and defense gain
	rewardPoolBoost    = 10 // Max HP and max resource gain
)

// RewardKind is one permanent upgrade the hero can pick between floors.
type RewardKind int

const (
	RewardHeal RewardKind = iota
	RewardAttack
	RewardDefense
	RewardMaxHP
	RewardMaxResource
	RewardItem
)

// String returns the reward identifier.
func (k RewardKind) String() string {
	switch k {
	case RewardHeal:
		return "heal"
	case RewardAttack:
		return "attack"
	case RewardDefense:
		return "defense"
	case RewardMaxHP:
		return "max_hp"
	case RewardMaxResource:
		return "max_resource"
	case RewardItem:
		return "item"
	default:
		return "unknown"
	}
}

// Label returns the display string key for the reward.
func (k RewardKind) Label() locale.Key {
	switch k {
	case RewardHeal:
		return locale.RewardHeal
	case RewardAttack:
		return locale.RewardAtk
	case RewardDefense:
		return locale.RewardDef
	case RewardMaxHP:
		return locale.RewardMaxHP
	case RewardMaxResource:
		return locale.RewardMaxRes
	default:
		return locale.RewardItem
	}
}

// RewardCatalog returns every reward kind in a fresh slice.
func RewardCatalog() []RewardKind {
	return []RewardKind{RewardHeal, RewardAttack, RewardDefense, RewardMaxHP, RewardMaxResource, RewardItem}
}

// OfferRewards shuffles the catalog uniformly and returns the first RewardOfferSize kinds.
func OfferRewards(rng Rand) []RewardKind {
	catalog := RewardCatalog()
	rng.Shuffle(len(catalog), func(i, j int) {
		catalog[i], catalog[j] = catalog[j], catalog[i]
	})
	return catalog[:RewardOfferSize]
}

// ApplyReward mutates hero with the chosen reward.
func ApplyReward(hero *entity.Hero, kind RewardKind, items *gamedata.ItemRegistry) error {
	switch kind {
	case RewardHeal:
		hero.Heal(hero.MaxHP / rewardHealFraction)
	case RewardAttack:
		hero.RaiseAttack(rewardStatBoost)
	case RewardDefense:
		hero.RaiseDefense(rewardStatBoost)
	case RewardMaxHP:
		hero.RaiseMaxHP(rewardPoolBoost)
	case RewardMaxResource:
		hero.RaiseMaxResource(rewardPoolBoost)
	case RewardItem:
		potion, err := items.Get(gamedata.HealthPotionID)
		if err != nil {
			return err
		}
		hero.Inventory.Add(potion, 1)
	default:
		return fmt.Errorf("reward %d: %w", kind, ErrUnknownReward)
	}
	return nil
}
