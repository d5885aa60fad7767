package gamedata

// EffectKind identifies what an item does when used.
type EffectKind string

const (
	// EffectHealPercent restores Value (0..1) of the user's maximum HP.
	EffectHealPercent EffectKind = "heal_hp_percent"
)

// HealthPotionID is the item granted at run start and by the item reward.
const HealthPotionID = "hp_potion"

// ItemDef defines a consumable item loaded from JSON.
type ItemDef struct {
	ID     string     `json:"id"`
	Names  Names      `json:"names"`
	Effect EffectKind `json:"effect"`
	Value  float64    `json:"value"`
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items         []ItemDef `json:"items"`
	StartingItems []string  `json:"startingItems"` // Item IDs every hero starts a run with
}

// LoadItems loads item definitions and the starting item set from items.json.
func LoadItems() (ItemsFile, error) {
	return Load[ItemsFile]("items.json")
}
