package gamedata

// FoeDef defines an enemy or a boss loaded from JSON.
type FoeDef struct {
	ID         string   `json:"id"`    // Unique identifier (e.g., "goblin")
	Names      Names    `json:"names"` // Display names per locale
	Base       Stats    `json:"base"`
	Skill      SkillDef `json:"skill"`
	XPReward   int      `json:"xpReward"`   // Experience granted on victory
	GoldReward int      `json:"goldReward"` // Gold granted on victory

	// Boss is set from the table the definition was loaded from, not from JSON.
	Boss bool `json:"-"`
}

// FoesFile represents the structure of foes.json.
type FoesFile struct {
	Enemies []FoeDef `json:"enemies"`
	Bosses  []FoeDef `json:"bosses"`
}

// LoadFoes loads the ordinary enemy and boss tables from the embedded foes.json file.
func LoadFoes() (enemies, bosses []FoeDef, err error) {
	file, err := Load[FoesFile]("foes.json")
	if err != nil {
		return nil, nil, err
	}
	return file.Enemies, file.Bosses, nil
}
