package gamedata

// DefaultLang is the locale used when a display name has no entry for the requested one.
const DefaultLang = "en"

// Names holds display names keyed by locale tag (e.g., "en", "ar").
type Names map[string]string

// In returns the name for lang, falling back to English, then to any name present.
func (n Names) In(lang string) string {
	if name, ok := n[lang]; ok && name != "" {
		return name
	}
	if name, ok := n[DefaultLang]; ok {
		return name
	}
	for _, name := range n {
		return name
	}
	return ""
}

// Stats are the base combat numbers shared by class and foe definitions.
type Stats struct {
	HP       int `json:"hp"`       // Maximum hit points
	Resource int `json:"resource"` // Skill pool size (Vigor, Mana, Energy...)
	Attack   int `json:"attack"`
	Defense  int `json:"defense"`
}

// Growth is the stat increase granted for each level above 1.
type Growth struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// SkillDef describes the single skill a class or foe can use.
type SkillDef struct {
	Name string `json:"name"`
	Cost int    `json:"cost"` // Resource spent per use
	// DamageMultiplier is carried for display; damage resolution does not apply it.
	DamageMultiplier float64 `json:"damageMultiplier"`
}
