package gamedata

// ClassDef defines a playable hero class loaded from JSON.
type ClassDef struct {
	ID            string   `json:"id"`            // Unique identifier (e.g., "warrior")
	Names         Names    `json:"names"`         // Display names per locale
	Resource      string   `json:"resource"`      // Resource pool name (e.g., "Vigor")
	ResourceColor string   `json:"resourceColor"` // Hex color for the resource bar (e.g., "0xf1c40f")
	Base          Stats    `json:"base"`
	Growth        Growth   `json:"growth"`
	Skill         SkillDef `json:"skill"`
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadClasses loads class definitions, panicking on error.
func MustLoadClasses() []ClassDef {
	classes, err := LoadClasses()
	if err != nil {
		panic(err)
	}
	return classes
}
