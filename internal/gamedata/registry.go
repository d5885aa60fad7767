package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownID is returned when a referenced class, foe or item is missing from its table.
var ErrUnknownID = errors.New("unknown id")

// Intner is the slice of *rand.Rand the registries need for random picks.
type Intner interface {
	Intn(n int) int
}

// =============================================================================
// ClassRegistry
// =============================================================================

// ClassRegistry holds loaded class definitions in file order.
type ClassRegistry struct {
	classes []ClassDef
	byID    map[string]*ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	r := &ClassRegistry{classes: classes, byID: make(map[string]*ClassDef, len(classes))}
	for i := range classes {
		r.byID[classes[i].ID] = &classes[i]
	}
	return r
}

// Get returns the class definition with the given ID.
func (r *ClassRegistry) Get(id string) (*ClassDef, error) {
	if def := r.byID[id]; def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("class %q: %w", id, ErrUnknownID)
}

// All returns all class definitions in selection order.
func (r *ClassRegistry) All() []ClassDef {
	return r.classes
}

// IDs returns the class IDs in selection order.
func (r *ClassRegistry) IDs() []string {
	ids := make([]string, len(r.classes))
	for i := range r.classes {
		ids[i] = r.classes[i].ID
	}
	return ids
}

// =============================================================================
// FoeRegistry
// =============================================================================

// FoeRegistry holds the ordinary enemy and boss tables.
type FoeRegistry struct {
	enemies []FoeDef
	bosses  []FoeDef
}

// NewFoeRegistry creates a registry from the two foe tables.
// Every definition in bosses is marked as a boss.
func NewFoeRegistry(enemies, bosses []FoeDef) *FoeRegistry {
	for i := range bosses {
		bosses[i].Boss = true
	}
	return &FoeRegistry{enemies: enemies, bosses: bosses}
}

// IsBossFloor reports whether floor spawns from the boss table.
func IsBossFloor(floor, bossInterval int) bool {
	return floor > 0 && bossInterval > 0 && floor%bossInterval == 0
}

// SpawnForFloor picks a foe uniformly at random from the boss table on boss
// floors and from the ordinary table otherwise.
func (r *FoeRegistry) SpawnForFloor(floor, bossInterval int, rng Intner) (*FoeDef, error) {
	table, name := r.enemies, "enemies"
	if IsBossFloor(floor, bossInterval) {
		table, name = r.bosses, "bosses"
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("no %s to spawn on floor %d", name, floor)
	}
	return &table[rng.Intn(len(table))], nil
}

// Get returns the foe definition with the given ID from either table.
func (r *FoeRegistry) Get(id string) (*FoeDef, error) {
	for _, table := range [][]FoeDef{r.enemies, r.bosses} {
		for i := range table {
			if table[i].ID == id {
				return &table[i], nil
			}
		}
	}
	return nil, fmt.Errorf("foe %q: %w", id, ErrUnknownID)
}

// Enemies returns the ordinary foe table.
func (r *FoeRegistry) Enemies() []FoeDef {
	return r.enemies
}

// Bosses returns the boss table.
func (r *FoeRegistry) Bosses() []FoeDef {
	return r.bosses
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds item definitions and the starting item set.
type ItemRegistry struct {
	byID     map[string]*ItemDef
	starting []string
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef, starting []string) *ItemRegistry {
	r := &ItemRegistry{byID: make(map[string]*ItemDef, len(items)), starting: starting}
	for i := range items {
		r.byID[items[i].ID] = &items[i]
	}
	return r
}

// Get returns the item definition with the given ID.
func (r *ItemRegistry) Get(id string) (*ItemDef, error) {
	if def := r.byID[id]; def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("item %q: %w", id, ErrUnknownID)
}

// Starting returns the item IDs a hero begins each run with.
func (r *ItemRegistry) Starting() []string {
	return r.starting
}

// =============================================================================
// Tables
// =============================================================================

// Tables bundles every static table the game reads.
type Tables struct {
	Classes *ClassRegistry
	Foes    *FoeRegistry
	Items   *ItemRegistry
}

// LoadTables loads all embedded tables and checks their cross references.
func LoadTables() (*Tables, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	enemies, bosses, err := LoadFoes()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 || len(bosses) == 0 {
		return nil, errors.New("foes.json needs at least one enemy and one boss")
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}

	t := &Tables{
		Classes: NewClassRegistry(classes),
		Foes:    NewFoeRegistry(enemies, bosses),
		Items:   NewItemRegistry(items.Items, items.StartingItems),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustLoadTables loads all tables, panicking on error.
func MustLoadTables() *Tables {
	t, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that every referenced item exists and that the
// reward item is defined.
func (t *Tables) Validate() error {
	for _, id := range t.Items.Starting() {
		if _, err := t.Items.Get(id); err != nil {
			return fmt.Errorf("starting items: %w", err)
		}
	}
	if _, err := t.Items.Get(HealthPotionID); err != nil {
		return fmt.Errorf("reward item: %w", err)
	}
	for _, c := range t.Classes.All() {
		if c.Base.HP <= 0 {
			return fmt.Errorf("class %q has non-positive hp", c.ID)
		}
	}
	return nil
}
