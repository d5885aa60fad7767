package combat

import "testing"

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	id               string
	hp, maxHP        int
	resource, maxRes int
	attack, defense  int
}

func newMockCombatant(id string, hp, resource, attack, defense int) *mockCombatant {
	return &mockCombatant{
		id:       id,
		hp:       hp,
		maxHP:    hp,
		resource: resource,
		maxRes:   resource,
		attack:   attack,
		defense:  defense,
	}
}

func (m *mockCombatant) ID() string          { return m.id }
func (m *mockCombatant) IsAlive() bool       { return m.hp > 0 }
func (m *mockCombatant) GetHP() int          { return m.hp }
func (m *mockCombatant) GetMaxHP() int       { return m.maxHP }
func (m *mockCombatant) GetResource() int    { return m.resource }
func (m *mockCombatant) GetMaxResource() int { return m.maxRes }
func (m *mockCombatant) GetAttack() int      { return m.attack }
func (m *mockCombatant) GetDefense() int     { return m.defense }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.hp)
	m.hp -= actual
	return actual
}

func (m *mockCombatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.maxHP-m.hp)
	m.hp += actual
	return actual
}

func (m *mockCombatant) SpendResource(amount int) bool {
	if m.resource < amount {
		return false
	}
	m.resource -= amount
	return true
}

func (m *mockCombatant) RestoreResource(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.maxRes-m.resource)
	m.resource += actual
	return actual
}

func TestComputeDamage(t *testing.T) {
	tests := []struct {
		name    string
		attack  int
		defense int
		skill   bool
		want    int
	}{
		{"basic", 14, 6, false, 8},
		{"basic equal", 10, 10, false, 1},
		{"basic overwhelmed", 2, 50, false, 1},
		{"skill halves defense", 14, 6, true, 11},
		{"skill odd defense rounds down", 14, 5, true, 12},
		{"skill overwhelmed", 3, 40, true, 1},
		{"zero defense", 9, 0, false, 9},
		{"zero attack", 0, 0, false, 1},
	}

	for _, tt := range tests {
		if got := ComputeDamage(tt.attack, tt.defense, tt.skill); got != tt.want {
			t.Errorf("%s: ComputeDamage(%d, %d, %v) = %d, want %d",
				tt.name, tt.attack, tt.defense, tt.skill, got, tt.want)
		}
	}
}

func TestComputeDamageProperty(t *testing.T) {
	for a := 0; a <= 60; a++ {
		for d := 0; d <= 60; d++ {
			if got, want := ComputeDamage(a, d, false), max(1, a-d); got != want {
				t.Fatalf("ComputeDamage(%d, %d, false) = %d, want %d", a, d, got, want)
			}
			if got, want := ComputeDamage(a, d, true), max(1, a-d/2); got != want {
				t.Fatalf("ComputeDamage(%d, %d, true) = %d, want %d", a, d, got, want)
			}
		}
	}
}

func TestStrikeBasic(t *testing.T) {
	hero := newMockCombatant("warrior", 120, 60, 14, 10)
	goblin := newMockCombatant("goblin", 60, 20, 18, 6)

	result := Strike(hero, goblin, false, false, 2)

	if result.Computed != 8 || result.Dealt != 8 {
		t.Errorf("Expected 8 damage, got computed=%d dealt=%d", result.Computed, result.Dealt)
	}
	if goblin.GetHP() != 52 || result.DefenderHP != 52 {
		t.Errorf("Expected goblin HP 52, got %d (result %d)", goblin.GetHP(), result.DefenderHP)
	}
	if result.Skill || result.Defended {
		t.Errorf("Unexpected flags: %+v", result)
	}
}

func TestStrikeDefendingHalves(t *testing.T) {
	// 18 attack against 8 defense computes to 10, halved to 5.
	goblin := newMockCombatant("goblin", 60, 20, 18, 6)
	hero := newMockCombatant("warrior", 120, 60, 14, 8)

	result := Strike(goblin, hero, false, true, 2)

	if result.Computed != 10 {
		t.Errorf("Expected computed damage 10, got %d", result.Computed)
	}
	if result.Dealt != 5 {
		t.Errorf("Expected 5 damage while defending, got %d", result.Dealt)
	}
	if hero.GetHP() != 115 {
		t.Errorf("Expected hero HP 115, got %d", hero.GetHP())
	}
}

func TestStrikeDefendingOddDamage(t *testing.T) {
	// Computed 1 halves to 0.
	attacker := newMockCombatant("weak", 10, 0, 1, 0)
	defender := newMockCombatant("tank", 50, 0, 0, 20)

	result := Strike(attacker, defender, false, true, 2)
	if result.Computed != 1 || result.Dealt != 0 {
		t.Errorf("Expected computed 1, dealt 0; got %+v", result)
	}
}

func TestStrikeClampsAtZero(t *testing.T) {
	boss := newMockCombatant("orc_warlord", 250, 100, 100, 15)
	hero := newMockCombatant("sorceress", 30, 100, 18, 6)

	result := Strike(boss, hero, true, false, 2)

	if hero.GetHP() != 0 {
		t.Errorf("Expected hero HP clamped to 0, got %d", hero.GetHP())
	}
	if result.Dealt != 30 {
		t.Errorf("Expected 30 damage dealt (remaining HP), got %d", result.Dealt)
	}
	if hero.IsAlive() {
		t.Error("Hero should be dead")
	}
}

func TestCanUseSkill(t *testing.T) {
	hero := newMockCombatant("warrior", 120, 10, 14, 10)
	if CanUseSkill(hero, 20) {
		t.Error("CanUseSkill should be false with 10 resource and cost 20")
	}
	if !CanUseSkill(hero, 10) {
		t.Error("CanUseSkill should be true with exactly enough resource")
	}
}
