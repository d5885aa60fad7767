package game

import "testing"

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlayerTurn, "player_turn"},
		{PhaseResolving, "resolving"},
		{PhaseEnemyTurn, "enemy_turn"},
		{PhaseEnded, "ended"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeVictory, "victory"},
		{OutcomeDefeat, "defeat"},
		{OutcomeFled, "fled"},
		{Outcome(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	want := map[Action]string{
		ActionAttack: "attack",
		ActionDefend: "defend",
		ActionSkill:  "skill",
		ActionFlee:   "flee",
		ActionItem:   "item",
		Action(-1):   "unknown",
	}
	for action, expected := range want {
		if got := action.String(); got != expected {
			t.Errorf("Action(%d).String() = %q, want %q", action, got, expected)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 5; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("Same seed should give the same sequence")
		}
	}
	if NewRand(0) == nil {
		t.Fatal("Seed 0 should still return a source")
	}
}
