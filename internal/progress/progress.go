// Package progress holds the player records that outlive a single run:
// gold and per-class hero progress.
package progress

import (
	"math"

	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

// HeroProgress is the persistent level state of one hero class.
type HeroProgress struct {
	Level         int `json:"level"`         // Current level, at least 1
	XP            int `json:"xp"`            // XP toward the next level, never negative
	XPToNextLevel int `json:"xpToNextLevel"` // Threshold for the next level, always positive
}

// NewHeroProgress returns level 1 progress with the given first threshold.
func NewHeroProgress(baseXPToLevel int) *HeroProgress {
	return &HeroProgress{Level: 1, XP: 0, XPToNextLevel: baseXPToLevel}
}

// GainXP adds xp and applies every level-up it pays for.
//
// Each level consumes exactly XPToNextLevel and carries the remainder forward,
// and the threshold grows by multiplier (floored) after every level. It returns
// the number of levels gained.
func (p *HeroProgress) GainXP(xp int, multiplier float64) int {
	if xp > 0 {
		p.XP += xp
	}

	levels := 0
	for p.XPToNextLevel > 0 && p.XP >= p.XPToNextLevel {
		p.Level++
		p.XP -= p.XPToNextLevel
		p.XPToNextLevel = max(floorf(float64(p.XPToNextLevel)*multiplier), 1)
		levels++
	}
	return levels
}

// PlayerSave is the process-wide player record: gold plus progress per class.
type PlayerSave struct {
	Gold   int                      `json:"gold"`
	Heroes map[string]*HeroProgress `json:"heroes"`
}

// NewPlayerSave creates a save with level 1 progress for every class.
func NewPlayerSave(classes *gamedata.ClassRegistry, baseXPToLevel int) *PlayerSave {
	s := &PlayerSave{Heroes: make(map[string]*HeroProgress)}
	for _, id := range classes.IDs() {
		s.Heroes[id] = NewHeroProgress(baseXPToLevel)
	}
	return s
}

// Hero returns the progress for classID, creating level 1 progress on first use.
func (s *PlayerSave) Hero(classID string, baseXPToLevel int) *HeroProgress {
	if s.Heroes == nil {
		s.Heroes = make(map[string]*HeroProgress)
	}
	p, ok := s.Heroes[classID]
	if !ok {
		p = NewHeroProgress(baseXPToLevel)
		s.Heroes[classID] = p
	}
	return p
}

// AddGold adds a non-negative amount of gold.
func (s *PlayerSave) AddGold(amount int) {
	if amount > 0 {
		s.Gold += amount
	}
}

// ApplyDeathPenalty removes lossPercent of the gold, rounding the remainder down.
// It returns the amount lost.
func (s *PlayerSave) ApplyDeathPenalty(lossPercent float64) int {
	kept := max(0, min(floorf(float64(s.Gold)*(1-lossPercent)), s.Gold))
	lost := s.Gold - kept
	s.Gold = kept
	return lost
}

// floorf rounds down, absorbing binary representation error so that
// 100 * (1 - 0.9) is 10 rather than 9.
func floorf(x float64) int {
	return int(math.Floor(x + 1e-9))
}
