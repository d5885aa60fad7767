package game

import (
	"math/rand"
	"time"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Lang is the preferred display language ("en", "ar", or a POSIX locale).
	Lang string

	// TuningPath overrides the embedded tuning.yaml when set.
	TuningPath string

	// Pacing is the pause between the hero's action and the foe's reply.
	// It only affects presentation.
	Pacing time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Seed:   0,
		Lang:   "en",
		Pacing: time.Second,
	}
}

// Rand is the random source the game draws from: foe selection, flee and
// foe skill rolls, and reward shuffles. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source; seed 0 uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
