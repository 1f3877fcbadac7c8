package game

import (
	"math/rand"
)

// Rand is the subset of *rand.Rand the simulation draws from. Every random
// decision goes through one injected source so a seed reproduces a run.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source for a run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness only
}

// uniform draws from [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// chance reports true with probability p.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
