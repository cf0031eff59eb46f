package farseer

import (
	"math/rand"
)

/// A seedable pseudo-random source for scenario and test-harness
/// randomization. The physics core itself never draws from it; callers
/// construct one explicitly so simulations stay reproducible.
type Rand struct {
	rng *rand.Rand
}

func MakeRand(seed int64) Rand {
	return Rand{
		rng: rand.New(rand.NewSource(seed)),
	}
}

/// Random number in range [lo, hi)
func (r Rand) Float(lo, hi float64) float64 {
	return lo + (hi-lo)*r.rng.Float64()
}

/// Random vector with each component in range [lo, hi)
func (r Rand) Vec2(lo, hi float64) Vec2 {
	return MakeVec2(r.Float(lo, hi), r.Float(lo, hi))
}
