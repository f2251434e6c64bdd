// Package rng provides the per-worker uniform random source (C1).
// The teacher calls the global math/rand functions directly from
// worker goroutines (internal/model/model.go, internal/model/particle.go),
// which is not bitwise-reproducible across worker counts. Per spec.md
// §5 ("per-worker RNG seeded deterministically from a call-level seed
// and the electron index") and §9 ("replace with a splittable or
// counter-based RNG seeded per-call, per-electron for determinism"),
// each worker here owns a private *rand.Rand, and each electron's
// trajectory is seeded from (callSeed, electronIndex) alone so the
// result does not depend on which worker happened to process it.
package rng

import (
	"math/rand"
)

// splitmix64GoldenRatio is the splitmix64 golden-ratio mixing constant
// 0x9E3779B97F4A7C15, stored as a var (not a const) because its bit
// pattern exceeds int64's range as a signed constant expression.
var splitmix64GoldenRatio uint64 = 0x9E3779B97F4A7C15

// Source is a per-electron uniform[0,1) generator. It is NOT safe for
// concurrent use — one Source belongs to exactly one electron's
// trajectory for the duration of one Simulate call.
type Source struct {
	r *rand.Rand
}

// ForElectron returns the deterministic per-electron RNG for a given
// call-level seed and electron index.
func ForElectron(callSeed int64, electronIndex int) *Source {
	// Mix the electron index into the seed with a fixed odd multiplier
	// (splitmix-style constant) so neighbouring indices do not produce
	// correlated low-order seed bits.
	mixed := callSeed ^ (int64(electronIndex)*int64(splitmix64GoldenRatio) + 0x1) //nolint:gomnd
	return &Source{r: rand.New(rand.NewSource(mixed))}
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a uniform draw in [low, high).
func (s *Source) Uniform(low, high float64) float64 {
	return low + (high-low)*s.r.Float64()
}
