package geomath

import "math/rand"

// RandomRange draws a uniform float64 in [min, max) from rng. The caller
// owns rng's seed, so two runs seeded identically produce identical
// sequences — required by the engine's determinism guarantee.
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
