package branch

import (
	"math"
	"math/rand"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/geomath"
)

// Kind selects which deviation limit RandomAngle draws from.
type Kind int

const (
	// Branch uses the tighter deviation limit for side branches.
	Branch Kind = iota
	// Forward uses the wider deviation limit for randomized continuations.
	Forward
)

// RandomAngle draws a peaked-at-zero random deviation in (-limit, limit)
// via rejection sampling: repeatedly sample v uniformly in (-limit, limit)
// until v is nonzero and an independent uniform draw clears the cubic
// falloff |v|^3/limit^3, which concentrates accepted samples near zero.
func RandomAngle(rng *rand.Rand, kind Kind, cfg genconfig.Config) float64 {
	limit := cfg.BranchAngleDeviation
	if kind == Forward {
		limit = cfg.ForwardAngleDeviation
	}

	for {
		v := geomath.RandomRange(rng, -limit, limit)
		if v == 0 {
			continue
		}
		if rng.Float64() >= math.Pow(math.Abs(v), 3)/math.Pow(limit, 3) {
			return v
		}
	}
}
