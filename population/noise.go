package population

import "math"

// NoiseSource produces a raw noise sample at (u,v), nominally in [-1,1].
// Implementations need not be smooth across large coordinate ranges, but
// must be deterministic: the same source called with the same (u,v) must
// always return the same value.
type NoiseSource interface {
	Noise(u, v float64) float64
}

// valueNoise is a seeded, deterministic gradient-free value-noise source:
// it hashes the four integer lattice points surrounding (u,v) into
// pseudo-random values in [-1,1] and bilinearly interpolates between them
// with a smoothstep easing curve. It needs no external noise library and
// produces bit-identical output for a fixed seed across runs.
type valueNoise struct {
	seed int64
}

// NewValueNoise returns the default NoiseSource, seeded by seed.
func NewValueNoise(seed int64) NoiseSource {
	return &valueNoise{seed: seed}
}

func (n *valueNoise) Noise(u, v float64) float64 {
	x0, y0 := math.Floor(u), math.Floor(v)
	x1, y1 := x0+1, y0+1

	fx, fy := u-x0, v-y0
	sx := smoothstep(fx)
	sy := smoothstep(fy)

	n00 := n.lattice(x0, y0)
	n10 := n.lattice(x1, y0)
	n01 := n.lattice(x0, y1)
	n11 := n.lattice(x1, y1)

	ix0 := lerp(n00, n10, sx)
	ix1 := lerp(n01, n11, sx)
	return lerp(ix0, ix1, sy)
}

// lattice hashes an integer lattice point (plus the source's seed) into a
// deterministic pseudo-random value in [-1,1] using a fixed-point integer
// mix, avoiding any dependency on math/rand's stream state.
func (n *valueNoise) lattice(x, y float64) float64 {
	ix := int64(x)
	iy := int64(y)

	h := ix*374761393 + iy*668265263 + n.seed*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)

	// Map the low 24 bits to [0,1) then to [-1,1).
	frac := float64(h&0xFFFFFF) / float64(0x1000000)
	return frac*2 - 1
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
