package population

import "github.com/keremnymn/citygen/roadnet"

// Field composes a NoiseSource into the three-octave population density
// used to gate branch generation.
type Field struct {
	source NoiseSource
}

// NewField returns a Field backed by source.
func NewField(source NoiseSource) *Field {
	return &Field{source: source}
}

// NewDefaultField returns a Field backed by the default deterministic
// value-noise source, seeded by seed.
func NewDefaultField(seed int64) *Field {
	return &Field{source: NewValueNoise(seed)}
}

func (f *Field) sample(u, v float64) float64 {
	return (f.source.Noise(u, v) + 1) / 2
}

// At returns the population density at (x,y), a value in [0,1] composed
// from three octaves of the underlying noise source at increasing spatial
// scales and offsets.
func (f *Field) At(x, y float64) float64 {
	v1 := f.sample(x/10000, y/10000)
	v2 := f.sample(x/20000+500, y/20000+500)
	v3 := f.sample(x/20000+1000, y/20000+1000)

	combined := (v1*v2 + v3) / 2
	return combined * combined
}

// AtPoint is At for a geomath/roadnet Point.
func (f *Field) AtPoint(p roadnet.Point) float64 {
	return f.At(p.X, p.Y)
}

// PopOnRoad returns the average population density across r's two
// endpoints.
func (f *Field) PopOnRoad(r roadnet.Road) float64 {
	return (f.AtPoint(r.Start) + f.AtPoint(r.End)) / 2
}
