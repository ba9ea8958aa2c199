package genconfig

import "errors"

// ErrBadSegmentCountLimit indicates a non-positive SegmentCountLimit was
// supplied to WithSegmentCountLimit.
var ErrBadSegmentCountLimit = errors.New("genconfig: segment count limit must be positive")

// Config holds every tunable constant governing network generation.
// Zero-value Config is not meaningful on its own — always start from
// DefaultConfig().
type Config struct {
	HighwaySegmentWidth  float64
	DefaultSegmentWidth  float64
	HighwaySegmentLength float64
	DefaultSegmentLength float64

	HighwayBranchPopulationThreshold float64
	NormalBranchPopulationThreshold  float64
	HighwayBranchProbability         float64
	DefaultBranchProbability         float64
	NormalBranchTimeDelayFromHighway float64

	MinimumIntersectionDeviation float64
	RoadSnapDistance             float64

	SegmentCountLimit int

	BranchAngleDeviation  float64
	ForwardAngleDeviation float64

	// Seed drives both the deterministic RNG (branch angles, branch
	// probabilities) and the default population noise source, so that a
	// fixed Seed reproduces a fixed road network end to end.
	Seed int64
}

// DefaultConfig returns the stock generation constants, with Seed 42
// pinned for reproducible output.
func DefaultConfig() Config {
	return Config{
		HighwaySegmentWidth:  16,
		DefaultSegmentWidth:  6,
		HighwaySegmentLength: 400,
		DefaultSegmentLength: 300,

		HighwayBranchPopulationThreshold: 0.1,
		NormalBranchPopulationThreshold:  0.1,
		HighwayBranchProbability:         0.05,
		DefaultBranchProbability:         0.4,
		NormalBranchTimeDelayFromHighway: 5,

		MinimumIntersectionDeviation: 30,
		RoadSnapDistance:             50,

		SegmentCountLimit: 200,

		BranchAngleDeviation:  3,
		ForwardAngleDeviation: 15,

		Seed: 42,
	}
}

// Option customizes a Config produced by New.
type Option func(*Config)

// New returns DefaultConfig with each opt applied in order; later options
// override earlier ones.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed overrides the RNG/noise seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithSegmentCountLimit overrides the growth loop's termination count.
// The returned Option panics on a non-positive limit when applied; it is
// the only option in this package that validates its argument.
func WithSegmentCountLimit(limit int) Option {
	return func(c *Config) {
		if limit <= 0 {
			panic(ErrBadSegmentCountLimit.Error())
		}
		c.SegmentCountLimit = limit
	}
}

// WithRoadSnapDistance overrides the end-snap/line-snap radius.
func WithRoadSnapDistance(d float64) Option {
	return func(c *Config) { c.RoadSnapDistance = d }
}

// WithMinimumIntersectionDeviation overrides the angle-gate threshold used
// by both intersection and snap acceptance.
func WithMinimumIntersectionDeviation(deg float64) Option {
	return func(c *Config) { c.MinimumIntersectionDeviation = deg }
}
