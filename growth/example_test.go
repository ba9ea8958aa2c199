// Package growth_test provides a runnable example of a minimal growth
// run, stopped right after the two seed highways are accepted.
package growth_test

import (
	"fmt"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/growth"
)

// ExampleGenerate runs the simulation with the segment budget capped at
// the two seed highways, which are deterministic regardless of seed: two
// opposite 400-unit highways radiating from the origin.
func ExampleGenerate() {
	cfg := genconfig.New(
		genconfig.WithSeed(42),
		genconfig.WithSegmentCountLimit(2),
	)

	result := growth.Generate(cfg)

	for _, seg := range result.Store.All() {
		fmt.Printf("%d: (%.0f,%.0f)->(%.0f,%.0f) highway=%v\n",
			seg.ID,
			seg.Road.Start.X, seg.Road.Start.Y,
			seg.Road.End.X, seg.Road.End.Y,
			seg.Q.IsHighway(),
		)
	}
	// Output:
	// 1: (0,0)->(400,0) highway=true
	// 2: (0,0)->(-400,0) highway=true
}
