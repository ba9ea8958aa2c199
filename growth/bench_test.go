// Package growth_test provides an end-to-end benchmark of a full
// generation run at the stock segment budget.
package growth_test

import (
	"testing"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/growth"
)

// benchSinkResult keeps the run's output live so the compiler cannot
// discard the calls under measurement.
var benchSinkResult growth.Result

// BenchmarkGenerate measures a complete run: queue scheduling, constraint
// resolution against the quadtree, link fix-up, and branch generation for
// every accepted segment up to the count limit.
func BenchmarkGenerate(b *testing.B) {
	cfg := genconfig.New(genconfig.WithSeed(42))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkResult = growth.Generate(cfg)
	}
}
