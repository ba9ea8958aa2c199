package growth_test

import (
	"testing"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/growth"
	"github.com/keremnymn/citygen/roadnet"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeedsTwoOppositeHighways(t *testing.T) {
	cfg := genconfig.New(genconfig.WithSeed(42), genconfig.WithSegmentCountLimit(2))

	result := growth.Generate(cfg)

	root, ok := result.Store.Get(1)
	require.True(t, ok)
	require.Equal(t, roadnet.Road{Start: roadnet.Point{X: 0, Y: 0}, End: roadnet.Point{X: 400, Y: 0}}, root.Road)
	require.True(t, root.Q.IsHighway())
	require.False(t, root.Q.Severed)

	opposite, ok := result.Store.Get(2)
	require.True(t, ok)
	require.Equal(t, roadnet.Road{Start: roadnet.Point{X: 0, Y: 0}, End: roadnet.Point{X: -400, Y: 0}}, opposite.Road)
	require.True(t, opposite.Q.IsHighway())

	require.Contains(t, root.Links.B, opposite.ID)
	require.Contains(t, opposite.Links.B, root.ID)
}

func TestGenerateRespectsSegmentCountLimit(t *testing.T) {
	cfg := genconfig.New(genconfig.WithSeed(42), genconfig.WithSegmentCountLimit(200))

	result := growth.Generate(cfg)

	require.LessOrEqual(t, result.Store.Len(), cfg.SegmentCountLimit)
	// The angle gate can in principle drain the queue before the limit is
	// reached, so termination below SegmentCountLimit is valid; a result
	// larger than the two seed highways confirms the loop grew past them.
	require.Greater(t, result.Store.Len(), 2)
}

func TestGenerateAcceptedSegmentsAreIndexedInQuadtree(t *testing.T) {
	cfg := genconfig.New(genconfig.WithSeed(42), genconfig.WithSegmentCountLimit(50))

	result := growth.Generate(cfg)

	for _, seg := range result.Store.All() {
		matches := result.Tree.Retrieve(seg.Collider.Limits())
		found := false
		for _, m := range matches {
			if m.HasID && m.ID == seg.ID {
				found = true
				break
			}
		}
		require.True(t, found, "segment %d missing from quadtree retrieval", seg.ID)
	}
}

func TestGenerateLinksAreMutual(t *testing.T) {
	cfg := genconfig.New(genconfig.WithSeed(7), genconfig.WithSegmentCountLimit(60))

	result := growth.Generate(cfg)

	for _, seg := range result.Store.All() {
		for _, j := range seg.Links.B {
			neighbor, ok := result.Store.Get(j)
			require.True(t, ok)
			require.True(t, contains(neighbor.Links.B, seg.ID) || contains(neighbor.Links.F, seg.ID))
		}
		for _, j := range seg.Links.F {
			neighbor, ok := result.Store.Get(j)
			require.True(t, ok)
			require.True(t, contains(neighbor.Links.B, seg.ID) || contains(neighbor.Links.F, seg.ID))
		}
	}
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
