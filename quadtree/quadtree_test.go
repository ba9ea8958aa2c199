package quadtree_test

import (
	"testing"

	"github.com/keremnymn/citygen/collision"
	"github.com/keremnymn/citygen/quadtree"
	"github.com/stretchr/testify/require"
)

func withID(l collision.Limits, id int) collision.Limits {
	l.ID = id
	l.HasID = true
	return l
}

// quadrantTree returns a root over the standard bounds that splits as
// soon as a fourth box arrives, so four corner boxes end up one per
// child rather than pooled unfiltered at the root.
func quadrantTree() *quadtree.Node {
	return quadtree.NewWithLimits(quadtree.RootBounds, 3, quadtree.DefaultMaxLevels)
}

func TestRetrieveWithinOneQuadrant(t *testing.T) {
	root := quadrantTree()

	boxes := []collision.Limits{
		{X: -10000, Y: -10000, Width: 1, Height: 1},
		{X: 10000, Y: -10000, Width: 1, Height: 1},
		{X: -10000, Y: 10000, Width: 1, Height: 1},
		{X: 10000, Y: 10000, Width: 1, Height: 1},
	}
	for i, b := range boxes {
		root.Insert(withID(b, i+1))
	}

	got := root.Retrieve(collision.Limits{X: -10000, Y: -10000, Width: 1, Height: 1})
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].ID)
}

func TestRetrieveStraddlingRootReturnsAll(t *testing.T) {
	root := quadrantTree()

	boxes := []collision.Limits{
		{X: -10000, Y: -10000, Width: 1, Height: 1},
		{X: 10000, Y: -10000, Width: 1, Height: 1},
		{X: -10000, Y: 10000, Width: 1, Height: 1},
		{X: 10000, Y: 10000, Width: 1, Height: 1},
	}
	for i, b := range boxes {
		root.Insert(withID(b, i+1))
	}

	got := root.Retrieve(collision.Limits{X: -1, Y: -1, Width: 2, Height: 2})
	require.Len(t, got, 4)
}

func TestInsertRetrieveRoundTrip(t *testing.T) {
	root := quadtree.New()
	box := withID(collision.Limits{X: 123, Y: 456, Width: 5, Height: 5}, 99)

	root.Insert(box)

	got := root.Retrieve(box)
	found := false
	for _, b := range got {
		if b.ID == 99 {
			found = true
		}
	}
	require.True(t, found)
}

func TestSplitOnOverflow(t *testing.T) {
	bounds := collision.Limits{X: 0, Y: 0, Width: 100, Height: 100}
	root := quadtree.NewWithLimits(bounds, 2, 10)

	for i := 0; i < 10; i++ {
		root.Insert(withID(collision.Limits{X: 10, Y: 10, Width: 1, Height: 1}, i))
	}

	got := root.Retrieve(collision.Limits{X: 10, Y: 10, Width: 1, Height: 1})
	require.Len(t, got, 10)
}

func TestClear(t *testing.T) {
	root := quadtree.New()
	root.Insert(withID(collision.Limits{X: 1, Y: 1, Width: 1, Height: 1}, 1))

	root.Clear()

	got := root.Retrieve(collision.Limits{X: 1, Y: 1, Width: 1, Height: 1})
	require.Empty(t, got)
}
