// Package quadtree_test provides a runnable example of quadrant-filtered
// retrieval once the tree has split.
package quadtree_test

import (
	"fmt"

	"github.com/keremnymn/citygen/collision"
	"github.com/keremnymn/citygen/quadtree"
)

// ExampleNode_Retrieve inserts one unit box per quadrant into a tree that
// splits on the fourth insert, then shows that a query box living in a
// single quadrant only sees that quadrant's contents while a query
// straddling the root midlines sees everything.
func ExampleNode_Retrieve() {
	root := quadtree.NewWithLimits(quadtree.RootBounds, 3, quadtree.DefaultMaxLevels)

	corners := []collision.Limits{
		{X: -10000, Y: -10000, Width: 1, Height: 1, ID: 1, HasID: true},
		{X: 10000, Y: -10000, Width: 1, Height: 1, ID: 2, HasID: true},
		{X: -10000, Y: 10000, Width: 1, Height: 1, ID: 3, HasID: true},
		{X: 10000, Y: 10000, Width: 1, Height: 1, ID: 4, HasID: true},
	}
	for _, c := range corners {
		root.Insert(c)
	}

	oneQuadrant := root.Retrieve(collision.Limits{X: -10000, Y: -10000, Width: 1, Height: 1})
	straddling := root.Retrieve(collision.Limits{X: -1, Y: -1, Width: 2, Height: 2})

	fmt.Printf("one quadrant: %d match (id %d)\n", len(oneQuadrant), oneQuadrant[0].ID)
	fmt.Printf("straddling: %d matches\n", len(straddling))
	// Output:
	// one quadrant: 1 match (id 1)
	// straddling: 4 matches
}
