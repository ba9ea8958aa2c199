package quadtree

import "github.com/keremnymn/citygen/collision"

// RootBounds is the fixed extent of the world the quadtree indexes —
// large enough that no generated road network reaches its edge.
var RootBounds = collision.Limits{X: -20000, Y: -20000, Width: 40000, Height: 40000}

const (
	// DefaultMaxObjects is the object count a node holds before it splits.
	DefaultMaxObjects = 10
	// DefaultMaxLevels caps recursion depth; beyond it a node keeps
	// accepting objects without splitting further. Not an error.
	DefaultMaxLevels = 10
)

// Node is one quadtree node: a bounding box, the boxes stored directly at
// this level (objects that straddle a child's midline), and either four
// children or none.
type Node struct {
	bounds     collision.Limits
	level      int
	maxObjects int
	maxLevels  int
	objects    []collision.Limits
	children   [4]*Node
}

// New constructs the root node over RootBounds with the default object
// and level limits.
func New() *Node {
	return NewWithLimits(RootBounds, DefaultMaxObjects, DefaultMaxLevels)
}

// NewWithLimits constructs a root node with custom bounds and limits —
// primarily useful for tests that want a small, easily-saturated tree.
func NewWithLimits(bounds collision.Limits, maxObjects, maxLevels int) *Node {
	return &Node{bounds: bounds, maxObjects: maxObjects, maxLevels: maxLevels}
}
