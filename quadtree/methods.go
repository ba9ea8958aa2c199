package quadtree

import (
	"math"

	"github.com/keremnymn/citygen/collision"
)

// split divides this node into four children of half its width/height,
// rounded to integers — top-right, top-left, bottom-left, bottom-right,
// in that fixed order.
func (n *Node) split() {
	next := n.level + 1
	subW := math.Round(n.bounds.Width / 2)
	subH := math.Round(n.bounds.Height / 2)
	x := math.Round(n.bounds.X)
	y := math.Round(n.bounds.Y)

	n.children[0] = &Node{bounds: collision.Limits{X: x + subW, Y: y, Width: subW, Height: subH}, level: next, maxObjects: n.maxObjects, maxLevels: n.maxLevels}
	n.children[1] = &Node{bounds: collision.Limits{X: x, Y: y, Width: subW, Height: subH}, level: next, maxObjects: n.maxObjects, maxLevels: n.maxLevels}
	n.children[2] = &Node{bounds: collision.Limits{X: x, Y: y + subH, Width: subW, Height: subH}, level: next, maxObjects: n.maxObjects, maxLevels: n.maxLevels}
	n.children[3] = &Node{bounds: collision.Limits{X: x + subW, Y: y + subH, Width: subW, Height: subH}, level: next, maxObjects: n.maxObjects, maxLevels: n.maxLevels}
}

// getIndex returns the single child index that fully contains box, or -1
// if box straddles a midline (including lying exactly on one).
func (n *Node) getIndex(box collision.Limits) int {
	index := -1
	vMid := n.bounds.X + n.bounds.Width/2
	hMid := n.bounds.Y + n.bounds.Height/2

	top := box.Y < hMid && box.Y+box.Height < hMid
	bottom := box.Y > hMid

	if box.X < vMid && box.X+box.Width < vMid {
		switch {
		case top:
			index = 1
		case bottom:
			index = 2
		}
	} else if box.X > vMid {
		switch {
		case top:
			index = 0
		case bottom:
			index = 3
		}
	}

	return index
}

// Insert adds box to the tree, splitting and redistributing as needed.
//
// Complexity: O(maxLevels) worst case per insert.
func (n *Node) Insert(box collision.Limits) {
	if n.children[0] != nil {
		if idx := n.getIndex(box); idx != -1 {
			n.children[idx].Insert(box)
			return
		}
	}

	n.objects = append(n.objects, box)

	if len(n.objects) > n.maxObjects && n.level < n.maxLevels {
		if n.children[0] == nil {
			n.split()
		}

		kept := n.objects[:0]
		for _, obj := range n.objects {
			if idx := n.getIndex(obj); idx != -1 {
				n.children[idx].Insert(obj)
			} else {
				kept = append(kept, obj)
			}
		}
		n.objects = kept
	}
}

// Retrieve returns every box that might overlap box: this node's own
// objects, plus either the single matching child's results (if box fits
// one) or the union of all four children's results (if it straddles).
// Duplicates across levels are possible and callers must tolerate them.
func (n *Node) Retrieve(box collision.Limits) []collision.Limits {
	result := append([]collision.Limits(nil), n.objects...)

	if n.children[0] != nil {
		if idx := n.getIndex(box); idx != -1 {
			result = append(result, n.children[idx].Retrieve(box)...)
		} else {
			for _, c := range n.children {
				result = append(result, c.Retrieve(box)...)
			}
		}
	}

	return result
}

// Clear recursively empties every node's objects without deallocating
// children.
func (n *Node) Clear() {
	n.objects = nil
	for _, c := range n.children {
		if c != nil {
			c.Clear()
		}
	}
}
