package roadnet

import (
	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/quadtree"
)

// Split grafts a new segment S (the inciting segment) into this segment T
// at the point "at": T is shortened to [at, T.End], a new segment T' is
// created covering [T's original Start, at], and the three segments' link
// sets are rewired so the mutual-linkage invariant holds afterward. The
// new T' is appended to store and inserted into qt.
//
// Split appends both halves' ids to S's forward links; it never mutates
// S's Road.
func (t *Segment) Split(at Point, inciting *Segment, store *Store, qt *quadtree.Node, cfg genconfig.Config) *Segment {
	backward := t.StartIsBackwards(store)

	splitID := store.NextID()
	tPrime := New(t.Road.Start, at, t.T, t.Q, splitID, cfg)

	t.SetStart(at)

	// Copy T's current link sets into T' before any reassignment.
	tPrime.Links.B = append([]int(nil), t.Links.B...)
	tPrime.Links.F = append([]int(nil), t.Links.F...)

	// The side that "moved" onto T' is T's back side if T's start was
	// backwards, else its forward side; rewrite every neighbor on that
	// side that still points at T to point at T' instead.
	var fixLinks []int
	if backward {
		fixLinks = tPrime.Links.B
	} else {
		fixLinks = tPrime.Links.F
	}
	for _, linkID := range fixLinks {
		neighbor, ok := store.Get(linkID)
		if !ok {
			continue
		}
		for i, id := range neighbor.Links.B {
			if id == t.ID {
				neighbor.Links.B[i] = tPrime.ID
			}
		}
		for i, id := range neighbor.Links.F {
			if id == t.ID {
				neighbor.Links.F[i] = tPrime.ID
			}
		}
	}

	first, second := t, tPrime
	if backward {
		first, second = tPrime, t
	}

	first.Links.F = []int{inciting.ID, second.ID}
	second.Links.B = []int{inciting.ID, first.ID}
	inciting.Links.F = append(inciting.Links.F, first.ID, second.ID)

	qt.Insert(tPrime.Collider.Limits())
	store.Append(tPrime)

	return tPrime
}
