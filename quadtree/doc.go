// Package quadtree implements the recursive four-way spatial index the
// local-constraint resolver uses to prune collision candidates: a node
// holds up to its object limit (DefaultMaxObjects unless set through
// NewWithLimits) of collision.Limits boxes before splitting into four
// fixed-size children, and a box that straddles a child's midline stays at
// the parent rather than being force-fit into one side.
//
// Child indexing is fixed: 0 = top-right (NE), 1 = top-left (NW),
// 2 = bottom-left (SW), 3 = bottom-right (SE). Retrieve may return the
// same box more than once across levels; callers tolerate duplicates.
package quadtree
