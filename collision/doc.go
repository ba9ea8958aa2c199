// Package collision implements the engine's only three shapes — rectangle,
// line (with perpendicular width), and circle — and the pairwise overlap
// tests the local-constraint resolver depends on: rectangle-vs-rectangle
// separating-axis overlap, rectangle-vs-circle overlap, and the axis-aligned
// bounding box ("limits") each shape is indexed by in the quadtree.
//
// Object wraps a shape with a lazily-recomputed Limits cache: every mutator
// bumps a collision revision counter, and Limits() only recomputes the
// cached box when the limits revision has fallen behind it. This mirrors
// the dir()/length() caching in roadnet.Segment — both exist so that
// repeated quadtree retrieval during a single growth-loop iteration doesn't
// re-derive geometry that hasn't changed.
//
// Collide always rejects on a bounding-box miss before running the more
// expensive shape-specific test, and always normalizes rectangle-vs-circle
// calls to (rect, circle) order regardless of which operand Collide was
// called with first.
package collision
