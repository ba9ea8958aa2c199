// Package geomath provides the 2D vector algebra, angle, and line-segment
// primitives the rest of the generation engine builds on: point arithmetic,
// projection, line-segment intersection, and point-to-line distance.
//
// Everything here is a pure function over Point values — no package-level
// state, no allocations beyond the returned value. Point equality (EqualV)
// compares squared distance against Epsilon; Intersect excludes endpoint
// touches with a fixed parametric margin of 0.001 when omitEnds is set.
// Callers that need bit-identical output across platforms should not
// substitute different tolerances ad hoc.
//
// Complexity: every function in this package is O(1).
package geomath
