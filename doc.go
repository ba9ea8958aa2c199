// Package citygen procedurally grows a two-dimensional road network
// resembling a city street map, driven by a noise-based population
// density field, and exports it as a geographic feature collection.
//
// 🏙 What is citygen?
//
//	A priority-driven growth simulator: pop the earliest-scheduled
//	candidate road, resolve it against the roads already accepted
//	(intersection, end-snap, and line-snap corrections over a quadtree
//	index), splice it into the link graph, and let it spawn new
//	candidates wherever the population field is dense enough.
//
// Under the hood, everything is organized per concern:
//
//	geomath/     — 2D vector algebra, line-segment intersection, projection
//	collision/   — rect/line/circle shapes, SAT overlap, cached bounding boxes
//	quadtree/    — recursive 4-way spatial index pruning collision candidates
//	roadnet/     — Segment, link graph, append-only Store, the Split operation
//	population/  — multi-octave noise density in [0,1] gating growth
//	constraints/ — the local-constraint resolver (the accept/mutate/reject ladder)
//	branch/      — continuation and side-branch candidate generation
//	growth/      — the priority-queue growth loop tying it all together
//	genconfig/   — every tunable constant behind functional options
//	geoexport/   — GeoJSON serialization of a finished run
//
// Quick ASCII sketch of a young network:
//
//	          │
//	    ──────┼────────────── highway
//	          │      │
//	          └──────┼──── branch
//	                 │
//
// Determinism: a fixed genconfig seed reproduces the same network
// bit-for-bit on the same platform.
//
//	go get github.com/keremnymn/citygen
package citygen
