package geomath

// Epsilon bounds squared-distance equality for Point values (see EqualV).
// It matches the tolerance the underlying simulation was tuned against;
// loosening it changes which near-duplicate endpoints get merged.
const Epsilon = 1e-8

// Point is a single 2D coordinate. Every geometric value in the engine —
// segment endpoints, collision corners, circle centers — is a Point.
type Point struct {
	X, Y float64
}

// Projection is the result of projecting a vector v onto another vector
// onto: the raw dot product and the component of v that lies along onto.
type Projection struct {
	Dot       float64
	Projected Point
}

// LinePoint is the result of dropping a perpendicular from a center point
// onto the line through (a, b) (see DistanceToLine).
type LinePoint struct {
	// Distance2 is the squared distance from center to the foot of the
	// perpendicular.
	Distance2 float64
	// PointOnLine is the foot of the perpendicular itself.
	PointOnLine Point
	// LineProj2 is the signed squared distance of PointOnLine from a along
	// the line; it lies in [0, Length2] iff PointOnLine is on the segment
	// [a, b].
	LineProj2 float64
	// Length2 is the squared length of the segment (a, b).
	Length2 float64
}

// Intersection is the result of a successful line-segment intersection
// test: the point itself plus the parametric position t along (p, p2).
type Intersection struct {
	X, Y float64
	T    float64
}
