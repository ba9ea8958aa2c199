package geomath

import "math"

// Add returns a + b.
func Add(a, b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

// Subtract returns a - b.
func Subtract(a, b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// Scale returns v scaled by n.
func Scale(v Point, n float64) Point {
	return Point{v.X * n, v.Y * n}
}

// Length2 returns the squared length of v. Prefer this over Length when
// only a comparison against another squared length is needed.
func Length2(v Point) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of v.
func Length(v Point) float64 {
	return math.Sqrt(Length2(v))
}

// Distance returns the distance between a and b.
func Distance(a, b Point) float64 {
	return Length(Subtract(b, a))
}

// Distance2 returns the squared distance between a and b.
func Distance2(a, b Point) float64 {
	return Length2(Subtract(b, a))
}

// Dot returns the dot product of a and b.
func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar 2D cross product a.X*b.Y - a.Y*b.X.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Sign returns -1, 0, or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// AngleBetween returns the unsigned angle between v1 and v2, in degrees,
// via acos(dot/(|v1||v2|)).
func AngleBetween(v1, v2 Point) float64 {
	return math.Acos(Dot(v1, v2)/(Length(v1)*Length(v2))) * 180 / math.Pi
}

// EqualV reports whether a and b are within Epsilon of each other
// (squared-distance comparison, so the tolerance is effectively √Epsilon
// in each coordinate).
func EqualV(a, b Point) bool {
	return Distance2(a, b) < Epsilon
}

// Project returns the projection of v onto the vector onto: the raw dot
// product, and the component of v lying along onto.
func Project(v, onto Point) Projection {
	dot := Dot(v, onto)
	return Projection{
		Dot:       dot,
		Projected: Scale(onto, dot/Length2(onto)),
	}
}

// MinDegreeDifference returns the unoriented angular difference between
// two directions d1, d2 (both in degrees), folded into [0, 90]. It treats
// directions 180° apart as identical, matching road orientation semantics
// (a road has no "front" for this comparison).
func MinDegreeDifference(d1, d2 float64) float64 {
	diff := math.Mod(math.Abs(d1-d2), 180)
	return math.Min(diff, math.Abs(diff-180))
}
