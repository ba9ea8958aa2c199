package collision

import "github.com/keremnymn/citygen/geomath"

// RectCircle reports whether rect (given as four corners, winding order)
// overlaps circle. The first argument must always be the rectangle; this
// package's Collide dispatcher always normalizes to rect-first before
// calling here.
func RectCircle(rect, circle Properties) bool {
	corners := rect.Corners
	r2 := circle.Radius * circle.Radius

	for _, c := range corners {
		if geomath.Distance2(c, circle.Center) <= r2 {
			return true
		}
	}

	for i := range corners {
		start := corners[i]
		end := corners[(i+1)%len(corners)]
		lp := geomath.DistanceToLine(circle.Center, start, end)
		if lp.LineProj2 > 0 && lp.LineProj2 < lp.Length2 && lp.Distance2 <= r2 {
			return true
		}
	}

	axis0 := geomath.Subtract(corners[3], corners[0])
	axis1 := geomath.Subtract(corners[3], corners[2])

	proj0 := geomath.Project(geomath.Subtract(circle.Center, corners[0]), axis0)
	proj1 := geomath.Project(geomath.Subtract(circle.Center, corners[2]), axis1)

	if proj0.Dot < 0 || geomath.Length(proj0.Projected) > geomath.Length(axis0) ||
		proj1.Dot < 0 || geomath.Length(proj1.Projected) > geomath.Length(axis1) {
		return false
	}

	return true
}
