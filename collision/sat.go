package collision

import "github.com/keremnymn/citygen/geomath"

// lineToRectProps expands a Line's properties into the rectangle it
// represents once its perpendicular width is taken into account: corners
// start+h, start-h, end-h, end+h where h is the half-width offset
// perpendicular to the line's direction.
func lineToRectProps(line Properties) Properties {
	dir := geomath.Subtract(line.End, line.Start)
	perp := geomath.Point{X: -dir.Y, Y: dir.X}
	half := geomath.Scale(perp, 0.5*line.Width/geomath.Length(perp))

	return Properties{
		Corners: [4]geomath.Point{
			geomath.Add(line.Start, half),
			geomath.Subtract(line.Start, half),
			geomath.Subtract(line.End, half),
			geomath.Add(line.End, half),
		},
	}
}

// extendedMax returns the largest value in xs and its index, keeping the
// first strict improvement on ties so axis-overlap selection stays
// deterministic.
func extendedMax(xs []float64) (float64, int) {
	maxV, maxI := xs[0], 0
	for i, v := range xs {
		if v > maxV {
			maxV, maxI = v, i
		}
	}
	return maxV, maxI
}

// extendedMin is extendedMax's dual.
func extendedMin(xs []float64) (float64, int) {
	minV, minI := xs[0], 0
	for i, v := range xs {
		if v < minV {
			minV, minI = v, i
		}
	}
	return minV, minI
}

// RectRect runs the separating-axis test between two rectangles given by
// their corners (in winding order c0..c3). It returns the minimum-length
// displacement that would pull rectangle a out of rectangle b, and false
// if no such displacement exists (the rectangles do not overlap).
func RectRect(a, b Properties) (geomath.Point, bool) {
	ca, cb := a.Corners, b.Corners

	axes := [4]geomath.Point{
		geomath.Subtract(ca[3], ca[0]),
		geomath.Subtract(ca[3], ca[2]),
		geomath.Subtract(cb[0], cb[1]),
		geomath.Subtract(cb[0], cb[3]),
	}

	var overlaps []geomath.Point

	for _, axis := range axes {
		projA := make([]geomath.Point, 4)
		projB := make([]geomath.Point, 4)
		for i, c := range ca {
			projA[i] = geomath.Project(c, axis).Projected
		}
		for i, c := range cb {
			projB[i] = geomath.Project(c, axis).Projected
		}

		posA := make([]float64, 4)
		posB := make([]float64, 4)
		for i := range projA {
			posA[i] = geomath.Dot(projA[i], axis)
			posB[i] = geomath.Dot(projB[i], axis)
		}

		maxA, maxAI := extendedMax(posA)
		minA, minAI := extendedMin(posA)
		maxB, maxBI := extendedMax(posB)
		minB, minBI := extendedMin(posB)

		if maxA < minB || maxB < minA {
			return geomath.Point{}, false
		}

		diff1 := geomath.Subtract(projA[maxAI], projB[minBI])
		diff2 := geomath.Subtract(projB[maxBI], projA[minAI])

		if geomath.Length2(diff1) < geomath.Length2(diff2) {
			overlaps = append(overlaps, diff1)
		} else {
			overlaps = append(overlaps, geomath.Scale(diff2, -1))
		}
	}

	minVec := overlaps[0]
	for _, v := range overlaps[1:] {
		if geomath.Length2(v) < geomath.Length2(minVec) {
			minVec = v
		}
	}

	return geomath.Scale(minVec, -1), true
}
