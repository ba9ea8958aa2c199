package collision

import "math"

// Limits returns the axis-aligned bounding box of o, recomputing it only
// if a mutator has advanced the collision revision past the cached one.
//
// Complexity: O(1) amortized; O(1) worst case (four corners at most).
func (o *Object) Limits() Limits {
	if o.limitsRevision == o.collisionRevision {
		return o.cachedLimits
	}
	o.limitsRevision = o.collisionRevision

	switch o.shape {
	case ShapeRect:
		minX, maxX := math.Inf(1), math.Inf(-1)
		minY, maxY := math.Inf(1), math.Inf(-1)
		for _, c := range o.props.Corners {
			minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
			minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		}
		o.cachedLimits = Limits{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY, ID: o.id, HasID: o.hasID}

	case ShapeLine:
		s, e := o.props.Start, o.props.End
		o.cachedLimits = Limits{
			X:      math.Min(s.X, e.X),
			Y:      math.Min(s.Y, e.Y),
			Width:  math.Abs(s.X - e.X),
			Height: math.Abs(s.Y - e.Y),
			ID:     o.id,
			HasID:  o.hasID,
		}

	case ShapeCircle:
		c, r := o.props.Center, o.props.Radius
		o.cachedLimits = Limits{X: c.X - r, Y: c.Y - r, Width: 2 * r, Height: 2 * r, ID: o.id, HasID: o.hasID}
	}

	return o.cachedLimits
}
