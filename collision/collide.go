package collision

// Collide reports whether a and b overlap. It rejects immediately on an
// AABB miss, then dispatches on the (a, b) shape pair: rect-rect and
// line-involving pairs go through RectRect (lines expanded to their
// perpendicular-width rectangle first); rect-circle and circle-rect go
// through RectCircle, always called rect-first; circle-line and
// line-circle never collide.
func Collide(a, b *Object) bool {
	la, lb := a.Limits(), b.Limits()
	if la.X+la.Width < lb.X || lb.X+lb.Width < la.X ||
		la.Y+la.Height < lb.Y || lb.Y+lb.Height < la.Y {
		return false
	}

	switch a.shape {
	case ShapeRect:
		switch b.shape {
		case ShapeRect:
			_, ok := RectRect(a.props, b.props)
			return ok
		case ShapeLine:
			_, ok := RectRect(a.props, lineToRectProps(b.props))
			return ok
		case ShapeCircle:
			return RectCircle(a.props, b.props)
		}
	case ShapeLine:
		switch b.shape {
		case ShapeRect:
			_, ok := RectRect(lineToRectProps(a.props), b.props)
			return ok
		case ShapeLine:
			_, ok := RectRect(lineToRectProps(a.props), lineToRectProps(b.props))
			return ok
		case ShapeCircle:
			return false
		}
	case ShapeCircle:
		switch b.shape {
		case ShapeRect:
			return RectCircle(b.props, a.props)
		default:
			return false
		}
	}

	panic(ErrUnknownShape)
}
