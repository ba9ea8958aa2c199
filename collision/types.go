package collision

import "github.com/keremnymn/citygen/geomath"

// Shape tags which geometry a Properties/Object describes. Go has no
// shape-based subtyping here — dispatch on the tag replaces it, the full
// pair-table lives in collide.go.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeLine
	ShapeCircle
)

// Properties is the shape-dependent geometry of a collision Object. Only
// the fields relevant to the Object's Shape are meaningful; the rest are
// zero.
type Properties struct {
	// Corners holds a rectangle's four corners in winding order
	// c0, c1, c2, c3, used by SAT with axes c3-c0 and c3-c2.
	Corners [4]geomath.Point

	// Start, End, and Width describe a Line: its two endpoints and its
	// perpendicular thickness when treated as a rectangle.
	Start, End geomath.Point
	Width      float64

	// Center and Radius describe a Circle.
	Center geomath.Point
	Radius float64
}

// Limits is the axis-aligned bounding box of a collision Object, plus the
// id of the segment that owns it — the payload the quadtree actually
// stores and indexes.
type Limits struct {
	X, Y, Width, Height float64
	ID                  int
	HasID               bool
}

// Object is a shape plus a lazily-recomputed Limits cache. See the
// package doc for the revision-counter invariant.
type Object struct {
	shape Shape
	props Properties

	collisionRevision uint64
	limitsRevision    uint64
	cachedLimits      Limits

	id    int
	hasID bool
}

// NewRect constructs a rectangular Object from four corners in winding
// order c0, c1, c2, c3.
func NewRect(corners [4]geomath.Point, id int) *Object {
	o := &Object{shape: ShapeRect, props: Properties{Corners: corners}, id: id, hasID: true}
	o.collisionRevision = 1
	return o
}

// NewLine constructs a Line-shaped Object of the given perpendicular
// width between start and end.
func NewLine(start, end geomath.Point, width float64, id int) *Object {
	o := &Object{shape: ShapeLine, props: Properties{Start: start, End: end, Width: width}, id: id, hasID: true}
	o.collisionRevision = 1
	return o
}

// NewCircle constructs a circular Object.
func NewCircle(center geomath.Point, radius float64, id int) *Object {
	o := &Object{shape: ShapeCircle, props: Properties{Center: center, Radius: radius}, id: id, hasID: true}
	o.collisionRevision = 1
	return o
}

// Shape reports the Object's shape tag.
func (o *Object) Shape() Shape { return o.shape }

// SetLineEndpoints updates a Line-shaped Object's endpoints in place and
// bumps its collision revision so Limits() recomputes on next call.
// Updating only one endpoint is supported by passing the other unchanged.
func (o *Object) SetLineEndpoints(start, end geomath.Point) {
	o.props.Start = start
	o.props.End = end
	o.collisionRevision++
}

// SetID updates the Object's owning id, including the persisted cached
// limits, so a later Limits() call reflects the new id rather than the
// one the Object was constructed with.
func (o *Object) SetID(id int) {
	o.id = id
	o.hasID = true
	o.cachedLimits.ID = id
	o.cachedLimits.HasID = true
}

// ID returns the Object's owning id, if set.
func (o *Object) ID() (int, bool) { return o.id, o.hasID }
