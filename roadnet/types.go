package roadnet

import (
	"github.com/keremnymn/citygen/collision"
	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/geomath"
)

// Point is a 2D coordinate; roadnet reuses geomath.Point directly rather
// than wrapping it, since a Road's endpoints are ordinary vectors for
// every purpose the math package already serves.
type Point = geomath.Point

// Road is a directed pair of endpoints. Its direction is the signed angle,
// in degrees, between End-Start and +Y, positive to the east of +Y (see
// Segment.Dir, which caches this value).
type Road struct {
	Start, End Point
}

// Meta is the tri-valued highway flag and severed marker attached to a
// segment. Highway is nil when unset, else points to true/false
// explicitly — present-and-false still counts as "present" for width
// selection.
type Meta struct {
	Highway *bool
	Severed bool
}

// NewMeta returns the default metadata for a freshly generated branch
// candidate: highway unset (read as false), not severed.
func NewMeta() Meta {
	return Meta{Highway: nil, Severed: false}
}

// HighwayMeta returns metadata for a highway segment.
func HighwayMeta() Meta {
	highway := true
	return Meta{Highway: &highway, Severed: false}
}

// IsHighway reports whether m's highway flag is present and true.
func (m Meta) IsHighway() bool {
	return m.Highway != nil && *m.Highway
}

// Direction identifies which end of a segment a linked neighbor attaches
// to.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionBack
	DirectionForward
)

// Links holds the neighbor segment ids sharing this segment's Start (B,
// "back") and End (F, "forward") respectively. The mutual-linkage
// invariant is maintained by Store/Split/the growth loop, never by Links
// itself.
type Links struct {
	B, F []int
}

// Segment is a Road plus scheduling, collision, and link metadata — the
// unit the growth loop schedules, the constraint resolver mutates, and the
// final output exposes.
type Segment struct {
	ID       int
	Road     Road
	T        float64
	Q        Meta
	Collider *collision.Object
	Links    Links

	// PrevSegmentToLink is set on branch candidates: the id of the
	// segment this candidate should be spliced onto when accepted.
	PrevSegmentToLink *int

	roadRevision   uint64
	dirRevision    uint64
	lengthRevision uint64
	cachedDir      float64
	cachedLength   float64
}

// Width returns the collider width for a segment with the given metadata:
// HighwaySegmentWidth if Highway is set, else DefaultSegmentWidth.
func Width(q Meta, cfg genconfig.Config) float64 {
	if q.Highway != nil {
		return cfg.HighwaySegmentWidth
	}
	return cfg.DefaultSegmentWidth
}

// New constructs a Segment from its endpoints, schedule key, metadata,
// and id, with a fresh Line collider and dir/length caches computed eagerly
// at road revision 0.
func New(start, end Point, t float64, q Meta, id int, cfg genconfig.Config) *Segment {
	road := Road{Start: start, End: end}
	s := &Segment{
		ID:       id,
		Road:     road,
		T:        t,
		Q:        q,
		Collider: collision.NewLine(start, end, Width(q, cfg), id),
	}
	s.dirRevision = 0
	s.lengthRevision = 0
	s.cachedDir = computeDirection(road)
	s.cachedLength = geomath.Distance(road.Start, road.End)
	return s
}

func computeDirection(r Road) float64 {
	v := geomath.Subtract(r.End, r.Start)
	up := Point{X: 0, Y: 1}
	return -1 * geomath.Sign(geomath.Cross(up, v)) * geomath.AngleBetween(up, v)
}
