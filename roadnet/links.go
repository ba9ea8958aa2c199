package roadnet

import "github.com/keremnymn/citygen/geomath"

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// LinksForEndContaining returns the link slice (B or F) that contains id,
// and which end it is, or (nil, DirectionNone) if id appears in neither.
func (s *Segment) LinksForEndContaining(id int) ([]int, Direction) {
	if contains(s.Links.B, id) {
		return s.Links.B, DirectionBack
	}
	if contains(s.Links.F, id) {
		return s.Links.F, DirectionForward
	}
	return nil, DirectionNone
}

// StartIsBackwards reports whether this segment's Start lies on the
// "prior segment" side of its link graph: pick a reference neighbor
// (first in B if non-empty, else first in F), then check whether that
// neighbor shares this segment's Start (if the reference came from B) or
// End (if from F). A segment with no links at all is not backwards.
func (s *Segment) StartIsBackwards(store *Store) bool {
	var refID int
	var fromBack bool

	switch {
	case len(s.Links.B) > 0:
		refID, fromBack = s.Links.B[0], true
	case len(s.Links.F) > 0:
		refID, fromBack = s.Links.F[0], false
	default:
		return false
	}

	ref := store.MustGet(refID)

	if fromBack {
		return geomath.EqualV(ref.Road.Start, s.Road.Start) || geomath.EqualV(ref.Road.End, s.Road.Start)
	}
	return geomath.EqualV(ref.Road.Start, s.Road.End) || geomath.EqualV(ref.Road.End, s.Road.End)
}
