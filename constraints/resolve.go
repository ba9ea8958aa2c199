package constraints

import (
	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/geomath"
	"github.com/keremnymn/citygen/quadtree"
	"github.com/keremnymn/citygen/roadnet"
)

// Resolve runs the full local-constraint ladder against candidate: it
// queries qt for neighbors near candidate's collider, keeps the single
// highest-priority match (ties won by the last neighbor scanned), and
// either leaves candidate untouched, mutates it in place and performs any
// required split, or rejects it.
//
// On OutcomeAcceptedModified, candidate.Road.End, candidate.Q.Severed,
// and the link sets of candidate and/or the matched neighbor have
// already been updated; the caller only still needs to perform the
// growth loop's own link-fixup against candidate's prev_segment_to_link.
func Resolve(candidate *roadnet.Segment, store *roadnet.Store, qt *quadtree.Node, cfg genconfig.Config) Outcome {
	var best action

	for _, lim := range qt.Retrieve(candidate.Collider.Limits()) {
		if !lim.HasID {
			continue
		}
		neighbor, ok := store.Get(lim.ID)
		if !ok {
			continue
		}

		if inter, hit := geomath.Intersect(candidate.Road.Start, candidate.Road.End, neighbor.Road.Start, neighbor.Road.End, true); hit {
			if priorityIntersection >= best.priority {
				best = action{priority: priorityIntersection, point: roadnet.Point{X: inter.X, Y: inter.Y}, neighbor: neighbor}
			}
			continue
		}

		if geomath.Distance(candidate.Road.End, neighbor.Road.End) < cfg.RoadSnapDistance {
			if priorityEndSnap >= best.priority {
				best = action{priority: priorityEndSnap, point: neighbor.Road.End, neighbor: neighbor}
			}
			continue
		}

		lp := geomath.DistanceToLine(candidate.Road.End, neighbor.Road.Start, neighbor.Road.End)
		onInterior := lp.LineProj2 > 0 && lp.LineProj2 < lp.Length2
		if onInterior && lp.Distance2 < cfg.RoadSnapDistance*cfg.RoadSnapDistance {
			if priorityLineSnap >= best.priority {
				best = action{priority: priorityLineSnap, point: lp.PointOnLine, neighbor: neighbor}
			}
		}
	}

	switch best.priority {
	case priorityIntersection:
		return acceptIntersection(candidate, best.neighbor, best.point, store, qt, cfg)
	case priorityEndSnap:
		return acceptEndSnap(candidate, best.neighbor, best.point, store)
	case priorityLineSnap:
		return acceptLineSnap(candidate, best.neighbor, best.point, store, qt, cfg)
	default:
		return OutcomeAccepted
	}
}

func acceptIntersection(candidate, neighbor *roadnet.Segment, point roadnet.Point, store *roadnet.Store, qt *quadtree.Node, cfg genconfig.Config) Outcome {
	if geomath.MinDegreeDifference(neighbor.Dir(), candidate.Dir()) < cfg.MinimumIntersectionDeviation {
		return OutcomeRejected
	}

	candidate.SetEnd(point)
	candidate.Q.Severed = true
	neighbor.Split(point, candidate, store, qt, cfg)

	return OutcomeAcceptedModified
}

func acceptEndSnap(candidate, neighbor *roadnet.Segment, point roadnet.Point, store *roadnet.Store) Outcome {
	candidate.SetEnd(point)
	candidate.Q.Severed = true

	// Which side of neighbor holds the links at the shared point depends on
	// neighbor's orientation relative to its own link graph (after splits a
	// segment's F is not guaranteed to sit at its geometric End), so the
	// side is chosen through StartIsBackwards rather than assumed.
	sharedIsForward := neighbor.StartIsBackwards(store)
	var linksToShare []int
	if sharedIsForward {
		linksToShare = neighbor.Links.F
	} else {
		linksToShare = neighbor.Links.B
	}

	for _, id := range linksToShare {
		other, ok := store.Get(id)
		if !ok {
			continue
		}
		sameForward := geomath.EqualV(other.Road.Start, candidate.Road.Start) && geomath.EqualV(other.Road.End, candidate.Road.End)
		sameBackward := geomath.EqualV(other.Road.Start, candidate.Road.End) && geomath.EqualV(other.Road.End, candidate.Road.Start)
		if sameForward || sameBackward {
			return OutcomeRejected
		}
	}

	for _, linkID := range linksToShare {
		link, ok := store.Get(linkID)
		if !ok {
			continue
		}
		switch _, dir := link.LinksForEndContaining(neighbor.ID); dir {
		case roadnet.DirectionBack:
			link.Links.B = append(link.Links.B, candidate.ID)
			candidate.Links.F = append(candidate.Links.F, linkID)
		case roadnet.DirectionForward:
			link.Links.F = append(link.Links.F, candidate.ID)
			candidate.Links.F = append(candidate.Links.F, linkID)
		}
	}

	if sharedIsForward {
		neighbor.Links.F = append(neighbor.Links.F, candidate.ID)
	} else {
		neighbor.Links.B = append(neighbor.Links.B, candidate.ID)
	}
	candidate.Links.F = append(candidate.Links.F, neighbor.ID)

	return OutcomeAcceptedModified
}

func acceptLineSnap(candidate, neighbor *roadnet.Segment, point roadnet.Point, store *roadnet.Store, qt *quadtree.Node, cfg genconfig.Config) Outcome {
	candidate.SetEnd(point)
	candidate.Q.Severed = true

	if geomath.MinDegreeDifference(neighbor.Dir(), candidate.Dir()) < cfg.MinimumIntersectionDeviation {
		return OutcomeRejected
	}

	neighbor.Split(point, candidate, store, qt, cfg)

	return OutcomeAcceptedModified
}
