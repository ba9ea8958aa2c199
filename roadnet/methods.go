package roadnet

import "github.com/keremnymn/citygen/geomath"

// SetStart moves the segment's start point, bumping its road revision and
// updating the collider's line endpoints (which bumps the collider's own
// collision revision in turn).
func (s *Segment) SetStart(p Point) {
	s.Road.Start = p
	s.Collider.SetLineEndpoints(s.Road.Start, s.Road.End)
	s.roadRevision++
}

// SetEnd moves the segment's end point. See SetStart.
func (s *Segment) SetEnd(p Point) {
	s.Road.End = p
	s.Collider.SetLineEndpoints(s.Road.Start, s.Road.End)
	s.roadRevision++
}

// Dir returns the segment's direction in degrees, recomputing only if a
// mutator has advanced the road revision past the cached one.
func (s *Segment) Dir() float64 {
	if s.dirRevision != s.roadRevision {
		s.dirRevision = s.roadRevision
		s.cachedDir = computeDirection(s.Road)
	}
	return s.cachedDir
}

// Length returns the segment's length, recomputing only if a mutator has
// advanced the road revision past the cached one.
func (s *Segment) Length() float64 {
	if s.lengthRevision != s.roadRevision {
		s.lengthRevision = s.roadRevision
		s.cachedLength = geomath.Distance(s.Road.Start, s.Road.End)
	}
	return s.cachedLength
}

// SetID updates the segment's id, including its collider's persisted id,
// so that a later Collider.Limits() carries the new id rather than the one
// the collider was constructed with.
func (s *Segment) SetID(id int) {
	s.ID = id
	s.Collider.SetID(id)
}
