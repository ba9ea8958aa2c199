package constraints

import "github.com/keremnymn/citygen/roadnet"

// Priority ranks the three candidate actions; higher wins, and within the
// same priority the last-seen neighbor during a scan wins.
type Priority int

const (
	priorityNone Priority = iota
	priorityLineSnap
	priorityEndSnap
	priorityIntersection
)

// action is the single highest-priority match found against a candidate
// segment, or the zero value if nothing matched.
type action struct {
	priority Priority
	point    roadnet.Point
	neighbor *roadnet.Segment
}

// Outcome reports how Resolve disposed of a candidate segment.
type Outcome int

const (
	// OutcomeAccepted means the candidate is accepted unchanged.
	OutcomeAccepted Outcome = iota
	// OutcomeAcceptedModified means the candidate is accepted with its end
	// point and severed flag mutated in place.
	OutcomeAcceptedModified
	// OutcomeRejected means the candidate must be discarded.
	OutcomeRejected
)
