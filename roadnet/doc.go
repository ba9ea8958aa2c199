// Package roadnet defines Road, Segment, and the link graph that ties
// accepted segments together, plus the append-only Store that holds them
// by id and the Split operation the constraint resolver uses to graft a
// new segment into an existing road.
//
// Segment caches its direction and length behind a revision counter the
// same way collision.Object caches its bounding box: SetStart/SetEnd bump
// roadRevision, and Dir()/Length() only recompute once the corresponding
// cache revision has fallen behind it.
//
// Store holds segments append-only, keyed by id, and is not
// safe for concurrent mutation: the growth loop is the sole owner of all
// mutable state during a run, so there is no locking here.
package roadnet
