package roadnet

import "errors"

// ErrSegmentNotFound indicates a Store lookup referenced an id with no
// matching segment — a broken invariant rather than a recoverable
// condition, so MustGet panics with it instead of returning it.
var ErrSegmentNotFound = errors.New("roadnet: segment not found")
