package collision

import "errors"

// ErrUnknownShape indicates an Object carries a Shape tag this package
// does not know how to dispatch on. It should never occur outside of a
// programming error, since the Shape constants are the only values the
// constructors hand out.
var ErrUnknownShape = errors.New("collision: unknown shape")
