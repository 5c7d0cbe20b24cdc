package isomorphism

import "errors"

// ErrNilGraph is returned when either operand to Isomorphic is nil.
var ErrNilGraph = errors.New("isomorphism: graph is nil")
