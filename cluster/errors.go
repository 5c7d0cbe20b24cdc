package cluster

import "errors"

// ErrInvalidCombination is returned by NewConfig when the requested
// (Invariant, Oracle) pair is one spec.md §4.6 flags as not-to-be-run:
// both None, or AlgebraicConnectivity paired with any oracle.
var ErrInvalidCombination = errors.New("cluster: invalid (invariant, oracle) combination")

// ErrUnknownOracle is returned when a Config carries an Oracle value
// engine.go does not know how to dispatch.
var ErrUnknownOracle = errors.New("cluster: unknown oracle")
