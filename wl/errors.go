package wl

import "errors"

// ErrIterationsTooLow names a non-positive iteration count. Hash does not
// return it: HashOptions substitutes the default of 3 for any count <= 0.
var ErrIterationsTooLow = errors.New("wl: iterations must be >= 1")
