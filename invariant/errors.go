package invariant

import "errors"

// ErrUnknownKind indicates an invariant was requested for a Kind that has
// no compute function behind it (None, or a value outside the Kind enum);
// cluster's invariant dispatch returns it wrapped.
var ErrUnknownKind = errors.New("invariant: unknown kind")
