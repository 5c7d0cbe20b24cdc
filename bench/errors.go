package bench

import "errors"

// ErrStoreClosed is returned by Store methods once Close has run.
var ErrStoreClosed = errors.New("bench: store is closed")
