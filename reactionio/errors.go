package reactionio

import "errors"

// ErrMalformedRecord indicates one archive line could not be decoded into a
// reaction (bad JSON, or an edge referencing a vertex the record never
// declares). The archive read continues past it.
var ErrMalformedRecord = errors.New("reactionio: malformed record")

// ErrTruncatedArchive indicates the underlying gzip stream ended before a
// well-formed archive would — distinct from ErrMalformedRecord because it
// means the reader cannot safely keep going.
var ErrTruncatedArchive = errors.New("reactionio: truncated archive")
