package reaction

import "github.com/rxncluster/engine/graph"

// Record is one reaction in the clustering input. Class is carried for
// callers that want it but is never read by the clustering core — it is
// the caller's responsibility to strip it if it should not leak into
// comparisons or persisted output.
type Record struct {
	ID    string
	ITS   *graph.Graph
	Class string

	// center caches the extracted reaction center so repeated comparisons
	// (one per existing cluster, per spec.md §4.5) don't re-extract it.
	center      *graph.Graph
	centerKnown bool
}

// New builds a Record with no memoized center.
func New(id string, its *graph.Graph) *Record {
	return &Record{ID: id, ITS: its}
}

// WithClass sets the optional class label and returns the receiver, for
// chained construction in tests and loaders.
func (r *Record) WithClass(class string) *Record {
	r.Class = class
	return r
}

// Center returns the memoized reaction center, computing it via extract on
// first call. extract is injected rather than imported directly, so
// reaction depends only on graph and not on rcenter.
func (r *Record) Center(extract func(*graph.Graph) *graph.Graph) *graph.Graph {
	if !r.centerKnown {
		r.center = extract(r.ITS)
		r.centerKnown = true
	}
	return r.center
}

// ResetCenter clears the memoized center, forcing recomputation on the
// next Center call, for callers that change ITS after the center was
// computed.
func (r *Record) ResetCenter() {
	r.center = nil
	r.centerKnown = false
}
