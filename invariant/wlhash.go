package invariant

import (
	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/wl"
)

// ComputeWLHash returns a Weisfeiler-Lehman digest of g, suitable for use
// as a bucketing invariant (spec.md §4.2's wl_hash row). opts configures
// the number of refinement iterations and whether vertex/edge attributes
// seed the initial coloring.
func ComputeWLHash(g *graph.Graph, opts wl.HashOptions) Value {
	return Value{Kind: WLHash, Hash: wl.Hash(g, opts)}
}
