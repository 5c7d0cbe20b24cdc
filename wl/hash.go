package wl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/rxncluster/engine/graph"
)

// HashOptions parameterizes Hash.
type HashOptions struct {
	// Iterations is the number of refinement passes. Defaults to 3 when
	// zero or negative (spec.md §4.4a's stated default).
	Iterations int
	// UseAttrs seeds refinement from (element, charge) and folds edge
	// order into each neighbor's contribution, instead of starting every
	// vertex from the same color.
	UseAttrs bool
}

func (o HashOptions) resolve() HashOptions {
	if o.Iterations <= 0 {
		o.Iterations = 3
	}
	return o
}

// Hash computes a stable digest of g's 1-WL refinement, suitable for
// bucketing graphs that are likely isomorphic (spec.md §4.4a). Equal
// hashes do not prove isomorphism — collisions (including genuine 1-WL
// blind spots, not just hash collisions) must be resolved by a complete
// oracle such as isomorphism.Isomorphic if exactness matters.
//
// The digest is built from each iteration's sorted multiset of
// content-addressed labels (initialLabels/refineLabels), not from raw
// SharedTable color ids: ids are handed out in first-seen order, which
// depends on vertex insertion order and so is not itself stable across
// independent calls, even on isomorphic graphs. Labels encode the same
// refinement history — (element, charge) and edge order included, when
// UseAttrs is set — directly as content, so two independently-run,
// differently-ordered but isomorphic (and attribute-equal) graphs still
// hash equal, and, with UseAttrs set, two graphs differing only in vertex
// attributes hash differently. Without UseAttrs such graphs collide.
// Complexity: O(iterations * (V + E) * E), since neighbor and edge-label
// lookups each scan the edge list.
func Hash(g *graph.Graph, opts HashOptions) string {
	opts = opts.resolve()

	order := g.VertexIDs()
	labels := initialLabels(g, order, opts.UseAttrs)

	digest := xxhash.New()
	writeLabels(digest, sortedLabels(labels, order))

	for i := 0; i < opts.Iterations; i++ {
		labels = refineLabels(g, order, labels, opts.UseAttrs)
		writeLabels(digest, sortedLabels(labels, order))
	}

	return fmt.Sprintf("%016x", digest.Sum64())
}

// writeLabels folds a sorted label multiset into digest. Each label is
// followed by a NUL separator so that, e.g., ["ab", "c"] and ["a", "bc"]
// never collide despite concatenating to the same bytes.
func writeLabels(w *xxhash.Digest, labels []string) {
	for _, l := range labels {
		_, _ = w.Write([]byte(l))
		_, _ = w.Write([]byte{0})
	}
}
