package rcenter

import "github.com/rxncluster/engine/graph"

// IsChanging reports whether e is a "changing" edge per spec.md §4.1: its
// order is a pair with distinct components, and its standard order is
// non-zero. Edges with a scalar order, or a zero standard order, are never
// changing — this also covers the "absent attribute" edge cases, since
// graph.Edge's zero values already encode "scalar 0" and "standard order 0".
func IsChanging(e graph.Edge) bool {
	return e.Order.Changing() && e.StandardOrder != 0
}

// Extract returns the reaction center of its: the vertex-induced subgraph
// over every vertex incident to at least one changing edge. Extraction
// allocates a fresh graph and never mutates its. If no edge is changing,
// the result is the empty graph. Extraction is deterministic and
// idempotent: Extract(Extract(g)) == Extract(g), because re-running it
// over a graph that already contains only reaction-center vertices and
// edges finds the same changing edges and therefore the same vertex set.
// Complexity: O(V + E).
func Extract(its *graph.Graph) *graph.Graph {
	if its == nil {
		return graph.New()
	}

	keep := make(map[string]struct{})
	for _, e := range its.Edges() {
		if IsChanging(e) {
			keep[e.From] = struct{}{}
			keep[e.To] = struct{}{}
		}
	}

	ids := make([]string, 0, len(keep))
	for _, id := range its.VertexIDs() {
		if _, ok := keep[id]; ok {
			ids = append(ids, id)
		}
	}

	return its.Subgraph(ids)
}
