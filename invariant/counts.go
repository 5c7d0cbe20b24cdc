package invariant

import (
	"sort"

	"github.com/rxncluster/engine/graph"
)

// ComputeVertexCount returns the number of vertices in g.
func ComputeVertexCount(g *graph.Graph) Value {
	return Value{Kind: VertexCount, Int: g.VertexCount()}
}

// ComputeEdgeCount returns the number of edges in g.
func ComputeEdgeCount(g *graph.Graph) Value {
	return Value{Kind: EdgeCount, Int: g.EdgeCount()}
}

// ComputeVertexDegree returns the sorted-ascending degree sequence of g.
func ComputeVertexDegree(g *graph.Graph) Value {
	ids := g.VertexIDs()
	degrees := make([]int, 0, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			continue // unreachable: id came from g.VertexIDs()
		}
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	return Value{Kind: VertexDegree, Degrees: degrees}
}
