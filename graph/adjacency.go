package graph

// NeighborIDs returns the distinct neighbor vertex IDs of id, in first-seen
// (insertion) order. Returns ErrVertexNotFound if id is absent.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{}, len(g.adjacency[id]))
	out := make([]string, 0, len(g.adjacency[id]))
	for _, edgeID := range g.edgeOrder {
		e := g.edges[edgeID]
		var neighbor string
		switch {
		case e.From == id:
			neighbor = e.To
		case e.To == id:
			neighbor = e.From
		default:
			continue
		}
		if _, dup := seen[neighbor]; dup {
			continue
		}
		seen[neighbor] = struct{}{}
		out = append(out, neighbor)
	}

	return out, nil
}

// AdjacencyMatrix returns a dense 0/1 adjacency matrix over the vertex
// order given by VertexIDs, plus that order. Parallel edges collapse to a
// single 1; self-loops set the diagonal entry to 1. The matrix is
// symmetric since Graph is undirected.
// Complexity: O(V^2 + E).
func (g *Graph) AdjacencyMatrix() ([][]float64, []string) {
	order := g.VertexIDs()
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	n := len(order)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for _, edgeID := range g.edgeOrder {
		e := g.edges[edgeID]
		i, j := index[e.From], index[e.To]
		m[i][j] = 1
		m[j][i] = 1
	}

	return m, order
}
