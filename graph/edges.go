package graph

import "fmt"

// AddEdge registers e between e.From and e.To. Both endpoints must already
// exist (ErrVertexNotFound otherwise). If e.ID is empty, an ID is minted
// deterministically from the current edge count. Returns ErrDuplicateEdge
// if e.ID collides with an existing edge.
// Complexity: O(1).
func (g *Graph) AddEdge(e Edge) (string, error) {
	if !g.HasVertex(e.From) {
		return "", fmt.Errorf("graph: AddEdge endpoint %q: %w", e.From, ErrVertexNotFound)
	}
	if !g.HasVertex(e.To) {
		return "", fmt.Errorf("graph: AddEdge endpoint %q: %w", e.To, ErrVertexNotFound)
	}

	if e.ID == "" {
		e.ID = fmt.Sprintf("e%d", len(g.edges))
	}
	if _, exists := g.edges[e.ID]; exists {
		return "", ErrDuplicateEdge
	}

	stored := e
	g.edges[e.ID] = &stored
	g.edgeOrder = append(g.edgeOrder, e.ID)

	g.adjacency[e.From][e.To] = append(g.adjacency[e.From][e.To], e.ID)
	if e.To != e.From {
		g.adjacency[e.To][e.From] = append(g.adjacency[e.To][e.From], e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether any edge directly connects u and v.
func (g *Graph) HasEdge(u, v string) bool {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return false
	}
	return len(neighbors[v]) > 0
}

// EdgeByID returns the edge with id and true, or the zero Edge and false.
func (g *Graph) EdgeByID(id string) (Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// EdgeBetween returns the first edge directly connecting u and v (in
// insertion order) and true, or the zero Edge and false if none exists.
// Parallel edges are not expected by any consumer in this module, but if
// present the lowest-inserted one wins.
func (g *Graph) EdgeBetween(u, v string) (Edge, bool) {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return Edge{}, false
	}
	ids := neighbors[v]
	if len(ids) == 0 {
		return Edge{}, false
	}
	return *g.edges[ids[0]], true
}

// EdgesOf returns every edge incident to id, in insertion order. Returns
// ErrVertexNotFound if id is absent.
func (g *Graph) EdgesOf(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0)
	for _, edgeID := range g.edgeOrder {
		e := g.edges[edgeID]
		if e.From == id || e.To == id {
			out = append(out, *e)
		}
	}
	return out, nil
}
