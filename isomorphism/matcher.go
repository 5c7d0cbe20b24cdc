package isomorphism

import "github.com/rxncluster/engine/graph"

// vertexMatch reports whether two vertices may be mapped to each other: the
// combined matcher from spec.md §4.3 requires element and charge to agree
// simultaneously, not as two independently-satisfiable checks.
func vertexMatch(a, b graph.Vertex) bool {
	return a.Element == b.Element && a.Charge == b.Charge
}

// edgeMatch reports whether two edges may correspond under the same
// candidate bijection: their order attribute must be exactly equal. This is
// folded into the same joint predicate that vertexMatch belongs to — a
// candidate mapping is accepted only when every matcher agrees on every
// vertex and edge touched by that extension, not when each matcher passes
// in isolation over separately-run subsearches (the reference's bug; see
// spec.md §4.3 and §9).
func edgeMatch(a, b graph.Edge) bool {
	return a.Order == b.Order
}
