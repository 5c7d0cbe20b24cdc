package graph

import "fmt"

// Default attribute values used when a reaction record or archive entry
// omits them. These mirror spec.md §7's "attribute absence" policy.
const (
	DefaultElement       = "C"
	DefaultCharge        = 0
	DefaultStandardOrder = 0
)

// Order is the `order` attribute on an ITS edge. It is either a scalar
// (Pair == false, only A is meaningful) or a pair (a, b) giving the bond
// order on the educt and product side. Order is a plain comparable value
// so it can be used directly as a map key and in equality comparisons —
// the zero value represents the scalar order 0, matching the default the
// isomorphism matcher falls back to when `order` is absent.
type Order struct {
	Pair bool
	A, B float64
}

// ScalarOrder builds a non-changing, single-valued Order.
func ScalarOrder(v float64) Order { return Order{A: v} }

// PairOrder builds a two-sided Order, as found on ITS edges.
func PairOrder(a, b float64) Order { return Order{Pair: true, A: a, B: b} }

// Changing reports whether this Order represents a pair with distinct
// components — the first half of spec.md §4.1's "changing edge" test.
func (o Order) Changing() bool { return o.Pair && o.A != o.B }

// String renders the Order for logging and error messages.
func (o Order) String() string {
	if !o.Pair {
		return fmt.Sprintf("%g", o.A)
	}
	return fmt.Sprintf("(%g, %g)", o.A, o.B)
}

// Vertex is an atom of an ITS graph or reaction center.
type Vertex struct {
	ID      string
	Element string
	Charge  int
}

// NewVertex builds a Vertex with the documented defaults applied.
func NewVertex(id, element string, charge int) Vertex {
	if element == "" {
		element = DefaultElement
	}
	return Vertex{ID: id, Element: element, Charge: charge}
}

// Edge is a bond of an ITS graph or reaction center.
type Edge struct {
	ID            string
	From, To      string
	Order         Order
	StandardOrder int
}

// Graph is an attributed undirected graph: vertices carry element/charge,
// edges carry order/standard_order. Iteration order is insertion order,
// which is what makes clustering and extraction deterministic.
type Graph struct {
	vertices    map[string]*Vertex
	vertexOrder []string

	edges    map[string]*Edge
	edgeOrder []string

	// adjacency[v][u] lists the edge IDs directly connecting v and u, in
	// the order those edges were added. Populated symmetrically.
	adjacency map[string]map[string][]string
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string][]string),
	}
}
