package wl

import (
	"fmt"

	"github.com/rxncluster/engine/graph"
)

// ElementCharge is the combined vertex label attribute-aware refinement
// seeds from. It is the Go counterpart of the original Python project's
// combine_charge_element_to_node (see
// original_source/src/add_combined_node_attributes.py), reimplemented per
// spec.md §9's explicit correction: the Python version mutated the graph
// in place and stored the combination as a formatted string attribute;
// here it is a typed, immutable value computed on demand and never
// written back onto the vertex.
type ElementCharge struct {
	Element string
	Charge  int
}

// CombineElementCharge reads v's element and charge into an ElementCharge.
func CombineElementCharge(v graph.Vertex) ElementCharge {
	return ElementCharge{Element: v.Element, Charge: v.Charge}
}

// key renders the combination into the string used internally as a
// SharedTable lookup key. This encoding is a private implementation
// detail of the hash table, not a public contract — see the doc comment
// on ElementCharge.
func (ec ElementCharge) key() string {
	return fmt.Sprintf("%s/%d", ec.Element, ec.Charge)
}
