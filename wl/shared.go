package wl

import "github.com/rxncluster/engine/graph"

// EquivOptions parameterizes Equivalent.
type EquivOptions struct {
	// UseAttrs seeds refinement from (element, charge) and edge order,
	// same as HashOptions.UseAttrs.
	UseAttrs bool
	// ExtractCenter runs extraction (via the supplied Extractor) on both
	// graphs before comparing. Equivalent does not import rcenter itself
	// to avoid a needless dependency when the caller already has centers
	// in hand; cluster wires a real rcenter.Extract in.
	ExtractCenter bool
	Extractor     func(*graph.Graph) *graph.Graph
	// Reset clears table's id assignments before running this
	// comparison. Pass false when reusing one SharedTable across several
	// comparisons within the same invariant bucket for speed (spec.md
	// §9); pass true (or hand Equivalent a fresh table) when crossing
	// bucket boundaries, since color ids are not stable across
	// unrelated populations (spec.md §5).
	Reset bool
}

// Equivalent runs 1-WL refinement on g1 and g2 in lockstep against the
// same SharedTable and reports whether their colorings never diverge
// (spec.md §4.4b). It is a necessary but not sufficient condition for
// isomorphism: true 1-WL-equivalent, non-isomorphic graphs exist (e.g.
// K_3,3 versus the triangular prism — both 3-regular on 6 vertices; see
// TestEquivalent_CannotDistinguish3Regular), and this is a documented
// limitation, not a bug.
//
// Unlike the Python original, this implementation never leaves a
// "compressed_label" on the vertex itself between calls — per-run colors
// live in a local map, so every call behaves as if vertices had no prior
// stored label (the spec's "Step 0" branch), and Reset instead governs
// only whether table's id assignments are cleared first.
// Complexity: O(|V(g1)| * (V + E) * E), since neighbor and edge-label
// lookups each scan the edge list.
func Equivalent(g1, g2 *graph.Graph, table *SharedTable, opts EquivOptions) bool {
	if opts.Reset {
		table.Reset()
	}
	if opts.ExtractCenter && opts.Extractor != nil {
		g1 = opts.Extractor(g1)
		g2 = opts.Extractor(g2)
	}

	order1 := g1.VertexIDs()
	order2 := g2.VertexIDs()
	if len(order1) != len(order2) {
		return false
	}
	if len(order1) == 0 {
		return true
	}

	colors1 := initialColors(g1, order1, table, opts.UseAttrs)
	colors2 := initialColors(g2, order2, table, opts.UseAttrs)

	// The unrefined seed partition can only ever rule graphs out (an
	// attribute or vertex-count mismatch before any refinement), never
	// rule them in: with UseAttrs off every vertex starts in the same
	// class regardless of structure, so an "already equal" seed partition
	// proves nothing about equivalence. The loop below always refines at
	// least once before a match can return true.
	if !equalUint64Slices(sortedColors(colors1, order1), sortedColors(colors2, order2)) {
		return false
	}

	steps := len(order1)
	for step := 0; step < steps; step++ {
		colors1 = refineStep(g1, order1, colors1, table, opts.UseAttrs)
		colors2 = refineStep(g2, order2, colors2, table, opts.UseAttrs)

		s1 := sortedColors(colors1, order1)
		s2 := sortedColors(colors2, order2)
		if !equalUint64Slices(s1, s2) {
			return false
		}
		if equalHistograms(histogram(s1), histogram(s2)) {
			return true
		}
	}

	return true
}
