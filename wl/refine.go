package wl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rxncluster/engine/graph"
)

const initialColorKey = "__initial__"

// initialColors assigns the starting color of every vertex in order.
// Without attributes every vertex gets the same color (the "initial"
// sentinel, spec.md §4.4a). With attributes, vertices with a different
// (element, charge) combination start in different color classes.
func initialColors(g *graph.Graph, order []string, table *SharedTable, useAttrs bool) map[string]uint64 {
	colors := make(map[string]uint64, len(order))
	for _, id := range order {
		if !useAttrs {
			colors[id] = table.IDFor(initialColorKey)
			continue
		}
		v, _ := g.VertexByID(id)
		colors[id] = table.IDFor(CombineElementCharge(v).key())
	}
	return colors
}

// edgeLabel returns the order attribute of the edge between u and v, or
// "" if there is no such edge. Callers consult it only in attribute-aware
// mode.
func edgeLabel(g *graph.Graph, u, v string) string {
	edges, err := g.EdgesOf(u)
	if err != nil {
		return ""
	}
	for _, e := range edges {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return e.Order.String()
		}
	}
	return ""
}

// refineStep runs one 1-WL refinement pass: for each vertex v, build the
// key (color(v), sorted_multiset(neighbor colors [+ edge labels])), look
// it up (or assign a fresh id) in table, and that becomes v's next color.
// Colors are committed atomically — next is built entirely from the old
// colors map before it replaces it, so no vertex ever observes another
// vertex's new color mid-step (spec.md §4.4's refinement-step contract).
func refineStep(g *graph.Graph, order []string, colors map[string]uint64, table *SharedTable, useAttrs bool) map[string]uint64 {
	next := make(map[string]uint64, len(order))
	for _, id := range order {
		neighbors, _ := g.NeighborIDs(id)
		labels := make([]string, 0, len(neighbors))
		for _, n := range neighbors {
			label := fmt.Sprintf("%020d", colors[n])
			if useAttrs {
				label += "#" + edgeLabel(g, id, n)
			}
			labels = append(labels, label)
		}
		sort.Strings(labels)

		key := fmt.Sprintf("%020d|%s", colors[id], strings.Join(labels, ","))
		next[id] = table.IDFor(key)
	}
	return next
}

// initialLabels is initialColors' content-addressed counterpart: the
// label of a vertex is the attribute string itself (or the shared
// "__initial__" sentinel) rather than a SharedTable-assigned id. Labels
// never depend on table assignment order, which is what lets Hash fold
// them into a digest that is stable across independent calls on
// isomorphic graphs built with different vertex insertion orders — see
// Hash's doc comment on why raw color ids can't be hashed directly for
// that purpose.
func initialLabels(g *graph.Graph, order []string, useAttrs bool) map[string]string {
	labels := make(map[string]string, len(order))
	for _, id := range order {
		if !useAttrs {
			labels[id] = initialColorKey
			continue
		}
		v, _ := g.VertexByID(id)
		labels[id] = CombineElementCharge(v).key()
	}
	return labels
}

// refineLabels is refineStep's content-addressed counterpart: each
// vertex's next label is (label(v), sorted_multiset(neighbor labels [+
// edge labels])), built directly as a string rather than compressed
// through a SharedTable id. Like refineStep, next is built entirely from
// the old labels map before replacing it.
func refineLabels(g *graph.Graph, order []string, labels map[string]string, useAttrs bool) map[string]string {
	next := make(map[string]string, len(order))
	for _, id := range order {
		neighbors, _ := g.NeighborIDs(id)
		parts := make([]string, 0, len(neighbors))
		for _, n := range neighbors {
			part := labels[n]
			if useAttrs {
				part += "#" + edgeLabel(g, id, n)
			}
			parts = append(parts, part)
		}
		sort.Strings(parts)

		next[id] = fmt.Sprintf("%s|%s", labels[id], strings.Join(parts, ","))
	}
	return next
}

// sortedLabels returns the labels of order's vertices as an ascending
// sorted slice, the content-addressed analogue of sortedColors.
func sortedLabels(labels map[string]string, order []string) []string {
	out := make([]string, 0, len(order))
	for _, id := range order {
		out = append(out, labels[id])
	}
	sort.Strings(out)
	return out
}

// sortedColors returns the colors of order's vertices as an ascending
// sorted slice — the "sorted tuple of vertex colors" spec.md §4.4(b)
// compares between two graphs at each refinement step.
func sortedColors(colors map[string]uint64, order []string) []uint64 {
	out := make([]uint64, 0, len(order))
	for _, id := range order {
		out = append(out, colors[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// histogram counts occurrences of each color.
func histogram(colors []uint64) map[uint64]int {
	h := make(map[uint64]int, len(colors))
	for _, c := range colors {
		h[c]++
	}
	return h
}

// histogramShape returns the sorted list of bucket sizes in h, ignoring
// which color id produced each bucket. Two SharedTable-backed colorings
// may assign different raw ids to corresponding color classes (ids are
// handed out in first-seen order), but the partition block sizes are
// themselves an isomorphism invariant — which is what lets Equivalent
// compare colorings of two graphs sharing one table by shape, as a cheap
// stabilization check alongside the raw-id comparison it also performs.
func histogramShape(h map[uint64]int) []int {
	shape := make([]int, 0, len(h))
	for _, count := range h {
		shape = append(shape, count)
	}
	sort.Ints(shape)
	return shape
}

func equalUint64Slices(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalHistograms(a, b map[uint64]int) bool {
	return equalIntSlices(histogramShape(a), histogramShape(b))
}

func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
