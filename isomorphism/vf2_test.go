package isomorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/isomorphism"
)

func twoVertex(t *testing.T, elementA, elementB string, chargeA, chargeB int, order graph.Order) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddVertex(graph.NewVertex("u", elementA, chargeA)))
	require.NoError(t, g.AddVertex(graph.NewVertex("v", elementB, chargeB)))
	_, err := g.AddEdge(graph.Edge{From: "u", To: "v", Order: order})
	require.NoError(t, err)
	return g
}

func TestIsomorphic_NilGraph(t *testing.T) {
	_, err := isomorphism.Isomorphic(nil, graph.New(), isomorphism.Options{})
	assert.ErrorIs(t, err, isomorphism.ErrNilGraph)
}

func TestIsomorphic_DifferentVertexCountIsFalse(t *testing.T) {
	g1 := graph.New()
	require.NoError(t, g1.AddVertex(graph.NewVertex("a", "C", 0)))
	g2 := graph.New()

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsomorphic_EmptyGraphsMatch(t *testing.T) {
	ok, err := isomorphism.Isomorphic(graph.New(), graph.New(), isomorphism.Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsomorphic_IdenticalShapesMatch(t *testing.T) {
	g1 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 2))
	g2 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 2))

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsomorphic_RelabeledVerticesStillMatch pins that a renumbered but
// structurally and attributewise identical graph is still accepted — the
// search must not depend on vertex IDs lining up.
func TestIsomorphic_RelabeledVerticesStillMatch(t *testing.T) {
	g1 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 2))

	g2 := graph.New()
	require.NoError(t, g2.AddVertex(graph.NewVertex("x", "O", 0)))
	require.NoError(t, g2.AddVertex(graph.NewVertex("y", "C", 0)))
	_, err := g2.AddEdge(graph.Edge{From: "y", To: "x", Order: graph.PairOrder(1, 2)})
	require.NoError(t, err)

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsomorphic_DifferingElementIsFalse(t *testing.T) {
	g1 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 2))
	g2 := twoVertex(t, "N", "O", 0, 0, graph.PairOrder(1, 2))

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsomorphic_DifferingChargeIsFalse(t *testing.T) {
	g1 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 2))
	g2 := twoVertex(t, "C", "O", 1, 0, graph.PairOrder(1, 2))

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsomorphic_DifferingOrderIsFalse(t *testing.T) {
	g1 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 2))
	g2 := twoVertex(t, "C", "O", 0, 0, graph.PairOrder(1, 3))

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsomorphic_RejectsPerAttributePermutationAlignment pins spec.md §4.3's
// documented bug fix: a mapping that satisfies each matcher individually
// under a DIFFERENT permutation must not be accepted — only a single
// bijection satisfying all three jointly counts.
func TestIsomorphic_RejectsPerAttributePermutationAlignment(t *testing.T) {
	g1 := graph.New()
	require.NoError(t, g1.AddVertex(graph.NewVertex("a", "C", 0)))
	require.NoError(t, g1.AddVertex(graph.NewVertex("b", "N", 1)))
	_, err := g1.AddEdge(graph.Edge{From: "a", To: "b", Order: graph.ScalarOrder(1)})
	require.NoError(t, err)

	// g2 has the same multiset of elements and the same multiset of
	// charges, but paired differently: element alone is satisfied by
	// a->y, b->x and charge alone by a->x, b->y, while no single mapping
	// satisfies both.
	g2 := graph.New()
	require.NoError(t, g2.AddVertex(graph.NewVertex("x", "N", 0)))
	require.NoError(t, g2.AddVertex(graph.NewVertex("y", "C", 1)))
	_, err = g2.AddEdge(graph.Edge{From: "x", To: "y", Order: graph.ScalarOrder(1)})
	require.NoError(t, err)

	ok, err := isomorphism.Isomorphic(g1, g2, isomorphism.Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsomorphic_TriangleVsPathIsFalse(t *testing.T) {
	triangle := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, triangle.AddVertex(graph.NewVertex(id, "C", 0)))
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		_, err := triangle.AddEdge(graph.Edge{From: e[0], To: e[1], Order: graph.ScalarOrder(1)})
		require.NoError(t, err)
	}

	path := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, path.AddVertex(graph.NewVertex(id, "C", 0)))
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}} {
		_, err := path.AddEdge(graph.Edge{From: e[0], To: e[1], Order: graph.ScalarOrder(1)})
		require.NoError(t, err)
	}

	ok, err := isomorphism.Isomorphic(triangle, path, isomorphism.Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}
