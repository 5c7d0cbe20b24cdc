package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/invariant"
)

func square(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(graph.NewVertex(id, "C", 0)))
	}
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}}
	for _, e := range edges {
		_, err := g.AddEdge(graph.Edge{From: e[0], To: e[1], Order: graph.ScalarOrder(1)})
		require.NoError(t, err)
	}
	return g
}

func TestComputeVertexCount(t *testing.T) {
	v := invariant.ComputeVertexCount(square(t))
	assert.Equal(t, invariant.Value{Kind: invariant.VertexCount, Int: 4}, v)
}

func TestComputeEdgeCount(t *testing.T) {
	v := invariant.ComputeEdgeCount(square(t))
	assert.Equal(t, 4, v.Int)
}

func TestComputeVertexDegree_SortedAscending(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(graph.NewVertex("hub", "C", 0)))
	for _, leaf := range []string{"l1", "l2", "l3"} {
		require.NoError(t, g.AddVertex(graph.NewVertex(leaf, "C", 0)))
		_, err := g.AddEdge(graph.Edge{From: "hub", To: leaf, Order: graph.ScalarOrder(1)})
		require.NoError(t, err)
	}

	v := invariant.ComputeVertexDegree(g)
	assert.Equal(t, []int{1, 1, 1, 3}, v.Degrees)
}

func TestComputeRank_Cycle4HasRank4(t *testing.T) {
	v := invariant.ComputeRank(square(t))
	assert.Equal(t, 4, v.Int)
}

func TestComputeRank_EmptyGraphIsZero(t *testing.T) {
	v := invariant.ComputeRank(graph.New())
	assert.Equal(t, 0, v.Int)
}

func TestComputeAlgebraicConnectivity_DisconnectedIsZero(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(graph.NewVertex("a", "C", 0)))
	require.NoError(t, g.AddVertex(graph.NewVertex("b", "C", 0)))
	// no edge -> both isolated -> disconnected

	v := invariant.ComputeAlgebraicConnectivity(g)
	assert.Equal(t, 0.0, v.Float)
}

func TestComputeAlgebraicConnectivity_ConnectedIsPositive(t *testing.T) {
	v := invariant.ComputeAlgebraicConnectivity(square(t))
	assert.Greater(t, v.Float, 0.0)
}

func TestValueEqual_DifferentKindsNeverEqual(t *testing.T) {
	a := invariant.Value{Kind: invariant.VertexCount, Int: 2}
	b := invariant.Value{Kind: invariant.EdgeCount, Int: 2}
	assert.False(t, a.Equal(b))
}

func TestValueKey_StableAcrossEqualValues(t *testing.T) {
	a := invariant.ComputeVertexDegree(square(t))
	b := invariant.ComputeVertexDegree(square(t))
	assert.Equal(t, a.Key(), b.Key())
}

// TestInvariantSoundness_RelabeledSquareAgrees checks spec.md §8 item 4 on
// one fixed relabeling: the square under a renamed vertex set must agree
// on vertex count, edge count, degree sequence and rank.
func TestInvariantSoundness_RelabeledSquareAgrees(t *testing.T) {
	g1 := square(t)

	g2 := graph.New()
	relabel := map[string]string{"a": "w", "b": "x", "c": "y", "d": "z"}
	for _, id := range g1.VertexIDs() {
		v, _ := g1.VertexByID(id)
		require.NoError(t, g2.AddVertex(graph.NewVertex(relabel[id], v.Element, v.Charge)))
	}
	for _, e := range g1.Edges() {
		_, err := g2.AddEdge(graph.Edge{From: relabel[e.From], To: relabel[e.To], Order: e.Order, StandardOrder: e.StandardOrder})
		require.NoError(t, err)
	}

	assert.True(t, invariant.ComputeVertexCount(g1).Equal(invariant.ComputeVertexCount(g2)))
	assert.True(t, invariant.ComputeEdgeCount(g1).Equal(invariant.ComputeEdgeCount(g2)))
	assert.True(t, invariant.ComputeVertexDegree(g1).Equal(invariant.ComputeVertexDegree(g2)))
	assert.True(t, invariant.ComputeRank(g1).Equal(invariant.ComputeRank(g2)))
}
