package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxncluster/engine/cluster"
	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/invariant"
	"github.com/rxncluster/engine/reaction"
)

// changingPair builds a two-vertex ITS whose only edge u-v is changing,
// matching spec.md §8's S1 scenario shape.
func changingPair(t *testing.T, id, elementU, elementV string) *reaction.Record {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddVertex(graph.NewVertex("u", elementU, 0)))
	require.NoError(t, g.AddVertex(graph.NewVertex("v", elementV, 0)))
	_, err := g.AddEdge(graph.Edge{From: "u", To: "v", Order: graph.PairOrder(1, 2), StandardOrder: 1})
	require.NoError(t, err)
	return reaction.New(id, g)
}

func TestClusterFlat_Singleton(t *testing.T) {
	r := changingPair(t, "r1", "C", "O")
	cfg, err := cluster.NewConfig(cluster.WithOracle(cluster.OracleIsomorphism))
	require.NoError(t, err)

	result, err := cluster.ClusterFlat([]*reaction.Record{r}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"cluster_0"}, result.Keys)
	assert.Equal(t, []*reaction.Record{r}, result.Clusters["cluster_0"])
}

func TestClusterFlat_TwoIsomorphicReactionsShareACluster(t *testing.T) {
	r1 := changingPair(t, "r1", "C", "O")
	r2 := changingPair(t, "r2", "C", "O")
	cfg, err := cluster.NewConfig(cluster.WithOracle(cluster.OracleIsomorphism))
	require.NoError(t, err)

	result, err := cluster.ClusterFlat([]*reaction.Record{r1, r2}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"cluster_0"}, result.Keys)
	assert.Equal(t, []*reaction.Record{r1, r2}, result.Clusters["cluster_0"])
}

// TestClusterFlat_ElementDifferingReactionsSplitUnderIsomorphism pins S3's
// isomorphism-oracle half: same shape, differing element, must split.
func TestClusterFlat_ElementDifferingReactionsSplitUnderIsomorphism(t *testing.T) {
	r1 := changingPair(t, "r1", "C", "O")
	r2 := changingPair(t, "r2", "N", "O")
	cfg, err := cluster.NewConfig(cluster.WithOracle(cluster.OracleIsomorphism))
	require.NoError(t, err)

	result, err := cluster.ClusterFlat([]*reaction.Record{r1, r2}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"cluster_0", "cluster_1"}, result.Keys)
	assert.Equal(t, []*reaction.Record{r1}, result.Clusters["cluster_0"])
	assert.Equal(t, []*reaction.Record{r2}, result.Clusters["cluster_1"])
}

// TestClusterFlat_ElementDifferingReactionsCollideUnderWLHashWithoutAttrs
// pins S3's WL-hash half: without attribute awareness, the two still
// collide into one cluster (documented shape-only behavior).
func TestClusterFlat_ElementDifferingReactionsCollideUnderWLHashWithoutAttrs(t *testing.T) {
	r1 := changingPair(t, "r1", "C", "O")
	r2 := changingPair(t, "r2", "N", "O")
	cfg, err := cluster.NewConfig(cluster.WithOracle(cluster.OracleWLHash))
	require.NoError(t, err)

	result, err := cluster.ClusterFlat([]*reaction.Record{r1, r2}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"cluster_0"}, result.Keys)
	assert.Equal(t, []*reaction.Record{r1, r2}, result.Clusters["cluster_0"])
}

func threeVertexReaction(t *testing.T, id string) *reaction.Record {
	t.Helper()
	g := graph.New()
	for _, v := range []string{"u", "v", "w"} {
		require.NoError(t, g.AddVertex(graph.NewVertex(v, "C", 0)))
	}
	_, err := g.AddEdge(graph.Edge{From: "u", To: "v", Order: graph.PairOrder(1, 2), StandardOrder: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(graph.Edge{From: "v", To: "w", Order: graph.PairOrder(1, 2), StandardOrder: 1})
	require.NoError(t, err)
	return reaction.New(id, g)
}

// TestGroupByInvariant_VertexCount pins S4: three reactions with center
// vertex counts 2, 2, 3 split into two groups by vertex_count.
func TestGroupByInvariant_VertexCount(t *testing.T) {
	r1 := changingPair(t, "r1", "C", "O")
	r2 := changingPair(t, "r2", "C", "O")
	r3 := threeVertexReaction(t, "r3")

	cfg, err := cluster.NewConfig(
		cluster.WithInvariant(invariant.VertexCount),
		cluster.WithOracle(cluster.OracleIsomorphism),
	)
	require.NoError(t, err)

	groups, err := cluster.GroupByInvariant([]*reaction.Record{r1, r2, r3}, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"group_0", "group_1"}, groups.Keys)
	assert.Equal(t, []*reaction.Record{r1, r2}, groups.Groups["group_0"])
	assert.Equal(t, []*reaction.Record{r3}, groups.Groups["group_1"])
}

// TestRun_TwoStage pins a shape close to S5: two invariant buckets, with
// isomorphism splitting one of them internally.
func TestRun_TwoStage(t *testing.T) {
	r1 := changingPair(t, "r1", "C", "O")
	r2 := changingPair(t, "r2", "N", "O")
	r3 := changingPair(t, "r3", "C", "O")
	r4 := threeVertexReaction(t, "r4")
	r5 := threeVertexReaction(t, "r5")

	cfg, err := cluster.NewConfig(
		cluster.WithInvariant(invariant.VertexCount),
		cluster.WithOracle(cluster.OracleIsomorphism),
	)
	require.NoError(t, err)

	groups, within, flat, err := cluster.Run([]*reaction.Record{r1, r2, r3, r4, r5}, cfg)
	require.NoError(t, err)
	require.Nil(t, flat)
	require.NotNil(t, groups)

	assert.Equal(t, []string{"group_0", "group_1"}, groups.Keys)

	g0 := within["group_0"]
	assert.Equal(t, []string{"cluster_0", "cluster_1"}, g0.Keys)
	assert.Equal(t, []*reaction.Record{r1, r3}, g0.Clusters["cluster_0"])
	assert.Equal(t, []*reaction.Record{r2}, g0.Clusters["cluster_1"])

	g1 := within["group_1"]
	assert.Equal(t, []string{"cluster_0"}, g1.Keys)
	assert.Equal(t, []*reaction.Record{r4, r5}, g1.Clusters["cluster_0"])
}

func TestNewConfig_RejectsBothNone(t *testing.T) {
	_, err := cluster.NewConfig()
	assert.ErrorIs(t, err, cluster.ErrInvalidCombination)
}

func TestNewConfig_RejectsAlgebraicConnectivity(t *testing.T) {
	_, err := cluster.NewConfig(
		cluster.WithInvariant(invariant.AlgebraicConnectivity),
		cluster.WithOracle(cluster.OracleIsomorphism),
	)
	assert.ErrorIs(t, err, cluster.ErrInvalidCombination)
}

// TestClusterFlat_PartitionsTheInput pins spec.md §8 item 1: flattening
// the output multiset must equal the input multiset, and clusters must be
// pairwise disjoint.
func TestClusterFlat_PartitionsTheInput(t *testing.T) {
	records := []*reaction.Record{
		changingPair(t, "r1", "C", "O"),
		changingPair(t, "r2", "N", "O"),
		changingPair(t, "r3", "C", "O"),
		threeVertexReaction(t, "r4"),
	}
	cfg, err := cluster.NewConfig(cluster.WithOracle(cluster.OracleIsomorphism))
	require.NoError(t, err)

	result, err := cluster.ClusterFlat(records, cfg)
	require.NoError(t, err)

	flattened := result.Flatten()
	assert.ElementsMatch(t, records, flattened)

	seen := make(map[*reaction.Record]string)
	for key, members := range result.Clusters {
		for _, m := range members {
			if prior, ok := seen[m]; ok {
				t.Fatalf("record %s appears in both %s and %s", m.ID, prior, key)
			}
			seen[m] = key
		}
	}
}
