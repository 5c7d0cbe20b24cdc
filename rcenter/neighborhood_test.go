package rcenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/rcenter"
)

func TestNeighborhood_ZeroHopsReturnsCenter(t *testing.T) {
	its := buildITS(t)
	center := rcenter.Extract(its)

	nb := rcenter.Neighborhood(its, center, 0)
	assert.ElementsMatch(t, center.VertexIDs(), nb.VertexIDs())
}

func TestNeighborhood_OneHopPullsInNeighbor(t *testing.T) {
	its := buildITS(t)
	center := rcenter.Extract(its) // {u, v}

	nb := rcenter.Neighborhood(its, center, 1)
	assert.ElementsMatch(t, []string{"u", "v", "w"}, nb.VertexIDs())
	assert.True(t, nb.HasEdge("v", "w"))
}

func TestNeighborhood_BeyondGraphDiameterIsStable(t *testing.T) {
	its := buildITS(t)
	center := rcenter.Extract(its)

	nb5 := rcenter.Neighborhood(its, center, 5)
	nb6 := rcenter.Neighborhood(its, center, 6)
	assert.ElementsMatch(t, nb5.VertexIDs(), nb6.VertexIDs())
	require.Equal(t, its.VertexCount(), nb5.VertexCount())
}
