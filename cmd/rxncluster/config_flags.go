package main

import (
	"fmt"

	"github.com/rxncluster/engine/cluster"
	"github.com/rxncluster/engine/invariant"
)

// parseInvariant maps a flag value to the invariant.Kind enum, "none"
// (the default) selecting one-stage clustering.
func parseInvariant(name string) (invariant.Kind, error) {
	switch name {
	case "", "none":
		return invariant.None, nil
	case "vertex_count":
		return invariant.VertexCount, nil
	case "edge_count":
		return invariant.EdgeCount, nil
	case "vertex_degree":
		return invariant.VertexDegree, nil
	case "rank":
		return invariant.Rank, nil
	case "algebraic_connectivity":
		return invariant.AlgebraicConnectivity, nil
	case "wl_hash":
		return invariant.WLHash, nil
	default:
		return invariant.None, fmt.Errorf("rxncluster: unknown --invariant %q", name)
	}
}

// parseOracle maps a flag value to the cluster.Oracle enum.
func parseOracle(name string) (cluster.Oracle, error) {
	switch name {
	case "", "none":
		return cluster.OracleNone, nil
	case "isomorphism":
		return cluster.OracleIsomorphism, nil
	case "wl_nx":
		return cluster.OracleWLHash, nil
	case "wl_si":
		return cluster.OracleWLShared, nil
	default:
		return cluster.OracleNone, fmt.Errorf("rxncluster: unknown --oracle %q", name)
	}
}
