package cluster

import (
	"fmt"

	"github.com/rxncluster/engine/graph"
	"github.com/rxncluster/engine/invariant"
	"github.com/rxncluster/engine/isomorphism"
	"github.com/rxncluster/engine/rcenter"
	"github.com/rxncluster/engine/reaction"
	"github.com/rxncluster/engine/wl"
)

func (c *Config) center(r *reaction.Record) *graph.Graph {
	if !c.extractCenters {
		return r.ITS
	}
	return r.Center(rcenter.Extract)
}

// computeInvariant evaluates cfg's configured invariant over g. Callers
// only reach here with a non-None kind (ClusterFlat never buckets).
func (c *Config) computeInvariant(g *graph.Graph) (invariant.Value, error) {
	switch c.invariantKind {
	case invariant.VertexCount:
		return invariant.ComputeVertexCount(g), nil
	case invariant.EdgeCount:
		return invariant.ComputeEdgeCount(g), nil
	case invariant.VertexDegree:
		return invariant.ComputeVertexDegree(g), nil
	case invariant.Rank:
		return invariant.ComputeRank(g), nil
	case invariant.WLHash:
		return invariant.ComputeWLHash(g, c.hashOpts), nil
	default:
		return invariant.Value{}, fmt.Errorf("cluster: computeInvariant: %w", invariant.ErrUnknownKind)
	}
}

// equivalent decides whether candidate and representative are equivalent
// under cfg's configured oracle. table is reused across every comparison
// within one ClusterFlat run (one bucket, or the whole flat list) and must
// never cross a bucket boundary — see spec.md §5 and the fresh table
// ClusterFlat allocates per call.
func (c *Config) equivalent(candidate, representative *graph.Graph, table *wl.SharedTable) (bool, error) {
	switch c.oracle {
	case OracleIsomorphism:
		return isomorphism.Isomorphic(candidate, representative, c.isoOpts)
	case OracleWLHash:
		return wl.Hash(candidate, c.hashOpts) == wl.Hash(representative, c.hashOpts), nil
	case OracleWLShared:
		return wl.Equivalent(candidate, representative, table, c.equivOpts), nil
	default:
		return false, fmt.Errorf("cluster: equivalent: oracle %s: %w", c.oracle, ErrUnknownOracle)
	}
}

// ClusterFlat clusters records in input order under cfg's oracle (spec.md
// §4.5). Each candidate's center is compared against the representative
// (first-inserted member) of every existing cluster in insertion order; it
// joins the first match, or starts a new cluster otherwise. cluster_0 is
// guaranteed to contain records[0] when records is non-empty.
//
// If cfg's oracle is OracleNone, every record lands in a single cluster_0
// (spec.md §4.5's "no clustering" mode) — valid only as the one-stage leg
// of a two-stage config, since NewConfig rejects (None, None) outright.
func ClusterFlat(records []*reaction.Record, cfg *Config) (*ClusterMap, error) {
	result := newClusterMap()
	if len(records) == 0 {
		return result, nil
	}

	if cfg.oracle == OracleNone {
		key := result.newCluster(records[0])
		for _, r := range records[1:] {
			result.append(key, r)
		}
		return result, nil
	}

	table := wl.NewSharedTable()
	representatives := make(map[string]*graph.Graph, len(result.Clusters))

	for _, r := range records {
		center := cfg.center(r)

		placed := false
		for _, key := range result.Keys {
			ok, err := cfg.equivalent(center, representatives[key], table)
			if err != nil {
				return nil, err
			}
			if ok {
				result.append(key, r)
				placed = true
				break
			}
		}
		if !placed {
			key := result.newCluster(r)
			representatives[key] = center
		}
	}

	return result, nil
}

// GroupByInvariant partitions records into group_<n> buckets by cfg's
// configured invariant equality (spec.md §4.5), in the same insertion-order
// policy as ClusterFlat. cfg's oracle is irrelevant here and ignored.
func GroupByInvariant(records []*reaction.Record, cfg *Config) (*GroupMap, error) {
	result := newGroupMap()
	if len(records) == 0 {
		return result, nil
	}

	values := make(map[string]invariant.Value, len(result.Groups))

	for _, r := range records {
		center := cfg.center(r)
		v, err := cfg.computeInvariant(center)
		if err != nil {
			return nil, err
		}

		placed := false
		for _, key := range result.Keys {
			if values[key].Equal(v) {
				result.append(key, r)
				placed = true
				break
			}
		}
		if !placed {
			key := result.newGroup(r)
			values[key] = v
		}
	}

	return result, nil
}

// ClusterWithinBuckets runs ClusterFlat independently over each bucket of
// groups, in group order, returning a map keyed by group id. Each bucket
// gets its own fresh SharedTable via its own ClusterFlat call, so no color
// state leaks between unrelated invariant buckets (spec.md §5).
func ClusterWithinBuckets(groups *GroupMap, cfg *Config) (map[string]*ClusterMap, error) {
	out := make(map[string]*ClusterMap, len(groups.Keys))
	for _, key := range groups.Keys {
		clusters, err := ClusterFlat(groups.Groups[key], cfg)
		if err != nil {
			return nil, fmt.Errorf("cluster: ClusterWithinBuckets: bucket %s: %w", key, err)
		}
		out[key] = clusters
	}
	return out, nil
}

// Run drives the full pipeline cfg describes: GroupByInvariant followed by
// ClusterWithinBuckets for a two-stage Config, or a single ClusterFlat pass
// for a one-stage Config (spec.md §4.6). It is the one call most callers
// need instead of choosing between the three primitives by hand.
func Run(records []*reaction.Record, cfg *Config) (*GroupMap, map[string]*ClusterMap, *ClusterMap, error) {
	if !cfg.TwoStage() {
		flat, err := ClusterFlat(records, cfg)
		return nil, nil, flat, err
	}

	groups, err := GroupByInvariant(records, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	within, err := ClusterWithinBuckets(groups, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return groups, within, nil, nil
}
