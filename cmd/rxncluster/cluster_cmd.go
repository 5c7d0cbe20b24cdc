package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rxncluster/engine/cluster"
	"github.com/rxncluster/engine/internal/telemetry"
	"github.com/rxncluster/engine/reactionio"
)

// clusterOutput is the JSON shape printed to stdout: one entry per
// invariant-group key (a single "" key for one-stage configurations),
// each holding the cluster keys and the reaction IDs they contain.
type clusterOutput struct {
	Groups []clusterGroup `json:"groups"`
}

type clusterGroup struct {
	Group    string          `json:"group,omitempty"`
	Clusters []clusterBucket `json:"clusters"`
}

type clusterBucket struct {
	Cluster string   `json:"cluster"`
	Members []string `json:"members"`
}

func newClusterCmd() *cobra.Command {
	var (
		inPath    string
		invariant string
		oracle    string
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster reactions in an archive by reaction-center equivalence",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseInvariant(invariant)
			if err != nil {
				return err
			}
			oracleKind, err := parseOracle(oracle)
			if err != nil {
				return err
			}

			cfg, err := cluster.NewConfig(
				cluster.WithInvariant(kind),
				cluster.WithOracle(oracleKind),
			)
			if err != nil {
				return fmt.Errorf("rxncluster: build configuration: %w", err)
			}

			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("rxncluster: open %s: %w", inPath, err)
			}
			defer f.Close()

			records, err := reactionio.Load(f, telemetry.Nop())
			if err != nil {
				return fmt.Errorf("rxncluster: load %s: %w", inPath, err)
			}

			groups, within, flat, err := cluster.Run(records, cfg)
			if err != nil {
				return fmt.Errorf("rxncluster: cluster: %w", err)
			}

			out := renderClusterOutput(groups, within, flat)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to a gzip+JSONL reaction archive")
	cmd.Flags().StringVar(&invariant, "invariant", "none", "coarse invariant: none, vertex_count, edge_count, vertex_degree, rank, algebraic_connectivity, wl_hash")
	cmd.Flags().StringVar(&oracle, "oracle", "isomorphism", "equivalence oracle: isomorphism, wl_nx, wl_si")
	cmd.MarkFlagRequired("in")

	return cmd
}

func renderClusterOutput(groups *cluster.GroupMap, within map[string]*cluster.ClusterMap, flat *cluster.ClusterMap) clusterOutput {
	if flat != nil {
		return clusterOutput{Groups: []clusterGroup{{Clusters: renderBuckets(flat)}}}
	}

	out := clusterOutput{Groups: make([]clusterGroup, 0, len(groups.Keys))}
	for _, key := range groups.Keys {
		out.Groups = append(out.Groups, clusterGroup{
			Group:    key,
			Clusters: renderBuckets(within[key]),
		})
	}
	return out
}

func renderBuckets(cm *cluster.ClusterMap) []clusterBucket {
	buckets := make([]clusterBucket, 0, len(cm.Keys))
	for _, key := range cm.Keys {
		members := make([]string, 0, len(cm.Clusters[key]))
		for _, rec := range cm.Clusters[key] {
			members = append(members, rec.ID)
		}
		buckets = append(buckets, clusterBucket{Cluster: key, Members: members})
	}
	return buckets
}
