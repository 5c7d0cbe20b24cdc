package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rxncluster/engine/bench"
	"github.com/rxncluster/engine/cluster"
	"github.com/rxncluster/engine/internal/telemetry"
	"github.com/rxncluster/engine/invariant"
	"github.com/rxncluster/engine/reactionio"
)

// invariantKinds is every invariant.Kind NewConfig accepts as a bucketing
// invariant, algebraic_connectivity excluded since spec.md §4.6 forbids it.
var invariantKinds = []invariant.Kind{
	invariant.None,
	invariant.VertexCount,
	invariant.EdgeCount,
	invariant.VertexDegree,
	invariant.Rank,
	invariant.WLHash,
}

var oracleKinds = []cluster.Oracle{
	cluster.OracleNone,
	cluster.OracleIsomorphism,
	cluster.OracleWLHash,
	cluster.OracleWLShared,
}

func newBenchCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark every valid (invariant, oracle) configuration on an archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("rxncluster: open %s: %w", inPath, err)
			}
			defer f.Close()

			records, err := reactionio.Load(f, telemetry.Nop())
			if err != nil {
				return fmt.Errorf("rxncluster: load %s: %w", inPath, err)
			}

			store, err := bench.OpenStore(outPath)
			if err != nil {
				return fmt.Errorf("rxncluster: open store %s: %w", outPath, err)
			}
			defer store.Close()

			configs := allValidConfigs()

			results, err := bench.Run(records, configs, store, telemetry.Nop())
			if err != nil {
				return fmt.Errorf("rxncluster: bench: %w", err)
			}

			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s clusters=%-6d elapsed=%.6fs\n", r.ConfigName, r.ClusterCount, r.ElapsedSeconds)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to a gzip+JSONL reaction archive")
	cmd.Flags().StringVar(&outPath, "out", "", "path to the badger database results are persisted to (empty for in-memory)")
	cmd.MarkFlagRequired("in")

	return cmd
}

// allValidConfigs enumerates the full (invariant, oracle) cross product
// NewConfig accepts, skipping the (None, None) combination it rejects.
func allValidConfigs() []bench.NamedConfig {
	var configs []bench.NamedConfig
	for _, kind := range invariantKinds {
		for _, oracle := range oracleKinds {
			if kind == invariant.None && oracle == cluster.OracleNone {
				continue
			}
			cfg, err := cluster.NewConfig(cluster.WithInvariant(kind), cluster.WithOracle(oracle))
			if err != nil {
				continue
			}
			configs = append(configs, bench.NamedConfig{
				Name:   fmt.Sprintf("%s+%s", kind.String(), oracle.String()),
				Config: cfg,
			})
		}
	}
	return configs
}
