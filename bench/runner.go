package bench

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rxncluster/engine/cluster"
	"github.com/rxncluster/engine/internal/telemetry"
	"github.com/rxncluster/engine/reaction"
)

// Run times cluster.Run over records for every configuration in configs,
// in order, recording each Result into store (if non-nil) and into the
// package's prometheus metrics. It returns every Result in run order,
// even if store is nil — callers that only want the in-memory numbers
// don't need a persistence backend.
func Run(records []*reaction.Record, configs []NamedConfig, store *Store, logger *zap.Logger) ([]Result, error) {
	logger = telemetry.NewLogger(logger)

	results := make([]Result, 0, len(configs))
	for _, nc := range configs {
		start := time.Now()
		groups, within, flat, err := cluster.Run(records, nc.Config)
		elapsed := time.Since(start)
		if err != nil {
			return results, fmt.Errorf("bench: run %s: %w", nc.Name, err)
		}

		result := Result{
			ConfigName:     nc.Name,
			ClusterCount:   countClusters(groups, within, flat),
			ElapsedSeconds: elapsed.Seconds(),
		}
		results = append(results, result)
		recordResult(result)

		logger.Info("benchmark run complete",
			zap.String("configuration", nc.Name),
			zap.Int("cluster_count", result.ClusterCount),
			zap.Float64("elapsed_seconds", result.ElapsedSeconds),
		)

		if store != nil {
			if err := store.Put(result); err != nil {
				logger.Warn("failed to persist benchmark result",
					zap.String("configuration", nc.Name), zap.Error(err))
			}
		}
	}

	return results, nil
}

// countClusters reports the total number of leaf clusters a cluster.Run
// result contains: the flat count for a one-stage config, or the sum of
// per-group cluster counts for a two-stage one.
func countClusters(groups *cluster.GroupMap, within map[string]*cluster.ClusterMap, flat *cluster.ClusterMap) int {
	if flat != nil {
		return len(flat.Keys)
	}
	total := 0
	for _, key := range groups.Keys {
		total += len(within[key].Keys)
	}
	return total
}
