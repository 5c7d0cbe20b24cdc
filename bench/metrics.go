package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// elapsedSeconds tracks wall-clock duration of a single benchmark run,
	// labeled by the configuration name so distinct (invariant, oracle)
	// pairs can be compared on a scraped dashboard.
	elapsedSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rxncluster",
		Subsystem: "bench",
		Name:      "elapsed_seconds",
		Help:      "Wall-clock duration of one benchmark run",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	}, []string{"configuration"})

	// clusterCount is the number of leaf clusters the most recent run of a
	// configuration produced (summed over all groups, for two-stage
	// configs).
	clusterCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "rxncluster",
		Subsystem: "bench",
		Name:      "cluster_count",
		Help:      "Cluster count produced by the most recent benchmark run",
	}, []string{"configuration"})
)

func recordResult(r Result) {
	elapsedSeconds.WithLabelValues(r.ConfigName).Observe(r.ElapsedSeconds)
	clusterCount.WithLabelValues(r.ConfigName).Set(float64(r.ClusterCount))
}
