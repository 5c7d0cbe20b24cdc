package bench

import "github.com/rxncluster/engine/cluster"

// NamedConfig pairs a cluster.Config with a human-readable name (the
// fingerprint used as the persistence key and the metrics label, e.g.
// "vertex_count+isomorphism"). Callers build the list of configs to
// benchmark this way instead of Run inventing names from Config's
// unexported fields.
type NamedConfig struct {
	Name   string
	Config *cluster.Config
}

// Result is one benchmark run's outcome — the tuple spec.md §6 asks the
// benchmarking collaborator to persist.
type Result struct {
	ConfigName     string  `json:"configuration"`
	ClusterCount   int     `json:"cluster_count"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}
