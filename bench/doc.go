// Package bench times cluster.Run over a list of configurations and
// persists {clusters, configuration, elapsed_seconds, cluster_count}
// tuples (spec.md §6's benchmarking collaborator), grounded in
// original_source/profiling.py and profiling_nbhood.py. Persistence uses
// github.com/dgraph-io/badger/v4 as an embedded store; elapsed time and
// cluster counts are additionally exposed as
// github.com/prometheus/client_golang metrics so a running benchmark can
// be scraped. The clustering core itself stays synchronous and
// storage-free (spec.md §5); only this package does disk I/O and wall-clock
// timing.
package bench
