// Package cluster orchestrates reaction-center extraction, invariant
// bucketing, and oracle-based equivalence clustering into the two
// operations spec.md §4.5 names: a one-stage ClusterFlat and a two-stage
// GroupByInvariant + ClusterWithinBuckets. Config (config.go) is the closed
// (Invariant, Oracle) pair that selects which path runs and validates the
// combination up front, per §4.6.
package cluster
