// Package telemetry provides the shared, optional *zap.Logger plumbing for
// the outer I/O layers (reactionio, bench, cmd/rxncluster). The clustering
// core in graph/rcenter/invariant/isomorphism/wl/cluster never imports this
// package — it is synchronous and log-free by design (spec.md §5).
package telemetry

import "go.uber.org/zap"

// NewLogger wraps an existing *zap.Logger, falling back to Nop() if logger
// is nil — the same "optional, defaults to inert" shape the teacher uses
// for its functional-options configs (nil RNG means deterministic, nil
// WeightFn means the default).
func NewLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}

// Nop returns a logger that discards everything, for callers (tests,
// one-shot CLI invocations) that don't want output.
func Nop() *zap.Logger {
	return zap.NewNop()
}
