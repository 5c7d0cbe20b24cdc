package cluster

import (
	"fmt"

	"github.com/rxncluster/engine/invariant"
	"github.com/rxncluster/engine/isomorphism"
	"github.com/rxncluster/engine/wl"
)

// Oracle is the equivalence decision procedure a Config selects — the
// closed sum type spec.md §9 calls for in place of the reference's
// string-named dispatch.
type Oracle int

const (
	// OracleNone performs no clustering: ClusterFlat returns every input
	// record as a single cluster_0. NewConfig accepts it only together
	// with a non-None Invariant, so each invariant bucket becomes one
	// cluster; (None, None) is rejected since it does no work at all.
	OracleNone Oracle = iota
	// OracleIsomorphism runs the attribute-matching VF2-style oracle.
	OracleIsomorphism
	// OracleWLHash clusters by WL hash equality ("wl_nx" in spec.md's
	// naming) — two centers are equivalent iff wl.Hash agrees.
	OracleWLHash
	// OracleWLShared clusters by the pairwise shared-table lockstep test
	// ("wl_si") — wl.Equivalent.
	OracleWLShared
)

func (o Oracle) String() string {
	switch o {
	case OracleNone:
		return "none"
	case OracleIsomorphism:
		return "isomorphism"
	case OracleWLHash:
		return "wl_nx"
	case OracleWLShared:
		return "wl_si"
	default:
		return fmt.Sprintf("Oracle(%d)", int(o))
	}
}

// Config is the validated (invariant, oracle) pair plus oracle parameters
// that selects and drives a clustering run (spec.md §4.6).
type Config struct {
	invariantKind invariant.Kind
	oracle        Oracle

	hashOpts  wl.HashOptions
	equivOpts wl.EquivOptions
	isoOpts   isomorphism.Options

	extractCenters bool
}

// Option configures a Config under construction.
type Option func(*Config)

// WithInvariant selects the bucketing invariant. Defaults to
// invariant.None (one-stage clustering).
func WithInvariant(kind invariant.Kind) Option {
	return func(c *Config) { c.invariantKind = kind }
}

// WithOracle selects the equivalence oracle. Defaults to OracleNone.
func WithOracle(oracle Oracle) Option {
	return func(c *Config) { c.oracle = oracle }
}

// WithWLHashOptions sets the parameters used when Oracle is OracleWLHash.
func WithWLHashOptions(opts wl.HashOptions) Option {
	return func(c *Config) { c.hashOpts = opts }
}

// WithWLEquivOptions sets the parameters used when Oracle is
// OracleWLShared.
func WithWLEquivOptions(opts wl.EquivOptions) Option {
	return func(c *Config) { c.equivOpts = opts }
}

// WithIsomorphismOptions sets the parameters used when Oracle is
// OracleIsomorphism.
func WithIsomorphismOptions(opts isomorphism.Options) Option {
	return func(c *Config) { c.isoOpts = opts }
}

// WithExtractCenters, when true (the default), compares and buckets by
// each record's extracted reaction center rather than its raw ITS graph.
// Tests that want to exercise the engine directly on pre-built centers can
// turn this off.
func WithExtractCenters(extract bool) Option {
	return func(c *Config) { c.extractCenters = extract }
}

// NewConfig builds a Config from opts, applying spec.md §4.6's validation:
// (Invariant != None, Oracle != None) and (Invariant == None, Oracle !=
// None) are valid; both-None and AlgebraicConnectivity-with-any-oracle are
// rejected before any work begins, per the error taxonomy in spec.md §7.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		invariantKind:  invariant.None,
		oracle:         OracleNone,
		extractCenters: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.invariantKind == invariant.None && c.oracle == OracleNone {
		return nil, fmt.Errorf("cluster: NewConfig: invariant=none, oracle=none: %w", ErrInvalidCombination)
	}
	if c.invariantKind == invariant.AlgebraicConnectivity {
		return nil, fmt.Errorf("cluster: NewConfig: algebraic_connectivity is not a valid bucketing invariant: %w", ErrInvalidCombination)
	}

	return c, nil
}

// Invariant reports the configured bucketing invariant.
func (c *Config) Invariant() invariant.Kind { return c.invariantKind }

// OracleKind reports the configured oracle.
func (c *Config) OracleKind() Oracle { return c.oracle }

// TwoStage reports whether this Config runs GroupByInvariant followed by
// ClusterWithinBuckets (true) or a single flat ClusterFlat pass (false).
func (c *Config) TwoStage() bool { return c.invariantKind != invariant.None }
