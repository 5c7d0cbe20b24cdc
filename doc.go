// Package engine groups chemical reactions by reaction-center
// equivalence.
//
// A reaction is represented as an attributed ITS (imaginary transition
// state) graph: vertices are atoms (element, charge), edges are bonds
// (an order that may change between educt and product side, plus a
// standard bond order). Clustering proceeds in up to two stages — a
// cheap invariant-based bucketing pass followed by an exact equivalence
// oracle within each bucket:
//
//	graph/       — the attributed graph type reactions are built from
//	rcenter/     — extracts the reaction center: the vertex-induced
//	               subgraph over atoms touched by a changing bond
//	invariant/   — cheap, coarse graph invariants used to bucket
//	               reaction centers before any expensive comparison
//	isomorphism/ — an attribute-aware VF2-style equivalence oracle
//	wl/          — Weisfeiler-Lehman color refinement, both as a
//	               canonical hash and as a pairwise equivalence test
//	cluster/     — wires invariants and oracles into the two-stage
//	               (or one-stage) clustering engine
//	reaction/    — the Record type clustering operates over
//	reactionio/  — gzip+JSONL archive loading
//	bench/       — timing harness and persisted benchmark results
//	cmd/rxncluster/ — the CLI: `rxncluster cluster` and `rxncluster bench`
//
// See SPEC_FULL.md and DESIGN.md for the full module breakdown and the
// design rationale behind each package.
package engine
