// Package wl implements 1-dimensional Weisfeiler-Lehman color refinement
// (spec.md §4.4): a per-graph canonical hash suitable for bucketing
// (Hash), and a pairwise equivalence test that refines two graphs in
// lockstep against a table of dense color ids shared between them
// (Equivalent). Neither proves isomorphism — 1-WL cannot distinguish
// every pair of non-isomorphic graphs (spec.md's K_3,3 vs. triangular
// prism example, pinned by TestEquivalent_CannotDistinguish3Regular) —
// but both are sound necessary conditions, which is what makes them
// useful as a bucketing filter or a fast oracle.
package wl
