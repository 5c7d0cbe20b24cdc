// Package invariant computes pure, orderable fingerprints of an attributed
// graph (spec.md §4.2): vertex count, edge count, the sorted vertex-degree
// sequence, adjacency-matrix rank, algebraic connectivity, and a
// Weisfeiler-Lehman histogram. All invariants are consistent — isomorphic
// graphs yield equal invariants — but none are complete on their own;
// they are a bucketing filter ahead of a full oracle, never a
// replacement for one.
package invariant
