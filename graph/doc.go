// Package graph defines the attributed undirected graph used throughout
// rxncluster: vertices carry element/charge, edges carry order/standard_order.
//
// The type is intentionally narrow — it is not a general-purpose graph
// library. It supports exactly what reaction-center extraction, the
// invariants, the isomorphism oracle and the Weisfeiler-Lehman oracle need:
// deterministic insertion-ordered iteration, vertex-induced subgraphs, and
// an adjacency matrix (the invariant package builds the normalized
// Laplacian from that matrix).
//
// Graph is not safe for concurrent mutation; per the single-threaded,
// synchronous core described by the clustering engine, callers never share
// a *Graph across goroutines while mutating it.
package graph
