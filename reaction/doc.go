// Package reaction defines the Record type clustered by the engine: an
// opaque ID, an ITS graph, an optional class label, and a memoized
// reaction center computed once and reused (spec.md §3's "Lifecycle").
package reaction
