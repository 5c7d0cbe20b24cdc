// Package rcenter extracts the reaction center of an ITS graph: the
// vertex-induced subgraph over atoms incident to a bond whose order
// changes during the reaction (spec.md §4.1).
package rcenter
