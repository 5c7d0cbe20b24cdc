// Package isomorphism decides attributed-graph isomorphism under a single
// combined vertex/edge matcher (charge, element, and order all agreeing on
// the same candidate bijection). See Isomorphic and matcher.go for the
// policy; vf2.go holds the backtracking search.
package isomorphism
