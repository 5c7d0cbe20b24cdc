package invariant

import (
	"fmt"
	"strings"
)

// Kind names one invariant function. The zero value, None, names no
// invariant — cluster.Config treats Kind(none) as "no invariant bucketing
// stage" and never computes an invariant for it.
type Kind int

const (
	None Kind = iota
	VertexCount
	EdgeCount
	VertexDegree
	Rank
	AlgebraicConnectivity
	WLHash
)

// String renders the Kind the way configuration strings name it.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case VertexCount:
		return "vertex_count"
	case EdgeCount:
		return "edge_count"
	case VertexDegree:
		return "vertex_degree"
	case Rank:
		return "rank"
	case AlgebraicConnectivity:
		return "algebraic_connectivity"
	case WLHash:
		return "wl_hash"
	default:
		return fmt.Sprintf("invariant.Kind(%d)", int(k))
	}
}

// Value is the result of computing one invariant. Exactly one field is
// meaningful, selected by Kind. Value is not itself a comparable Go type
// (Degrees is a slice), so bucketing compares via Equal, and Key returns
// a string usable as a map key.
type Value struct {
	Kind    Kind
	Int     int     // VertexCount, EdgeCount, Rank
	Degrees []int   // VertexDegree: sorted ascending
	Float   float64 // AlgebraicConnectivity
	Hash    string  // WLHash: hex digest
}

// Equal reports whether v and other carry the same Kind and payload.
// AlgebraicConnectivity is compared by exact float equality, as spec.md
// §4.2 documents: this invariant is known to be fragile under
// floating-point noise, and this package does not hide that — see
// DESIGN.md for the open-question disposition.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case VertexCount, EdgeCount, Rank:
		return v.Int == other.Int
	case VertexDegree:
		if len(v.Degrees) != len(other.Degrees) {
			return false
		}
		for i := range v.Degrees {
			if v.Degrees[i] != other.Degrees[i] {
				return false
			}
		}
		return true
	case AlgebraicConnectivity:
		return v.Float == other.Float
	case WLHash:
		return v.Hash == other.Hash
	default:
		return false
	}
}

// Key returns a deterministic string encoding of v, suitable as a Go map
// key for group_by_invariant bucketing (spec.md §4.5).
func (v Value) Key() string {
	switch v.Kind {
	case VertexCount, EdgeCount, Rank:
		return fmt.Sprintf("%s:%d", v.Kind, v.Int)
	case VertexDegree:
		parts := make([]string, len(v.Degrees))
		for i, d := range v.Degrees {
			parts[i] = fmt.Sprintf("%d", d)
		}
		return fmt.Sprintf("%s:[%s]", v.Kind, strings.Join(parts, ","))
	case AlgebraicConnectivity:
		return fmt.Sprintf("%s:%g", v.Kind, v.Float)
	case WLHash:
		return fmt.Sprintf("%s:%s", v.Kind, v.Hash)
	default:
		return v.Kind.String()
	}
}
