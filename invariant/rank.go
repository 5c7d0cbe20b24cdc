package invariant

import (
	"math"

	"github.com/rxncluster/engine/graph"
)

// rankTolerance is the absolute threshold below which a pivot is treated
// as zero during Gaussian elimination.
const rankTolerance = 1e-9

// ComputeRank returns the rank of g's adjacency matrix over the reals,
// via Gaussian elimination with partial pivoting. This is the Go
// equivalent of the reference implementation's
// numpy.linalg.matrix_rank(nx.to_numpy_array(g)), without pulling in a
// dense linear-algebra dependency for a single row-echelon reduction.
// Complexity: O(n^3).
func ComputeRank(g *graph.Graph) Value {
	m, _ := g.AdjacencyMatrix()
	return Value{Kind: Rank, Int: matrixRank(m)}
}

func matrixRank(m [][]float64) int {
	n := len(m)
	if n == 0 {
		return 0
	}

	// Work on a private copy; row-reduce it in place.
	a := make([][]float64, n)
	for i := range m {
		a[i] = append([]float64(nil), m[i]...)
	}

	rank := 0
	cols := len(a[0])
	for col := 0; col < cols && rank < n; col++ {
		pivot := -1
		best := rankTolerance
		for row := rank; row < n; row++ {
			if v := math.Abs(a[row][col]); v > best {
				best = v
				pivot = row
			}
		}
		if pivot < 0 {
			continue // column is linearly dependent on rows already reduced
		}

		a[rank], a[pivot] = a[pivot], a[rank]

		pivotVal := a[rank][col]
		for row := 0; row < n; row++ {
			if row == rank {
				continue
			}
			factor := a[row][col] / pivotVal
			if factor == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				a[row][c] -= factor * a[rank][c]
			}
		}

		rank++
	}

	return rank
}
