package invariant

import (
	"math"

	"github.com/rxncluster/engine/graph"
)

const (
	connectivityTol     = 1e-6
	connectivityMaxIter = 200
)

// ComputeAlgebraicConnectivity returns the second-smallest eigenvalue of
// g's normalized Laplacian, or 0.0 if g is disconnected, has fewer than
// two vertices, or the eigen decomposition does not converge — spec.md
// §4.2 and §7 both specify 0.0 as the sentinel for every "ineligible"
// case here rather than an error.
//
// Equality on this invariant is exact float64 equality (see Value.Equal),
// which spec.md §9 documents as fragile: two isomorphic graphs can
// produce numerically different eigenvalues. DESIGN.md records the open
// question disposition — this package computes the value faithfully and
// leaves the caller's choice of how to use it (bucket key vs. hint) to
// cluster.Config.
// Complexity: O(n^3).
func ComputeAlgebraicConnectivity(g *graph.Graph) Value {
	return Value{Kind: AlgebraicConnectivity, Float: algebraicConnectivity(g)}
}

func algebraicConnectivity(g *graph.Graph) float64 {
	adjacency, order := g.AdjacencyMatrix()
	n := len(order)
	if n < 2 {
		return 0.0
	}

	degrees := make([]float64, n)
	for i := range adjacency {
		sum := 0.0
		for j := range adjacency[i] {
			sum += adjacency[i][j]
		}
		degrees[i] = sum
		if sum == 0 {
			return 0.0 // isolated vertex: graph is disconnected
		}
	}

	seen := map[int]bool{0: true}
	for stack := []int{0}; len(stack) > 0; {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j, a := range adjacency[i] {
			if a != 0 && !seen[j] {
				seen[j] = true
				stack = append(stack, j)
			}
		}
	}
	if len(seen) < n {
		return 0.0 // not every vertex reachable from vertex 0: disconnected
	}

	laplacian := normalizedLaplacian(adjacency, degrees)

	eigenvalues, ok := jacobiEigenvalues(laplacian, connectivityTol, connectivityMaxIter)
	if !ok {
		return 0.0
	}

	sortFloats(eigenvalues)

	return eigenvalues[1]
}

// normalizedLaplacian builds L = I - D^-1/2 A D^-1/2.
func normalizedLaplacian(adjacency [][]float64, degrees []float64) [][]float64 {
	n := len(adjacency)
	invSqrt := make([]float64, n)
	for i, d := range degrees {
		invSqrt[i] = 1.0 / math.Sqrt(d)
	}

	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
		for j := range l[i] {
			v := -invSqrt[i] * adjacency[i][j] * invSqrt[j]
			if i == j {
				v += 1.0
			}
			l[i][j] = v
		}
	}

	return l
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// jacobiEigenvalues computes the eigenvalues of a real symmetric matrix
// via the classical Jacobi rotation method: repeatedly zero the largest
// off-diagonal entry until all off-diagonal entries fall below tol, or
// maxIter rotations (one per iteration) have been applied without
// convergence.
// Complexity: O(maxIter * n^2).
func jacobiEigenvalues(m [][]float64, tol float64, maxIter int) ([]float64, bool) {
	n := len(m)

	a := make([][]float64, n)
	for i := range m {
		a[i] = append([]float64(nil), m[i]...)
	}

	for iter := 0; iter < maxIter; iter++ {
		p, q := -1, -1
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			eig := make([]float64, n)
			for i := 0; i < n; i++ {
				eig[i] = a[i][i]
			}
			return eig, true
		}

		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := a[i][p], a[i][q]
			a[i][p] = c*aip - s*aiq
			a[p][i] = a[i][p]
			a[i][q] = s*aip + c*aiq
			a[q][i] = a[i][q]
		}
		a[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q][q] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p][q] = 0.0
		a[q][p] = 0.0
	}

	return nil, false
}
