package cluster

import (
	"math"

	"github.com/aouyang1/go-subgroup/results"
	"gonum.org/v1/gonum/mat"
)

// Dissimilarity returns 1 minus the larger of the selector Jaccard similarity and the
// coverage Jaccard similarity of two subgroups. Two subgroups are close when they read
// alike or when they select nearly the same rows.
func Dissimilarity(a, b results.Row) float64 {
	sim := math.Max(a.Subgroup.SelectorJaccard(b.Subgroup), a.Coverage.Jaccard(b.Coverage))
	return 1 - sim
}

// DistanceMatrix returns the symmetric matrix of pairwise dissimilarities with a zero
// diagonal. Only the upper triangle is computed. It returns nil for no rows.
func DistanceMatrix(rows []results.Row) *mat.SymDense {
	n := len(rows)
	if n == 0 {
		return nil
	}
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, Dissimilarity(rows[i], rows[j]))
		}
	}
	return d
}
