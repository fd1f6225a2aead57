package cluster

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrInvalidDistance = errors.New("distance matrix holds a NaN or negative value")

// Clustering is the full merge tree of an agglomerative clustering over NumLeaves
// inputs. Merge i joins the nodes Children[i] at Distances[i] and creates node
// NumLeaves+i; nodes below NumLeaves are the inputs themselves. Labels holds the flat
// cluster of every leaf at distance 0, so identical inputs share a label.
type Clustering struct {
	NumLeaves int
	Children  [][2]int
	Distances []float64
	Labels    []int
}

// Cut returns the flat cluster of every leaf when only merges at or below threshold are
// applied. Labels are numbered in order of the first leaf of each cluster.
func (c *Clustering) Cut(threshold float64) []int {
	// root[node] is the lowest leaf under node
	root := make([]int, c.NumLeaves+len(c.Children))
	parent := make([]int, c.NumLeaves)
	for i := range parent {
		root[i] = i
		parent[i] = i
	}
	for i, children := range c.Children {
		l, r := root[children[0]], root[children[1]]
		if r < l {
			l, r = r, l
		}
		root[c.NumLeaves+i] = l
		if c.Distances[i] <= threshold {
			parent[r] = l
		}
	}

	labels := make([]int, c.NumLeaves)
	ids := make(map[int]int)
	for leaf := range labels {
		top := leaf
		for parent[top] != top {
			top = parent[top]
		}
		id, exists := ids[top]
		if !exists {
			id = len(ids)
			ids[top] = id
		}
		labels[leaf] = id
	}
	return labels
}

// Clusterer builds a complete merge tree from a precomputed distance matrix
type Clusterer interface {
	Fit(d mat.Symmetric) (*Clustering, error)
}

// Average is agglomerative clustering with average linkage, merging until a single
// cluster remains. Ties between equally distant pairs go to the pair with the smallest
// node ids.
type Average struct{}

func (Average) Fit(d mat.Symmetric) (*Clustering, error) {
	c := &Clustering{}
	if d == nil {
		return c, nil
	}
	n := d.SymmetricDim()
	c.NumLeaves = n
	if n == 0 {
		return c, nil
	}

	// dist is indexed by slot; slot i holds node ids[i] of sizes[i] leaves while active
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			v := d.At(i, j)
			if math.IsNaN(v) || (i != j && v < 0) {
				return nil, ErrInvalidDistance
			}
			dist[i][j] = v
		}
	}
	ids := make([]int, n)
	sizes := make([]int, n)
	active := make([]bool, n)
	for i := range ids {
		ids[i] = i
		sizes[i] = 1
		active[i] = true
	}

	c.Children = make([][2]int, 0, n-1)
	c.Distances = make([]float64, 0, n-1)
	for step := 0; step < n-1; step++ {
		bi, bj := -1, -1
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if bi < 0 || dist[i][j] < dist[bi][bj] ||
					(dist[i][j] == dist[bi][bj] && lowerPair(ids[i], ids[j], ids[bi], ids[bj])) {
					bi, bj = i, j
				}
			}
		}

		left, right := ids[bi], ids[bj]
		if left > right {
			left, right = right, left
		}
		c.Children = append(c.Children, [2]int{left, right})
		c.Distances = append(c.Distances, dist[bi][bj])

		// fold slot bj into slot bi
		total := float64(sizes[bi] + sizes[bj])
		for k := 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			v := (float64(sizes[bi])*dist[bi][k] + float64(sizes[bj])*dist[bj][k]) / total
			dist[bi][k] = v
			dist[k][bi] = v
		}
		sizes[bi] += sizes[bj]
		ids[bi] = n + step
		active[bj] = false
	}
	c.Labels = c.Cut(0)
	return c, nil
}

// lowerPair reports whether the unordered pair (a, b) sorts before (c, d)
func lowerPair(a, b, c, d int) bool {
	if a > b {
		a, b = b, a
	}
	if c > d {
		c, d = d, c
	}
	if a != c {
		return a < c
	}
	return b < d
}
