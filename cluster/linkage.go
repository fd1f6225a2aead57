package cluster

// Merge is one row of a linkage matrix
type Merge struct {
	Left     int     `json:"left" yaml:"left"`
	Right    int     `json:"right" yaml:"right"`
	Distance float64 `json:"distance" yaml:"distance"`
	Count    int     `json:"count" yaml:"count"` // leaves under the merged node
}

// Linkage derives the linkage matrix of a clustering. The count of a merge is the sum of
// the counts of its children, where an input leaf counts as 1.
func Linkage(c *Clustering) []Merge {
	counts := make([]int, len(c.Children))
	merges := make([]Merge, 0, len(c.Children))
	for i, children := range c.Children {
		var count int
		for _, child := range children {
			if child < c.NumLeaves {
				count++
			} else {
				count += counts[child-c.NumLeaves]
			}
		}
		counts[i] = count
		merges = append(merges, Merge{
			Left:     children[0],
			Right:    children[1],
			Distance: c.Distances[i],
			Count:    count,
		})
	}
	return merges
}

// Remerge walks the merges of c in order up to the first one above threshold. Each merge
// keeps the higher quality representative of its two children; on equal quality the
// representative of the right child is kept. It returns the replacement of every
// eliminated leaf by the leaf that absorbed it, and the leaves that survive in ascending
// order, including leaves no merge touched.
func Remerge(c *Clustering, qualities []float64, threshold float64) (map[int]int, []int) {
	rep := make(map[int]int, len(c.Children))
	replace := make(map[int]int)

	representative := func(node int) int {
		if node < c.NumLeaves {
			return node
		}
		return rep[node]
	}

	for i, children := range c.Children {
		if c.Distances[i] > threshold {
			break
		}
		j := representative(children[0])
		k := representative(children[1])
		if qualities[j] > qualities[k] {
			rep[c.NumLeaves+i] = j
			replace[k] = j
		} else {
			rep[c.NumLeaves+i] = k
			replace[j] = k
		}
	}

	active := make([]int, 0, c.NumLeaves-len(replace))
	for leaf := 0; leaf < c.NumLeaves; leaf++ {
		if _, eliminated := replace[leaf]; !eliminated {
			active = append(active, leaf)
		}
	}
	return replace, active
}
