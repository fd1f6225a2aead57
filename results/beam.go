package results

import (
	"container/heap"
	"math"
	"sort"
)

// Beam keeps the Width highest quality rows seen so far. A row only displaces the
// current worst member when its quality is strictly greater, so among equal qualities
// the row found first wins. Rows whose subgroup is already a member are ignored.
type Beam struct {
	Width int

	members candidates
	keys    map[string]struct{}
	seq     int
}

type candidate struct {
	row Row
	seq int
}

// NewBeam creates a beam holding at most width rows
func NewBeam(width int) *Beam {
	members := make(candidates, 0, width)

	// min heap on quality so the worst member is always at the root
	heap.Init(&members)

	return &Beam{
		Width:   width,
		members: members,
		keys:    make(map[string]struct{}, width),
	}
}

// Update offers a row to the beam and reports whether it was kept
func (b *Beam) Update(r Row) bool {
	if b.Width < 1 || math.IsNaN(r.Quality) {
		return false
	}
	key := r.Subgroup.Key()
	if _, exists := b.keys[key]; exists {
		return false
	}
	c := candidate{row: r, seq: b.seq}
	b.seq++

	if b.members.Len() == b.Width {
		if r.Quality <= b.members[0].row.Quality {
			return false
		}
		evicted := heap.Pop(&b.members).(candidate)
		delete(b.keys, evicted.row.Subgroup.Key())
	}
	heap.Push(&b.members, c)
	b.keys[key] = struct{}{}
	return true
}

func (b *Beam) Len() int {
	return b.members.Len()
}

// Rows returns the members sorted by descending quality, ties in the order they were
// offered. The beam is left untouched.
func (b *Beam) Rows() []Row {
	sorted := make(candidates, len(b.members))
	copy(sorted, b.members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].row.Quality != sorted[j].row.Quality {
			return sorted[i].row.Quality > sorted[j].row.Quality
		}
		return sorted[i].seq < sorted[j].seq
	})
	out := make([]Row, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, c.row)
	}
	return out
}

type candidates []candidate

func (c candidates) Len() int {
	return len(c)
}

func (c candidates) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Less orders by quality, and among equal qualities puts the most recent row first so
// it is evicted before older ones
func (c candidates) Less(i, j int) bool {
	if c[i].row.Quality != c[j].row.Quality {
		return c[i].row.Quality < c[j].row.Quality
	}
	return c[i].seq > c[j].seq
}

// Push implements the function in the heap interface
func (c *candidates) Push(x interface{}) {
	*c = append(*c, x.(candidate))
}

// Pop implements the function in the heap interface
func (c *candidates) Pop() interface{} {
	x := (*c)[len(*c)-1]
	*c = (*c)[:len(*c)-1]
	return x
}
