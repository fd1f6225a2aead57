package bitmap

import (
	"github.com/RoaringBitmap/roaring"
)

// Coverage is the set of row indices of a table satisfied by a selector or subgroup.
// A coverage is never modified once it has been handed to a subgroup, so it is safe to
// share between readers.
type Coverage struct {
	Rb *roaring.Bitmap
}

func New() *Coverage {
	return &Coverage{Rb: roaring.New()}
}

// Of returns a coverage holding the given rows
func Of(rows ...uint32) *Coverage {
	return &Coverage{Rb: roaring.BitmapOf(rows...)}
}

// Full returns a coverage of every row of a table with n rows
func Full(n int) *Coverage {
	c := New()
	if n > 0 {
		c.Rb.AddRange(0, uint64(n))
	}
	return c
}

// FromMask returns the coverage of the true entries of mask
func FromMask(mask []bool) *Coverage {
	c := New()
	for i, ok := range mask {
		if ok {
			c.Rb.Add(uint32(i))
		}
	}
	return c
}

func (c *Coverage) Add(row int) {
	c.Rb.Add(uint32(row))
}

// Size returns the number of covered rows
func (c *Coverage) Size() int {
	return int(c.Rb.GetCardinality())
}

func (c *Coverage) IsEmpty() bool {
	return c.Rb.IsEmpty()
}

// And returns a new coverage of the rows covered by both c and o
func (c *Coverage) And(o *Coverage) *Coverage {
	return &Coverage{Rb: roaring.And(c.Rb, o.Rb)}
}

func (c *Coverage) Equals(o *Coverage) bool {
	return c.Rb.Equals(o.Rb)
}

// SubsetOf reports whether every row of c is also covered by o
func (c *Coverage) SubsetOf(o *Coverage) bool {
	return c.Rb.AndCardinality(o.Rb) == c.Rb.GetCardinality()
}

// Jaccard returns the intersection over union of the two coverages. Two empty
// coverages are identical and have a similarity of 1.
func (c *Coverage) Jaccard(o *Coverage) float64 {
	union := c.Rb.OrCardinality(o.Rb)
	if union == 0 {
		return 1
	}
	return float64(c.Rb.AndCardinality(o.Rb)) / float64(union)
}

// Rows returns the covered row indices in ascending order
func (c *Coverage) Rows() []uint32 {
	return c.Rb.ToArray()
}

// Mask expands the coverage into a boolean mask over a table with n rows
func (c *Coverage) Mask(n int) []bool {
	mask := make([]bool, n)
	it := c.Rb.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		if row < n {
			mask[row] = true
		}
	}
	return mask
}
