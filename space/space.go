package space

import (
	"errors"
	"math"
	"sort"

	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/selector"
)

// DefaultNumBins is the number of equal-frequency intervals per numeric attribute
const DefaultNumBins = 5

var ErrInvalidNumBins = errors.New("invalid number of bins, must be at least 2")

// Build enumerates the candidate selectors of every column of t not named in ignore,
// in column order.
//
// A numeric column with more than numBins distinct values is split into intervals at
// equal-frequency cut points, with the first and last interval open ended. A numeric
// column with few distinct values gets one equality selector per value instead, and one
// missing-value selector if it holds NaN cells. A categorical column gets one equality
// selector per distinct non-empty value in order of appearance. Columns holding a single
// value are skipped since they cannot split the rows.
func Build(t *dataset.Table, numBins int, ignore ...string) ([]selector.Selector, error) {
	if numBins < 2 {
		return nil, ErrInvalidNumBins
	}
	skip := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		skip[name] = struct{}{}
	}

	var sels []selector.Selector
	for _, c := range t.Columns() {
		if _, ignored := skip[c.Name]; ignored {
			continue
		}
		switch c.Kind {
		case dataset.Numeric:
			sels = append(sels, numericSelectors(c, numBins)...)
		case dataset.Categorical:
			sels = append(sels, categoricalSelectors(c)...)
		}
	}
	return sels, nil
}

func numericSelectors(c *dataset.Column, numBins int) []selector.Selector {
	values := make([]float64, 0, len(c.Nums))
	var hasMissing bool
	for _, v := range c.Nums {
		if math.IsNaN(v) {
			hasMissing = true
			continue
		}
		values = append(values, v)
	}
	sort.Float64s(values)
	unique := distinct(values)

	numValues := len(unique)
	if hasMissing {
		numValues++
	}
	if numValues < 2 {
		return nil
	}

	var sels []selector.Selector
	if hasMissing {
		sels = append(sels, selector.NewEquality(c.Name, selector.Num(math.NaN())))
	}
	if len(unique) <= numBins {
		for _, v := range unique {
			sels = append(sels, selector.NewEquality(c.Name, selector.Num(v)))
		}
		return sels
	}

	lower := math.Inf(-1)
	for _, cut := range cutPoints(values, numBins) {
		sels = append(sels, selector.NewInterval(c.Name, lower, cut))
		lower = cut
	}
	return append(sels, selector.NewInterval(c.Name, lower, math.Inf(1)))
}

func categoricalSelectors(c *dataset.Column) []selector.Selector {
	seen := make(map[string]struct{})
	var sels []selector.Selector
	for _, v := range c.Strs {
		if v == "" {
			continue
		}
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		sels = append(sels, selector.NewEquality(c.Name, selector.Str(v)))
	}
	if len(seen) < 2 {
		return nil
	}
	return sels
}

// cutPoints returns up to numBins-1 ascending cut points splitting the sorted values into
// groups of roughly equal size. A cut point already taken moves to the next larger value.
func cutPoints(sorted []float64, numBins int) []float64 {
	n := len(sorted)
	var cuts []float64
	used := make(map[float64]struct{})
	for i := 1; i < numBins; i++ {
		pos := i * n / numBins
		for pos < n {
			if _, exists := used[sorted[pos]]; !exists {
				break
			}
			pos++
		}
		if pos >= n {
			break
		}
		used[sorted[pos]] = struct{}{}
		cuts = append(cuts, sorted[pos])
	}
	return cuts
}

func distinct(sorted []float64) []float64 {
	var out []float64
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
