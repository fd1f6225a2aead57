package stats

import (
	"math"

	"github.com/aouyang1/go-subgroup/bitmap"
	"gonum.org/v1/gonum/stat"
)

// Target holds the statistics of a numeric target over a set of rows
type Target struct {
	Size int     `json:"size"`
	Mean float64 `json:"mean"`
}

// Dataset returns the statistics of the target over every row
func Dataset(values []float64) Target {
	if len(values) == 0 {
		return Target{Mean: math.NaN()}
	}
	return Target{Size: len(values), Mean: stat.Mean(values, nil)}
}

// Subgroup returns the statistics of the target over the covered rows, computed from the
// exact row coverage. The mean of an empty coverage is NaN.
func Subgroup(values []float64, cov *bitmap.Coverage) Target {
	rows := cov.Rows()
	if len(rows) == 0 {
		return Target{Mean: math.NaN()}
	}
	selected := make([]float64, 0, len(rows))
	for _, r := range rows {
		selected = append(selected, values[r])
	}
	return Target{Size: len(selected), Mean: stat.Mean(selected, nil)}
}

// Constant reports whether the target carries no signal to search for: fewer than two
// rows or zero variance.
func Constant(values []float64) bool {
	if len(values) < 2 {
		return true
	}
	return stat.Variance(values, nil) == 0
}

// Summary describes one discovery run for a single target column
type Summary struct {
	Target        string `json:"target"`
	NumRows       int    `json:"num_rows"`
	NumSelectors  int    `json:"num_selectors"`
	NumCandidates int    `json:"num_candidates"`
	NumResults    int    `json:"num_results"`
}
