package options

import (
	"errors"
	"math"
)

var (
	ErrInvalidThreshold = errors.New("invalid threshold, must be between 0 and 1 inclusive")
	ErrTooManySelected  = errors.New("at most one subgroup can be selected")
)

// Filter represent a set of parameters to re-merge near duplicate subgroups at query time
type Filter struct {
	Threshold float64  `json:"threshold"` // merges at or below this dissimilarity collapse into one representative
	Selected  []string `json:"selected"`  // descriptions of the subgroups picked by the user
}

// Validate returns an error if any of the filter options are invalid
func (f *Filter) Validate() error {
	if f.Threshold < 0 || f.Threshold > 1 || math.IsNaN(f.Threshold) {
		return ErrInvalidThreshold
	}
	if len(f.Selected) > 1 {
		return ErrTooManySelected
	}
	return nil
}

// NewDefaultFilter returns filter options that only collapse identical subgroups
func NewDefaultFilter() *Filter {
	return &Filter{}
}
