package configs

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-subgroup/quality"
	"github.com/aouyang1/go-subgroup/space"
)

const (
	// subgroups are drawn as rectangles on a 2D plot so at most two selectors are combined
	maxDepth = 2
)

var (
	ErrInvalidResultSetSize = errors.New("invalid result set size, must be at least 1")
	ErrInvalidBeamWidth     = errors.New("invalid beam width, must be at least the result set size")
	ErrInvalidDepth         = fmt.Errorf("invalid depth, must be between 1 and %d", maxDepth)
	ErrInvalidA             = quality.ErrInvalidA
	ErrInvalidNumBins       = space.ErrInvalidNumBins
	ErrInvalidMinSelectors  = fmt.Errorf("invalid min selectors, must be between 0 and %d", maxDepth)
	ErrInvalidDedupPolicy   = errors.New("invalid dedup policy, must be exact or containment")
)

// DedupPolicy decides when two subgroups are treated as the same region
type DedupPolicy string

const (
	// DedupExact merges subgroups whose coverages are equal
	DedupExact DedupPolicy = "exact"

	// DedupContainment merges a subgroup into the first earlier class whose coverage it
	// fully contains
	DedupContainment DedupPolicy = "containment"
)

// Discovery represents the parameters of a subgroup discovery run
type Discovery struct {
	ResultSetSize int         `mapstructure:"result_set_size" yaml:"result_set_size"`
	BeamWidth     int         `mapstructure:"beam_width" yaml:"beam_width"` // 0 means the result set size
	Depth         int         `mapstructure:"depth" yaml:"depth"`
	A             float64     `mapstructure:"a" yaml:"a"`               // size exponent of the quality function
	NumBins       int         `mapstructure:"num_bins" yaml:"num_bins"` // equal-frequency intervals per numeric attribute
	DedupPolicy   DedupPolicy `mapstructure:"dedup_policy" yaml:"dedup_policy"`
	MinSelectors  int         `mapstructure:"min_selectors" yaml:"min_selectors"` // rows with fewer selectors are dropped before plotting
}

// NewDefaultDiscovery returns the default parameters of a discovery run
func NewDefaultDiscovery() *Discovery {
	return &Discovery{
		ResultSetSize: 20,
		Depth:         maxDepth,
		A:             quality.DefaultA,
		NumBins:       space.DefaultNumBins,
		DedupPolicy:   DedupExact,
		MinSelectors:  maxDepth,
	}
}

// Width returns the effective beam width
func (c *Discovery) Width() int {
	if c.BeamWidth == 0 {
		return c.ResultSetSize
	}
	return c.BeamWidth
}

// Validate returns an error if any of the discovery parameters are invalid
func (c *Discovery) Validate() error {
	if c.ResultSetSize < 1 {
		return ErrInvalidResultSetSize
	}
	if c.Width() < c.ResultSetSize {
		return ErrInvalidBeamWidth
	}

	if c.Depth < 1 || c.Depth > maxDepth {
		return ErrInvalidDepth
	}

	if c.A < 0 || c.A > 1 || math.IsNaN(c.A) {
		return ErrInvalidA
	}

	if c.NumBins < 2 {
		return ErrInvalidNumBins
	}

	if c.MinSelectors < 0 || c.MinSelectors > maxDepth {
		return ErrInvalidMinSelectors
	}

	switch c.DedupPolicy {
	case DedupExact, DedupContainment:
	default:
		return ErrInvalidDedupPolicy
	}
	return nil
}
