package configs

import (
	"math"
	"testing"
)

func TestDiscoveryValidate(t *testing.T) {
	testData := []struct {
		rs  int
		bw  int
		d   int
		a   float64
		nb  int
		dp  DedupPolicy
		ms  int
		err error
	}{
		{20, 0, 2, 0.5, 5, DedupExact, 2, nil},
		{5, 10, 1, 0, 2, DedupContainment, 0, nil},
		{0, 0, 2, 0.5, 5, DedupExact, 2, ErrInvalidResultSetSize},
		{20, 10, 2, 0.5, 5, DedupExact, 2, ErrInvalidBeamWidth},
		{20, 0, 3, 0.5, 5, DedupExact, 2, ErrInvalidDepth},
		{20, 0, 0, 0.5, 5, DedupExact, 2, ErrInvalidDepth},
		{20, 0, 2, 1.5, 5, DedupExact, 2, ErrInvalidA},
		{20, 0, 2, math.NaN(), 5, DedupExact, 2, ErrInvalidA},
		{20, 0, 2, 0.5, 1, DedupExact, 2, ErrInvalidNumBins},
		{20, 0, 2, 0.5, 5, DedupExact, 3, ErrInvalidMinSelectors},
		{20, 0, 2, 0.5, 5, DedupPolicy("fuzzy"), 2, ErrInvalidDedupPolicy},
	}
	for _, td := range testData {
		c := &Discovery{td.rs, td.bw, td.d, td.a, td.nb, td.dp, td.ms}
		if err := c.Validate(); err != td.err {
			t.Errorf("expected %v, but got %v", td.err, err)
			continue
		}
	}
}

func TestNewDefaultDiscovery(t *testing.T) {
	c := NewDefaultDiscovery()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Width() != c.ResultSetSize {
		t.Fatalf("expected beam width %d, but got %d", c.ResultSetSize, c.Width())
	}
}
