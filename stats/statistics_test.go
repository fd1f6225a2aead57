package stats

import (
	"math"
	"testing"

	"github.com/aouyang1/go-subgroup/bitmap"
)

func TestDataset(t *testing.T) {
	s := Dataset([]float64{1, 2, 3, 6})
	if s.Size != 4 || s.Mean != 3 {
		t.Fatalf("expected size 4 and mean 3, but got %d and %.2f", s.Size, s.Mean)
	}
	if s := Dataset(nil); s.Size != 0 || !math.IsNaN(s.Mean) {
		t.Fatalf("expected an empty target with NaN mean, but got %v", s)
	}
}

func TestSubgroup(t *testing.T) {
	values := []float64{1, 2, 3, 6}
	testData := []struct {
		cov  *bitmap.Coverage
		size int
		mean float64
	}{
		{bitmap.Of(0, 3), 2, 3.5},
		{bitmap.Of(1), 1, 2},
		{bitmap.Full(4), 4, 3},
	}
	for _, td := range testData {
		s := Subgroup(values, td.cov)
		if s.Size != td.size || math.Abs(s.Mean-td.mean) > 1e-12 {
			t.Errorf("expected size %d and mean %.2f, but got %d and %.2f", td.size, td.mean, s.Size, s.Mean)
		}
	}
	if s := Subgroup(values, bitmap.New()); s.Size != 0 || !math.IsNaN(s.Mean) {
		t.Fatalf("expected an empty target with NaN mean, but got %v", s)
	}
}

func TestConstant(t *testing.T) {
	testData := []struct {
		values   []float64
		expected bool
	}{
		{nil, true},
		{[]float64{4}, true},
		{[]float64{0.2, 0.2, 0.2}, true},
		{[]float64{0.2, 0.3}, false},
	}
	for _, td := range testData {
		if res := Constant(td.values); res != td.expected {
			t.Errorf("expected %v for %v, but got %v", td.expected, td.values, res)
		}
	}
}
