package space

import (
	"math"
	"testing"

	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/selector"
)

func TestCutPoints(t *testing.T) {
	testData := []struct {
		values   []float64
		numBins  int
		expected []float64
	}{
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5, []float64{3, 5, 7, 9}},
		{[]float64{1, 1, 1, 1, 1, 1, 1, 2, 3, 4, 5, 6}, 5, []float64{1, 2, 3, 4}},
		{[]float64{1, 2, 3, 4}, 2, []float64{3}},
		{[]float64{1, 1, 1, 2}, 4, []float64{1, 2}},
	}
	for _, td := range testData {
		res := cutPoints(td.values, td.numBins)
		if len(res) != len(td.expected) {
			t.Errorf("expected %v, but got %v", td.expected, res)
			continue
		}
		for i := range res {
			if res[i] != td.expected[i] {
				t.Errorf("expected %v, but got %v", td.expected, res)
				break
			}
		}
	}
}

func TestBuild(t *testing.T) {
	tbl, err := dataset.New(
		dataset.NewNumeric("a", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		dataset.NewNumeric("b", []float64{1, 1, 2, 2, 1, 1, 2, 2, math.NaN(), 1}),
		dataset.NewNumeric("constant", []float64{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}),
		dataset.NewCategorical("c", []string{"x", "y", "x", "", "z", "x", "y", "y", "x", "z"}),
		dataset.NewNumeric("err", []float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}),
	)
	if err != nil {
		t.Fatal(err)
	}

	sels, err := Build(tbl, DefaultNumBins, "err")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"a<3", "a: [3:5[", "a: [5:7[", "a: [7:9[", "a>=9",
		"b.isnull()", "b==1", "b==2",
		"c=='x'", "c=='y'", "c=='z'",
	}
	if len(sels) != len(expected) {
		t.Fatalf("expected %d selectors, but got %d: %v", len(expected), len(sels), sels)
	}
	for i, s := range sels {
		if s.String() != expected[i] {
			t.Errorf("expected %s, but got %s", expected[i], s.String())
		}
		if s.Attribute() == "err" || s.Attribute() == "constant" {
			t.Errorf("did not expect a selector over %s", s.Attribute())
		}
	}
}

func TestBuildIntervalsPartitionRows(t *testing.T) {
	values := []float64{5.1, 4.9, 4.7, 4.6, 5.0, 5.4, 4.6, 5.0, 4.4, 4.9, 7.0, 6.4, 6.9, 5.5, 6.5}
	tbl, err := dataset.New(dataset.NewNumeric("a", values))
	if err != nil {
		t.Fatal(err)
	}
	sels, err := Build(tbl, DefaultNumBins)
	if err != nil {
		t.Fatal(err)
	}
	var total int
	for _, s := range sels {
		if _, ok := s.(selector.Interval); !ok {
			t.Fatalf("expected interval selectors, but got %T", s)
		}
		cov, err := selector.Cover(s, tbl)
		if err != nil {
			t.Fatal(err)
		}
		total += cov.Size()
	}
	if total != len(values) {
		t.Fatalf("expected intervals to cover each of the %d rows exactly once, but got %d", len(values), total)
	}
}

func TestBuildInvalidNumBins(t *testing.T) {
	tbl, err := dataset.New(dataset.NewNumeric("a", []float64{1, 2}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(tbl, 1); err != ErrInvalidNumBins {
		t.Fatalf("expected %v, but got %v", ErrInvalidNumBins, err)
	}
}
