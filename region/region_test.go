package region

import (
	"errors"
	"math"
	"testing"

	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/selector"
	"github.com/aouyang1/go-subgroup/sgerrors"
)

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.New(
		dataset.NewNumeric("a", []float64{1, 2, 3, 4}),
		dataset.NewNumeric("b", []float64{10, 20, math.NaN(), 40}),
		dataset.NewNumeric("c", []float64{0, 0, 1, 1}),
		dataset.NewCategorical("s", []string{"x", "y", "x", "y"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestLimits(t *testing.T) {
	tbl := testTable(t)
	inf := math.Inf(1)

	testData := []struct {
		subgroup selector.Conjunction
		expected []selector.Limit
	}{
		{
			selector.NewConjunction(selector.NewInterval("a", 2, 3), selector.NewInterval("b", 15, 25)),
			[]selector.Limit{{Attribute: "a", Lower: 2, Upper: 3}, {Attribute: "b", Lower: 15, Upper: 25}},
		},
		{
			selector.NewConjunction(selector.NewInterval("a", -inf, 3), selector.NewInterval("b", 15, inf)),
			[]selector.Limit{{Attribute: "a", Lower: 1, Upper: 3}, {Attribute: "b", Lower: 15, Upper: 40}},
		},
		{
			selector.NewConjunction(selector.NewEquality("c", selector.Num(1))),
			[]selector.Limit{{Attribute: "c", Lower: 1, Upper: 1}},
		},
	}
	for _, td := range testData {
		res, err := Limits(td.subgroup, tbl)
		if err != nil {
			t.Fatal(err)
		}
		if len(res) != len(td.expected) {
			t.Fatalf("expected %v, but got %v", td.expected, res)
		}
		for i := range res {
			if res[i] != td.expected[i] {
				t.Errorf("expected %v, but got %v", td.expected[i], res[i])
			}
		}
	}
}

func TestLimitsErrors(t *testing.T) {
	tbl := testTable(t)
	testData := []struct {
		subgroup selector.Conjunction
		expected error
	}{
		{selector.NewConjunction(selector.NewEquality("s", selector.Str("x"))), sgerrors.UnsupportedSelector},
		{selector.NewConjunction(selector.NewInterval("z", math.Inf(-1), 1)), selector.ErrUnknownAttribute},
		{selector.NewConjunction(), selector.ErrSelectorCount},
	}
	for _, td := range testData {
		if _, err := Limits(td.subgroup, tbl); !errors.Is(err, td.expected) {
			t.Errorf("expected %v, but got %v", td.expected, err)
		}
	}
}

func TestOverlay(t *testing.T) {
	tbl := testTable(t)
	testData := []struct {
		row      results.Row
		x, y     string
		expected Rect
	}{
		{
			results.Row{
				Subgroup:    selector.NewConjunction(selector.NewInterval("a", 2, 3), selector.NewInterval("b", 15, 25)),
				MeanSG:      0.8,
				MeanDataset: 0.5,
			},
			"a", "b",
			Rect{X0: 1.98, Y0: 14.98, X1: 3.02, Y1: 25.02, Direction: Above},
		},
		{
			// swapped axes
			results.Row{
				Subgroup:    selector.NewConjunction(selector.NewInterval("a", 2, 3), selector.NewInterval("b", 15, 25)),
				MeanSG:      0.1,
				MeanDataset: 0.5,
			},
			"b", "a",
			Rect{X0: 14.98, Y0: 1.98, X1: 25.02, Y1: 3.02, Direction: Below},
		},
		{
			// a single selector spans the other axis
			results.Row{
				Subgroup:    selector.NewConjunction(selector.NewInterval("b", math.Inf(-1), 20)),
				MeanSG:      0.5,
				MeanDataset: 0.5,
			},
			"a", "b",
			Rect{X0: 0.98, Y0: 9.98, X1: 4.02, Y1: 20.02, Direction: Below},
		},
	}
	for _, td := range testData {
		res, err := Overlay(td.row, td.x, td.y, tbl)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(res.X0, td.expected.X0) || !approx(res.Y0, td.expected.Y0) ||
			!approx(res.X1, td.expected.X1) || !approx(res.Y1, td.expected.Y1) {
			t.Errorf("expected %v, but got %v", td.expected, res)
		}
		if res.Direction != td.expected.Direction {
			t.Errorf("expected %v, but got %v", td.expected.Direction, res.Direction)
		}
		if res.Subgroup != td.row.Subgroup.String() {
			t.Errorf("expected %v, but got %v", td.row.Subgroup.String(), res.Subgroup)
		}
	}
}

func TestOverlayErrors(t *testing.T) {
	tbl := testTable(t)
	row := results.Row{
		Subgroup: selector.NewConjunction(selector.NewInterval("a", 2, 3), selector.NewInterval("c", 0, 1)),
	}
	if _, err := Overlay(row, "a", "b", tbl); !errors.Is(err, ErrOffAxis) {
		t.Errorf("expected %v, but got %v", ErrOffAxis, err)
	}
	if _, err := Overlay(row, "a", "a", tbl); !errors.Is(err, ErrSameAxes) {
		t.Errorf("expected %v, but got %v", ErrSameAxes, err)
	}
	if _, err := Overlays([]results.Row{row}, "a", "b", tbl); !errors.Is(err, ErrOffAxis) {
		t.Errorf("expected %v, but got %v", ErrOffAxis, err)
	}
}

func TestDirectionText(t *testing.T) {
	for _, d := range []Direction{Above, Below} {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var res Direction
		if err := res.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if res != d {
			t.Errorf("expected %v, but got %v", d, res)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}
