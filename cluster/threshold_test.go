package cluster

import (
	"errors"
	"math"
	"testing"

	"github.com/aouyang1/go-subgroup/bitmap"
	"github.com/aouyang1/go-subgroup/options"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/selector"
)

func below(attr string, upper float64) selector.Selector {
	return selector.NewInterval(attr, math.Inf(-1), upper)
}

func pairRows() []results.Row {
	return []results.Row{
		{Subgroup: selector.NewConjunction(below("a", 1), below("b", 1)), Coverage: bitmap.Of(0, 1), Quality: 1},
		{Subgroup: selector.NewConjunction(below("a", 2), below("b", 1)), Coverage: bitmap.Of(0, 1), Quality: 3},
		{Subgroup: selector.NewConjunction(below("b", 1), below("c", 1)), Coverage: bitmap.Of(5, 6), Quality: 2},
		{Subgroup: selector.NewConjunction(below("c", 1), below("a", 1)), Coverage: bitmap.Of(8), Quality: 1},
	}
}

func TestFilterByThreshold(t *testing.T) {
	rows := pairRows()
	c, err := Average{}.Fit(DistanceMatrix(rows))
	if err != nil {
		t.Fatal(err)
	}

	testData := []struct {
		filter   *options.Filter
		expected []string
	}{
		{&options.Filter{Threshold: 0}, []string{"a<2 AND b<1", "b<1 AND c<1", "c<1 AND a<1"}},
		{&options.Filter{Threshold: 1}, []string{"a<2 AND b<1"}},
		{&options.Filter{Threshold: 0, Selected: []string{"a<2 AND b<1"}}, []string{"a<2 AND b<1"}},
		{&options.Filter{Threshold: 0, Selected: []string{"c<1 AND a<1"}}, []string{"c<1 AND a<1"}},
		{&options.Filter{Threshold: 0, Selected: []string{"b<1 AND c<1"}}, []string{"b<1 AND c<1"}},
	}

	for _, td := range testData {
		res, _, err := FilterByThreshold(rows, c, td.filter)
		if err != nil {
			t.Fatal(err)
		}
		if len(res) != len(td.expected) {
			t.Errorf("filter %v: expected %v, but got %d rows", td.filter, td.expected, len(res))
			continue
		}
		for i := range res {
			if res[i].Subgroup.String() != td.expected[i] {
				t.Errorf("filter %v: expected %v, but got %v", td.filter, td.expected[i], res[i].Subgroup.String())
			}
		}
	}
}

func TestFilterByThresholdReplacements(t *testing.T) {
	rows := pairRows()
	c, err := Average{}.Fit(DistanceMatrix(rows))
	if err != nil {
		t.Fatal(err)
	}
	_, replace, err := FilterByThreshold(rows, c, &options.Filter{Threshold: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(replace) != 1 {
		t.Fatalf("expected 1 replacement, but got %v", replace)
	}
	to, exists := replace[rows[0].Subgroup.Key()]
	if !exists || !to.Equal(rows[1].Subgroup) {
		t.Errorf("expected %v, but got %v", rows[1].Subgroup, to)
	}

	// the shared rows are left untouched
	if rows[0].Subgroup.String() != "a<1 AND b<1" {
		t.Errorf("expected %v, but got %v", "a<1 AND b<1", rows[0].Subgroup.String())
	}
}

func TestFilterByThresholdErrors(t *testing.T) {
	rows := pairRows()
	c, err := Average{}.Fit(DistanceMatrix(rows))
	if err != nil {
		t.Fatal(err)
	}

	testData := []struct {
		rows     []results.Row
		filter   *options.Filter
		expected error
	}{
		{rows, &options.Filter{Threshold: 2}, options.ErrInvalidThreshold},
		{rows, &options.Filter{Selected: []string{"a<1 AND b<1", "b<1 AND c<1"}}, options.ErrTooManySelected},
		{rows, &options.Filter{Selected: []string{"d<1"}}, ErrSelectionNotFound},
		{rows[:2], &options.Filter{}, ErrLeafMismatch},
	}
	for _, td := range testData {
		if _, _, err := FilterByThreshold(td.rows, c, td.filter); !errors.Is(err, td.expected) {
			t.Errorf("expected %v, but got %v", td.expected, err)
		}
	}
}

func TestCut(t *testing.T) {
	rows := pairRows()
	c, err := Average{}.Fit(DistanceMatrix(rows))
	if err != nil {
		t.Fatal(err)
	}
	testData := []struct {
		threshold float64
		expected  []int
	}{
		{-1, []int{0, 1, 2, 3}},
		{0, []int{0, 0, 1, 2}},
		{1, []int{0, 0, 0, 0}},
	}
	for _, td := range testData {
		res := c.Cut(td.threshold)
		for i := range td.expected {
			if res[i] != td.expected[i] {
				t.Errorf("threshold %v: expected %v, but got %v", td.threshold, td.expected, res)
				break
			}
		}
	}
	for i, l := range c.Cut(0) {
		if c.Labels[i] != l {
			t.Errorf("expected labels %v, but got %v", c.Cut(0), c.Labels)
		}
	}
}
