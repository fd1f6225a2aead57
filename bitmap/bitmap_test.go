package bitmap

import (
	"math"
	"testing"
)

func TestCoverageFull(t *testing.T) {
	c := Full(5)
	if c.Size() != 5 {
		t.Fatalf("expected 5 rows, but got %d", c.Size())
	}
	if !Full(0).IsEmpty() {
		t.Fatal("expected empty coverage for an empty table")
	}
}

func TestCoverageMask(t *testing.T) {
	mask := []bool{true, false, true, true, false}
	c := FromMask(mask)
	if c.Size() != 3 {
		t.Fatalf("expected 3 rows, but got %d", c.Size())
	}
	res := c.Mask(len(mask))
	for i := range mask {
		if res[i] != mask[i] {
			t.Fatalf("expected %v at row %d, but got %v", mask[i], i, res[i])
		}
	}
}

func TestCoverageSetOps(t *testing.T) {
	a := Of(0, 1, 2, 3)
	b := Of(2, 3, 4)

	and := a.And(b)
	if !and.Equals(Of(2, 3)) {
		t.Fatalf("expected [2 3], but got %v", and.Rows())
	}
	if a.Size() != 4 {
		t.Fatal("And must not modify its receiver")
	}

	if !Of(2, 3).SubsetOf(a) {
		t.Fatal("expected [2 3] to be a subset of a")
	}
	if b.SubsetOf(a) {
		t.Fatal("did not expect b to be a subset of a")
	}
}

func TestCoverageJaccard(t *testing.T) {
	testData := []struct {
		a, b     *Coverage
		expected float64
	}{
		{Of(0, 1, 2, 3), Of(2, 3, 4), 2.0 / 5.0},
		{Of(0, 1), Of(0, 1), 1},
		{Of(0), Of(1), 0},
		{New(), New(), 1},
	}
	for _, td := range testData {
		res := td.a.Jaccard(td.b)
		if math.Abs(res-td.expected) > 1e-12 {
			t.Errorf("expected %.3f, but got %.3f", td.expected, res)
			continue
		}
		if res != td.b.Jaccard(td.a) {
			t.Errorf("expected symmetric jaccard for %v and %v", td.a.Rows(), td.b.Rows())
		}
	}
}
