package dedupe

import (
	"fmt"

	"github.com/aouyang1/go-subgroup/bitmap"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/selector"
	"github.com/aouyang1/go-subgroup/sgerrors"
)

var errNoCoverage = fmt.Errorf("%w: missing coverage", sgerrors.MalformedRow)

// Equivalence reports whether a subgroup covering covered belongs to the class of an
// earlier subgroup covering existing
type Equivalence func(existing, covered *bitmap.Coverage) bool

// Exact puts subgroups with equal coverages in the same class
func Exact(existing, covered *bitmap.Coverage) bool {
	return existing.Equals(covered)
}

// Containment puts a subgroup in the class of the first earlier subgroup whose coverage
// it fully contains
func Containment(existing, covered *bitmap.Coverage) bool {
	return existing.SubsetOf(covered)
}

type class struct {
	canonical selector.Conjunction
	coverage  *bitmap.Coverage
}

// Replacements maps the key of every redundant subgroup to the canonical subgroup of its
// class. Rows are visited in order and the first subgroup of each class is canonical, so
// the result is deterministic for a given row order.
func Replacements(rows []results.Row, eq Equivalence) (map[string]selector.Conjunction, error) {
	var classes []class
	seen := make(map[string]struct{}, len(rows))
	replace := make(map[string]selector.Conjunction)

	for i, r := range rows {
		if err := r.Subgroup.Valid(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if r.Coverage == nil {
			return nil, fmt.Errorf("row %d: %w", i, errNoCoverage)
		}
		key := r.Subgroup.Key()
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}

		joined := false
		for _, c := range classes {
			if eq(c.coverage, r.Coverage) {
				replace[key] = c.canonical
				joined = true
				break
			}
		}
		if !joined {
			classes = append(classes, class{canonical: r.Subgroup, coverage: r.Coverage})
		}
	}
	return replace, nil
}

// Relabel returns a copy of rows where every redundant subgroup is replaced by its
// canonical subgroup. Statistics and coverages of the rows are kept.
func Relabel(rows []results.Row, replace map[string]selector.Conjunction) []results.Row {
	out := make([]results.Row, len(rows))
	copy(out, rows)
	for i := range out {
		if canonical, exists := replace[out[i].Subgroup.Key()]; exists {
			out[i].Subgroup = canonical
		}
	}
	return out
}

// Deduplicate collapses equivalent subgroups of the table onto one canonical subgroup.
// No row is removed.
func Deduplicate(t *results.Table, eq Equivalence) (*results.Table, error) {
	replace, err := Replacements(t.Rows, eq)
	if err != nil {
		return nil, err
	}
	return &results.Table{RunID: t.RunID, NumRows: t.NumRows, Rows: Relabel(t.Rows, replace)}, nil
}

// DropDuplicates keeps the first row of every (subgroup, class) pair
func DropDuplicates(t *results.Table) *results.Table {
	seen := make(map[string]struct{}, len(t.Rows))
	return t.Filter(func(r results.Row) bool {
		k := r.Class + "\x00" + r.Subgroup.Key()
		if _, exists := seen[k]; exists {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}
