package cluster

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-subgroup/options"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/selector"
)

var (
	ErrLeafMismatch      = errors.New("clustering does not match the number of subgroups")
	ErrSelectionNotFound = errors.New("selected subgroup is not among the clustered subgroups")
)

// FilterByThreshold collapses every merge of c at or below f.Threshold into its higher
// quality subgroup and returns the surviving rows in their original order, together with
// the replacement of each eliminated subgroup. When one subgroup is selected, only
// survivors over the same pair of attributes are returned. rows and c are not modified,
// so the call can be repeated with any filter.
func FilterByThreshold(rows []results.Row, c *Clustering, f *options.Filter) ([]results.Row, map[string]selector.Conjunction, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	if c.NumLeaves != len(rows) {
		return nil, nil, fmt.Errorf("%w, %d leaves for %d subgroups", ErrLeafMismatch, c.NumLeaves, len(rows))
	}

	keep := func(results.Row) bool { return true }
	if len(f.Selected) == 1 {
		sel, found := (&results.Table{Rows: rows}).Find(f.Selected[0])
		if !found {
			return nil, nil, fmt.Errorf("%w, %q", ErrSelectionNotFound, f.Selected[0])
		}
		x, y := sel.XColumn(), sel.YColumn()
		keep = func(r results.Row) bool {
			return (r.XColumn() == x && r.YColumn() == y) != (r.XColumn() == y && r.YColumn() == x)
		}
	}

	qualities := make([]float64, len(rows))
	for i, r := range rows {
		qualities[i] = r.Quality
	}
	replace, active := Remerge(c, qualities, f.Threshold)

	replacements := make(map[string]selector.Conjunction, len(replace))
	for from, to := range replace {
		replacements[rows[from].Subgroup.Key()] = rows[to].Subgroup
	}

	filtered := make([]results.Row, 0, len(active))
	for _, i := range active {
		if keep(rows[i]) {
			filtered = append(filtered, rows[i])
		}
	}
	return filtered, replacements, nil
}
