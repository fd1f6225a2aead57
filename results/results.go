package results

import (
	"github.com/aouyang1/go-subgroup/bitmap"
	"github.com/aouyang1/go-subgroup/selector"
)

// Row is one discovered subgroup together with its coverage and statistics for the
// target column named by Class
type Row struct {
	Subgroup    selector.Conjunction
	Coverage    *bitmap.Coverage
	MeanSG      float64
	MeanDataset float64
	Size        int
	Quality     float64
	Class       string
}

// XColumn returns the attribute of the first selector, or "" for an empty subgroup
func (r Row) XColumn() string {
	if r.Subgroup.Len() < 1 {
		return ""
	}
	return r.Subgroup.At(0).Attribute()
}

// YColumn returns the attribute of the second selector, or "" if there is none
func (r Row) YColumn() string {
	if r.Subgroup.Len() < 2 {
		return ""
	}
	return r.Subgroup.At(1).Attribute()
}

// Table is the output of a discovery run. Rows are never modified in place: every
// transformation returns a new table so a table can be shared by concurrent readers.
type Table struct {
	RunID   string
	NumRows int // number of rows of the searched dataset, the length of every coverage mask
	Rows    []Row
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Mask returns the coverage of row i as a boolean mask over the searched dataset
func (t *Table) Mask(i int) []bool {
	return t.Rows[i].Coverage.Mask(t.NumRows)
}

func (t *Table) with(rows []Row) *Table {
	return &Table{RunID: t.RunID, NumRows: t.NumRows, Rows: rows}
}

// Filter returns the rows for which keep returns true, in order
func (t *Table) Filter(keep func(Row) bool) *Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return t.with(rows)
}

// ForClass returns the rows discovered for the given target column
func (t *Table) ForClass(class string) *Table {
	return t.Filter(func(r Row) bool { return r.Class == class })
}

// WithMinSelectors drops rows whose subgroup has fewer than n selectors
func (t *Table) WithMinSelectors(n int) *Table {
	return t.Filter(func(r Row) bool { return r.Subgroup.Len() >= n })
}

// Classes returns the distinct classes in order of first appearance
func (t *Table) Classes() []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, r := range t.Rows {
		if _, exists := seen[r.Class]; exists {
			continue
		}
		seen[r.Class] = struct{}{}
		classes = append(classes, r.Class)
	}
	return classes
}

// Find returns the first row whose subgroup description equals description
func (t *Table) Find(description string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Subgroup.String() == description {
			return r, true
		}
	}
	return Row{}, false
}

// Concat appends the rows of the given tables in order
func Concat(runID string, numRows int, tables ...*Table) *Table {
	out := &Table{RunID: runID, NumRows: numRows}
	for _, t := range tables {
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}

// Record is the tabular view of a row shown to users
type Record struct {
	Subgroup string  `json:"subgroup" yaml:"subgroup"`
	Class    string  `json:"class" yaml:"class"`
	Size     int     `json:"size" yaml:"size"`
	AvgError float64 `json:"avg_error" yaml:"avg_error"`
	Quality  float64 `json:"quality" yaml:"quality"`
}

func (t *Table) Summary() []Record {
	out := make([]Record, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, Record{
			Subgroup: r.Subgroup.String(),
			Class:    r.Class,
			Size:     r.Size,
			AvgError: r.MeanSG,
			Quality:  r.Quality,
		})
	}
	return out
}
