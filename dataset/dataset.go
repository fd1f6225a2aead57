package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aouyang1/go-subgroup/sgerrors"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrColumnLength    = errors.New("column length does not match the table row count")
	ErrDuplicateColumn = errors.New("column name already present in table")
	ErrNoColumn        = errors.New("column not found in table")
	ErrNotNumeric      = errors.New("column is not numeric")
)

// Kind describes how the values of a column are stored and compared
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return "unknown"
}

// Column is a named, typed vector of cell values. Numeric columns use NaN for missing
// cells, categorical columns use the empty string.
type Column struct {
	Name string
	Kind Kind
	Nums []float64
	Strs []string
}

func NewNumeric(name string, v []float64) *Column {
	return &Column{Name: name, Kind: Numeric, Nums: v}
}

func NewCategorical(name string, v []string) *Column {
	return &Column{Name: name, Kind: Categorical, Strs: v}
}

func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Nums)
	}
	return len(c.Strs)
}

// String returns the textual form of the cell at row i
func (c *Column) String(i int) string {
	if c.Kind == Categorical {
		return c.Strs[i]
	}
	return strconv.FormatFloat(c.Nums[i], 'g', -1, 64)
}

// Range returns the min and max of the finite values of a numeric column. ok is false
// when the column holds no finite values.
func (c *Column) Range() (lo, hi float64, ok bool) {
	if c.Kind != Numeric {
		return 0, 0, false
	}
	finite := make([]float64, 0, len(c.Nums))
	for _, v := range c.Nums {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	return floats.Min(finite), floats.Max(finite), true
}

// Table is an ordered set of equally long columns addressed by name
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a table from the given columns. All columns must have the same length
// and distinct names.
func New(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if i == 0 {
			t.rows = c.Len()
		}
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(c *Column) error {
	if _, exists := t.index[c.Name]; exists {
		return fmt.Errorf("%w, %s", ErrDuplicateColumn, c.Name)
	}
	if c.Len() != t.rows {
		return fmt.Errorf("%w, %s has %d rows, expected %d", ErrColumnLength, c.Name, c.Len(), t.rows)
	}
	t.index[c.Name] = len(t.columns)
	t.columns = append(t.columns, c)
	return nil
}

func (t *Table) NumRows() int {
	return t.rows
}

func (t *Table) Columns() []*Column {
	return t.columns
}

// Names returns the column names in table order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		names = append(names, c.Name)
	}
	return names
}

func (t *Table) Column(name string) (*Column, bool) {
	i, exists := t.index[name]
	if !exists {
		return nil, false
	}
	return t.columns[i], true
}

// Numeric returns the values of a numeric column
func (t *Table) Numeric(name string) ([]float64, error) {
	c, exists := t.Column(name)
	if !exists {
		return nil, fmt.Errorf("%w, %s", ErrNoColumn, name)
	}
	if c.Kind != Numeric {
		return nil, fmt.Errorf("%w, %s", ErrNotNumeric, name)
	}
	return c.Nums, nil
}

// Drop returns a table sharing the column data of t without the named columns
func (t *Table) Drop(names ...string) *Table {
	skip := make(map[string]struct{}, len(names))
	for _, n := range names {
		skip[n] = struct{}{}
	}
	out := &Table{index: make(map[string]int), rows: t.rows}
	for _, c := range t.columns {
		if _, drop := skip[c.Name]; drop {
			continue
		}
		out.index[c.Name] = len(out.columns)
		out.columns = append(out.columns, c)
	}
	return out
}

// Concat joins tables column-wise. Tables must be row aligned.
func Concat(tables ...*Table) (*Table, error) {
	out := &Table{index: make(map[string]int)}
	for i, t := range tables {
		if i == 0 {
			out.rows = t.rows
		} else if t.rows != out.rows {
			return nil, fmt.Errorf("%w: %d != %d", sgerrors.MisalignedTables, t.rows, out.rows)
		}
		for _, c := range t.columns {
			if err := out.add(c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Validate checks the dataset and errors tables before discovery: the target column
// exists in the dataset, the class exists as an errors column and as a value of the
// target column, both tables are row aligned and every error value is finite.
// targetColumn and class are compared in NFC form.
func Validate(data, errs *Table, targetColumn, class string) error {
	targetColumn, class = Normalize(targetColumn), Normalize(class)
	target, exists := data.Column(targetColumn)
	if !exists {
		return fmt.Errorf("%w, '%s'", sgerrors.MissingTargetColumn, targetColumn)
	}
	if _, exists := errs.Column(class); !exists {
		return fmt.Errorf("%w, '%s'", sgerrors.MissingClassColumn, class)
	}
	if data.NumRows() != errs.NumRows() {
		return fmt.Errorf("%w: %d != %d", sgerrors.MisalignedTables, data.NumRows(), errs.NumRows())
	}

	var found bool
	for i := 0; i < target.Len(); i++ {
		if target.String(i) == class {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w, '%s'", sgerrors.ClassNotPresent, class)
	}

	for _, c := range errs.Columns() {
		if c.Kind != Numeric {
			return fmt.Errorf("%w, column %s is %s", sgerrors.InvalidTargetValue, c.Name, c.Kind)
		}
		for i, v := range c.Nums {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w, column %s row %d", sgerrors.InvalidTargetValue, c.Name, i)
			}
		}
	}
	return nil
}
