package selector

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aouyang1/go-subgroup/bitmap"
	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/sgerrors"
)

var ErrUnknownAttribute = errors.New("selector attribute is not a column of the table")

/*
Selector is an atomic predicate over one attribute of a table. The set of selectors
is closed: Interval and Equality are the only implementations.

Covers reports whether the cell at the given row of the attribute's column satisfies
the predicate. Key returns a string that is equal for two selectors exactly when they
are interchangeable.
*/
type Selector interface {
	Attribute() string
	Covers(c *dataset.Column, row int) bool
	Key() string
	String() string

	selector()
}

// Interval constrains a numeric attribute to [lower, upper). Either end may be open
// by using -Inf or +Inf.
type Interval struct {
	attribute    string
	lower, upper float64
}

func NewInterval(attribute string, lower, upper float64) Interval {
	return Interval{attribute, lower, upper}
}

func (i Interval) selector() {}

func (i Interval) Attribute() string {
	return i.attribute
}

// Bounds returns the lower and upper end of the interval, which may be infinite
func (i Interval) Bounds() (float64, float64, error) {
	return i.lower, i.upper, nil
}

// Covers is false for missing or non numeric cells
func (i Interval) Covers(c *dataset.Column, row int) bool {
	if c.Kind != dataset.Numeric {
		return false
	}
	v := c.Nums[row]
	if math.IsNaN(v) {
		return false
	}
	return (math.IsInf(i.lower, -1) || i.lower <= v) && (math.IsInf(i.upper, 1) || v < i.upper)
}

func (i Interval) Key() string {
	return "I|" + i.attribute + "|" + formatFloat(i.lower) + "|" + formatFloat(i.upper)
}

func (i Interval) String() string {
	lowerOpen, upperOpen := math.IsInf(i.lower, -1), math.IsInf(i.upper, 1)
	switch {
	case lowerOpen && upperOpen:
		return i.attribute + " = anything"
	case lowerOpen:
		return i.attribute + "<" + formatFloat(i.upper)
	case upperOpen:
		return i.attribute + ">=" + formatFloat(i.lower)
	}
	return fmt.Sprintf("%s: [%s:%s[", i.attribute, formatFloat(i.lower), formatFloat(i.upper))
}

// Value is the operand of an Equality selector, either a number or a string
type Value struct {
	Num     float64
	Str     string
	Numeric bool
}

func Num(f float64) Value {
	return Value{Num: f, Numeric: true}
}

func Str(s string) Value {
	return Value{Str: s}
}

// Equal treats NaN as equal to NaN so a missing-value selector matches itself
func (v Value) Equal(o Value) bool {
	if v.Numeric != o.Numeric {
		return false
	}
	if !v.Numeric {
		return v.Str == o.Str
	}
	if math.IsNaN(v.Num) || math.IsNaN(o.Num) {
		return math.IsNaN(v.Num) && math.IsNaN(o.Num)
	}
	return v.Num == o.Num
}

func (v Value) String() string {
	if v.Numeric {
		return formatFloat(v.Num)
	}
	return "'" + v.Str + "'"
}

// Equality constrains an attribute to a single value
type Equality struct {
	attribute string
	value     Value
}

func NewEquality(attribute string, value Value) Equality {
	return Equality{attribute, value}
}

func (e Equality) selector() {}

func (e Equality) Attribute() string {
	return e.attribute
}

func (e Equality) Value() Value {
	return e.value
}

// Bounds returns the degenerate interval [v, v] of a numeric equality. String and
// missing-value equalities have no position on an axis.
func (e Equality) Bounds() (float64, float64, error) {
	if !e.value.Numeric || math.IsNaN(e.value.Num) {
		return 0, 0, fmt.Errorf("%w, %s", sgerrors.UnsupportedSelector, e)
	}
	return e.value.Num, e.value.Num, nil
}

func (e Equality) Covers(c *dataset.Column, row int) bool {
	switch c.Kind {
	case dataset.Numeric:
		return e.value.Numeric && e.value.Equal(Num(c.Nums[row]))
	case dataset.Categorical:
		return !e.value.Numeric && c.Strs[row] == e.value.Str
	}
	return false
}

func (e Equality) Key() string {
	if e.value.Numeric {
		return "E|" + e.attribute + "|n:" + formatFloat(e.value.Num)
	}
	return "E|" + e.attribute + "|s:" + e.value.Str
}

func (e Equality) String() string {
	if e.value.Numeric && math.IsNaN(e.value.Num) {
		return e.attribute + ".isnull()"
	}
	return e.attribute + "==" + e.value.String()
}

// Cover returns the rows of t satisfied by s
func Cover(s Selector, t *dataset.Table) (*bitmap.Coverage, error) {
	c, exists := t.Column(s.Attribute())
	if !exists {
		return nil, fmt.Errorf("%w, %s", ErrUnknownAttribute, s.Attribute())
	}
	cov := bitmap.New()
	for row := 0; row < c.Len(); row++ {
		if s.Covers(c, row) {
			cov.Add(row)
		}
	}
	return cov, nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
