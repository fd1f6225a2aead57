package selector

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aouyang1/go-subgroup/bitmap"
	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/sgerrors"
)

// MaxSelectors is the largest conjunction that can be drawn on a 2D plot
const MaxSelectors = 2

var ErrSelectorCount = fmt.Errorf("plot limits need between 1 and %d selectors", MaxSelectors)

var errNilSelector = errors.New("nil selector")

// Conjunction is a subgroup description: an ordered list of selectors combined with AND.
// It is an immutable value; two conjunctions holding the same selectors in any order
// are equal and share the same Key.
type Conjunction struct {
	selectors []Selector
	key       string
}

func NewConjunction(sels ...Selector) Conjunction {
	s := make([]Selector, len(sels))
	copy(s, sels)
	return Conjunction{selectors: s, key: conjunctionKey(s)}
}

func conjunctionKey(sels []Selector) string {
	keys := make([]string, 0, len(sels))
	for _, s := range sels {
		if s == nil {
			keys = append(keys, "")
			continue
		}
		keys = append(keys, s.Key())
	}
	sort.Strings(keys)
	return strings.Join(keys, "&")
}

func (c Conjunction) Len() int {
	return len(c.selectors)
}

func (c Conjunction) At(i int) Selector {
	return c.selectors[i]
}

// Key identifies the conjunction independently of selector order
func (c Conjunction) Key() string {
	return c.key
}

func (c Conjunction) Equal(o Conjunction) bool {
	return c.key == o.key
}

// Valid reports whether the conjunction can be used as an equivalence class key
func (c Conjunction) Valid() error {
	if len(c.selectors) == 0 {
		return fmt.Errorf("%w: empty subgroup", sgerrors.MalformedRow)
	}
	for _, s := range c.selectors {
		if s == nil {
			return fmt.Errorf("%w: %v", sgerrors.MalformedRow, errNilSelector)
		}
	}
	return nil
}

func (c Conjunction) Has(s Selector) bool {
	k := s.Key()
	for _, sel := range c.selectors {
		if sel.Key() == k {
			return true
		}
	}
	return false
}

// HasAttribute reports whether any selector constrains the named attribute
func (c Conjunction) HasAttribute(attribute string) bool {
	for _, sel := range c.selectors {
		if sel.Attribute() == attribute {
			return true
		}
	}
	return false
}

// Refine returns a new conjunction with s appended
func (c Conjunction) Refine(s Selector) Conjunction {
	sels := make([]Selector, 0, len(c.selectors)+1)
	sels = append(sels, c.selectors...)
	sels = append(sels, s)
	return Conjunction{selectors: sels, key: conjunctionKey(sels)}
}

// Attributes returns the constrained attributes in declared order
func (c Conjunction) Attributes() []string {
	attrs := make([]string, 0, len(c.selectors))
	for _, s := range c.selectors {
		attrs = append(attrs, s.Attribute())
	}
	return attrs
}

// Cover returns the rows of t satisfying every selector. The empty conjunction
// covers the whole table.
func (c Conjunction) Cover(t *dataset.Table) (*bitmap.Coverage, error) {
	cov := bitmap.Full(t.NumRows())
	for _, s := range c.selectors {
		sc, err := Cover(s, t)
		if err != nil {
			return nil, err
		}
		cov = cov.And(sc)
	}
	return cov, nil
}

// SelectorJaccard returns the intersection over union of the two selector sets
func (c Conjunction) SelectorJaccard(o Conjunction) float64 {
	set := make(map[string]struct{}, len(c.selectors))
	for _, s := range c.selectors {
		set[s.Key()] = struct{}{}
	}
	other := make(map[string]struct{}, len(o.selectors))
	for _, s := range o.selectors {
		other[s.Key()] = struct{}{}
	}
	var inter int
	for k := range other {
		if _, exists := set[k]; exists {
			inter++
		}
	}
	union := len(set) + len(other) - inter
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}

func (c Conjunction) String() string {
	if len(c.selectors) == 0 {
		return "Dataset"
	}
	parts := make([]string, 0, len(c.selectors))
	for _, s := range c.selectors {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " AND ")
}

// Limit is the extent of one selector along its attribute's axis
type Limit struct {
	Attribute string
	Lower     float64
	Upper     float64
}

// Limits returns the plot bounds of every selector of c in declared order. Interval
// bounds are returned as is, including infinite ends, and numeric equalities become the
// degenerate interval [v, v]. Any other selector kind fails with
// sgerrors.UnsupportedSelector.
func Limits(c Conjunction) ([]Limit, error) {
	if len(c.selectors) == 0 || len(c.selectors) > MaxSelectors {
		return nil, fmt.Errorf("%w, got %d", ErrSelectorCount, len(c.selectors))
	}
	limits := make([]Limit, 0, len(c.selectors))
	for _, s := range c.selectors {
		var lower, upper float64
		var err error
		switch sel := s.(type) {
		case Interval:
			lower, upper, err = sel.Bounds()
		case Equality:
			lower, upper, err = sel.Bounds()
		default:
			err = fmt.Errorf("%w, %T", sgerrors.UnsupportedSelector, s)
		}
		if err != nil {
			return nil, err
		}
		limits = append(limits, Limit{Attribute: s.Attribute(), Lower: lower, Upper: upper})
	}
	return limits, nil
}
