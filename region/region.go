package region

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/selector"
)

// Delta pads every side of an overlay rectangle so edges do not hide boundary points
const Delta = 0.02

var (
	ErrNoRange  = errors.New("column has no finite values to bound an open interval")
	ErrOffAxis  = errors.New("subgroup constrains an attribute outside the plotted axes")
	ErrSameAxes = errors.New("x and y columns must differ")
)

// Direction tells whether a subgroup's mean error lies above or below the dataset mean
type Direction int

const (
	Below Direction = iota
	Above
)

func (d Direction) String() string {
	if d == Above {
		return "above"
	}
	return "below"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "above":
		*d = Above
	case "below":
		*d = Below
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Limits returns the bounds of every selector of c with infinite ends replaced by the
// observed minimum and maximum of the attribute in t.
func Limits(c selector.Conjunction, t *dataset.Table) ([]selector.Limit, error) {
	limits, err := selector.Limits(c)
	if err != nil {
		return nil, err
	}
	for i, l := range limits {
		if !math.IsInf(l.Lower, 0) && !math.IsInf(l.Upper, 0) {
			continue
		}
		lo, hi, err := columnRange(t, l.Attribute)
		if err != nil {
			return nil, err
		}
		if math.IsInf(l.Lower, -1) {
			limits[i].Lower = lo
		}
		if math.IsInf(l.Upper, 1) {
			limits[i].Upper = hi
		}
	}
	return limits, nil
}

func columnRange(t *dataset.Table, attribute string) (float64, float64, error) {
	col, exists := t.Column(attribute)
	if !exists {
		return 0, 0, fmt.Errorf("%w, %s", selector.ErrUnknownAttribute, attribute)
	}
	lo, hi, ok := col.Range()
	if !ok {
		return 0, 0, fmt.Errorf("%w, %s", ErrNoRange, attribute)
	}
	return lo, hi, nil
}

// Rect is the overlay of one subgroup on the (x, y) scatter plot
type Rect struct {
	Subgroup    string    `json:"subgroup" yaml:"subgroup"`
	X0          float64   `json:"x0" yaml:"x0"`
	Y0          float64   `json:"y0" yaml:"y0"`
	X1          float64   `json:"x1" yaml:"x1"`
	Y1          float64   `json:"y1" yaml:"y1"`
	Direction   Direction `json:"direction" yaml:"direction"`
	MeanSG      float64   `json:"mean_sg" yaml:"mean_sg"`
	MeanDataset float64   `json:"mean_dataset" yaml:"mean_dataset"`
}

// Overlay returns the rectangle covered by r on the x and y axes, padded by Delta. An axis
// the subgroup does not constrain spans the full observed range of its column.
func Overlay(r results.Row, x, y string, t *dataset.Table) (Rect, error) {
	if x == y {
		return Rect{}, ErrSameAxes
	}
	limits, err := Limits(r.Subgroup, t)
	if err != nil {
		return Rect{}, err
	}

	var xl, yl *selector.Limit
	for i := range limits {
		switch limits[i].Attribute {
		case x:
			xl = &limits[i]
		case y:
			yl = &limits[i]
		default:
			return Rect{}, fmt.Errorf("%w, %s", ErrOffAxis, limits[i].Attribute)
		}
	}
	if xl == nil {
		if xl, err = fullAxis(t, x); err != nil {
			return Rect{}, err
		}
	}
	if yl == nil {
		if yl, err = fullAxis(t, y); err != nil {
			return Rect{}, err
		}
	}

	rect := Rect{
		Subgroup:    r.Subgroup.String(),
		X0:          xl.Lower - Delta,
		Y0:          yl.Lower - Delta,
		X1:          xl.Upper + Delta,
		Y1:          yl.Upper + Delta,
		Direction:   Below,
		MeanSG:      r.MeanSG,
		MeanDataset: r.MeanDataset,
	}
	if r.MeanSG > r.MeanDataset {
		rect.Direction = Above
	}
	return rect, nil
}

func fullAxis(t *dataset.Table, attribute string) (*selector.Limit, error) {
	lo, hi, err := columnRange(t, attribute)
	if err != nil {
		return nil, err
	}
	return &selector.Limit{Attribute: attribute, Lower: lo, Upper: hi}, nil
}

// Overlays returns the rectangle of every row on the x and y axes. It stops at the first
// row that cannot be drawn.
func Overlays(rows []results.Row, x, y string, t *dataset.Table) ([]Rect, error) {
	rects := make([]Rect, 0, len(rows))
	for _, r := range rows {
		rect, err := Overlay(r, x, y, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Subgroup, err)
		}
		rects = append(rects, rect)
	}
	return rects, nil
}
