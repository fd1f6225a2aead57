package search

import (
	"errors"

	"github.com/aouyang1/go-subgroup/bitmap"
	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/quality"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/selector"
	"github.com/aouyang1/go-subgroup/stats"
)

var (
	ErrNoQualityFunction = errors.New("no quality function set for search")
	ErrInvalidBeamWidth  = errors.New("invalid beam width, must be at least the result set size")
	ErrInvalidDepth      = errors.New("invalid depth, must be at least 1")
)

// Task describes one subgroup discovery search over a numeric target column
type Task struct {
	Data          *dataset.Table // table the selectors and the target are evaluated on
	Target        string
	Space         []selector.Selector
	ResultSetSize int
	BeamWidth     int
	Depth         int
	QF            quality.Function
}

func (t *Task) validate() error {
	if t.QF == nil {
		return ErrNoQualityFunction
	}
	if t.ResultSetSize < 1 || t.BeamWidth < t.ResultSetSize {
		return ErrInvalidBeamWidth
	}
	if t.Depth < 1 {
		return ErrInvalidDepth
	}
	return nil
}

type coveredSelector struct {
	sel selector.Selector
	cov *bitmap.Coverage
}

// BeamSearch refines subgroups one selector at a time, starting from the whole table, for
// up to Depth levels. At each level every unexpanded member of the beam is combined with
// every selector over an attribute it does not constrain yet; candidates covering no rows
// are dropped and the rest compete for a place in the beam. The best ResultSetSize
// members are returned by descending quality, ties in discovery order.
//
// An empty table or a constant target yields no rows and no error.
func BeamSearch(task *Task) ([]results.Row, stats.Summary, error) {
	summary := stats.Summary{Target: task.Target, NumSelectors: len(task.Space)}
	if err := task.validate(); err != nil {
		return nil, summary, err
	}
	values, err := task.Data.Numeric(task.Target)
	if err != nil {
		return nil, summary, err
	}
	summary.NumRows = len(values)
	if stats.Constant(values) {
		return nil, summary, nil
	}
	overall := stats.Dataset(values)

	space := make([]coveredSelector, 0, len(task.Space))
	for _, sel := range task.Space {
		cov, err := selector.Cover(sel, task.Data)
		if err != nil {
			return nil, summary, err
		}
		space = append(space, coveredSelector{sel, cov})
	}

	beam := results.NewBeam(task.BeamWidth)
	frontier := []results.Row{{
		Subgroup:    selector.NewConjunction(),
		Coverage:    bitmap.Full(len(values)),
		MeanSG:      overall.Mean,
		MeanDataset: overall.Mean,
		Size:        overall.Size,
		Class:       task.Target,
	}}
	visited := make(map[string]struct{})

	for depth := 0; depth < task.Depth; depth++ {
		var expanded int
		for _, parent := range frontier {
			if _, done := visited[parent.Subgroup.Key()]; done {
				continue
			}
			visited[parent.Subgroup.Key()] = struct{}{}
			expanded++

			for _, cs := range space {
				if parent.Subgroup.HasAttribute(cs.sel.Attribute()) {
					continue
				}
				cov := parent.Coverage.And(cs.cov)
				if cov.IsEmpty() {
					continue
				}
				sg := stats.Subgroup(values, cov)
				summary.NumCandidates++
				beam.Update(results.Row{
					Subgroup:    parent.Subgroup.Refine(cs.sel),
					Coverage:    cov,
					MeanSG:      sg.Mean,
					MeanDataset: overall.Mean,
					Size:        sg.Size,
					Quality:     task.QF.Evaluate(sg.Size, sg.Mean, overall.Mean),
					Class:       task.Target,
				})
			}
		}
		if expanded == 0 {
			break
		}
		frontier = beam.Rows()
	}

	rows := beam.Rows()
	if len(rows) > task.ResultSetSize {
		rows = rows[:task.ResultSetSize]
	}
	summary.NumResults = len(rows)
	return rows, summary, nil
}
