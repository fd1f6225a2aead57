package subgroup

import (
	"context"
	"errors"

	"github.com/aouyang1/go-subgroup/cluster"
	"github.com/aouyang1/go-subgroup/configs"
	"github.com/aouyang1/go-subgroup/dataset"
	"github.com/aouyang1/go-subgroup/dedupe"
	"github.com/aouyang1/go-subgroup/options"
	"github.com/aouyang1/go-subgroup/quality"
	"github.com/aouyang1/go-subgroup/results"
	"github.com/aouyang1/go-subgroup/search"
	"github.com/aouyang1/go-subgroup/selector"
	"github.com/aouyang1/go-subgroup/space"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

var ErrNoConfigs = errors.New("no configs set for the pipeline")

// Pipeline discovers the subgroups where a model's error deviates from its average and
// reduces them to a small set of distinct regions. A pipeline holds no state between
// calls, so the tables it returns can be queried concurrently.
type Pipeline struct {
	Cfg       *configs.Discovery
	QF        quality.Function
	Clusterer cluster.Clusterer
	log       *Logger
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithLogger sets the logger of the pipeline, NoopLogger by default
func WithLogger(l *Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithQualityFunction replaces the bidirectional quality function built from the configs
func WithQualityFunction(qf quality.Function) Option {
	return func(p *Pipeline) {
		p.QF = qf
	}
}

// WithClusterer replaces the average linkage clusterer
func WithClusterer(c cluster.Clusterer) Option {
	return func(p *Pipeline) {
		p.Clusterer = c
	}
}

// New returns a pipeline for the given discovery configs
func New(cfg *configs.Discovery, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, ErrNoConfigs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	qf, err := quality.NewBidirectional(cfg.A)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		Cfg:       cfg,
		QF:        qf,
		Clusterer: cluster.Average{},
		log:       NoopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Discover searches the subgroups of every error column of errs. The target column is
// removed from data before the selector space is built, and no selector is built over an
// error column. Each row of the result is tagged with the error column it was found for.
// A constant error column contributes no rows.
func (p *Pipeline) Discover(ctx context.Context, data, errs *dataset.Table, targetColumn, class string) (*results.Table, error) {
	targetColumn, class = dataset.Normalize(targetColumn), dataset.Normalize(class)
	if err := dataset.Validate(data, errs, targetColumn, class); err != nil {
		return nil, err
	}
	merged, err := dataset.Concat(data.Drop(targetColumn), errs)
	if err != nil {
		return nil, err
	}
	sels, err := space.Build(merged, p.Cfg.NumBins, errs.Names()...)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := p.log.WithRunID(runID)

	tables := make([]*results.Table, 0, len(errs.Names()))
	for _, target := range errs.Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, summary, err := search.BeamSearch(&search.Task{
			Data:          merged,
			Target:        target,
			Space:         sels,
			ResultSetSize: p.Cfg.ResultSetSize,
			BeamWidth:     p.Cfg.Width(),
			Depth:         p.Cfg.Depth,
			QF:            p.QF,
		})
		log.LogDiscovery(ctx, summary, err)
		if err != nil {
			return nil, err
		}
		tables = append(tables, &results.Table{Rows: rows})
	}

	out := results.Concat(runID, merged.NumRows(), tables...)
	log.InfoContext(ctx, "discovery run completed",
		"targets", len(tables),
		"selectors", len(sels),
		"subgroups", out.Len(),
		"classes", out.Classes(),
	)
	return out, nil
}

// Deduplicate relabels equivalent subgroups with their canonical representative under
// the configured policy, then drops repeated (subgroup, class) rows and rows with fewer
// than MinSelectors selectors. An empty table is a valid result.
func (p *Pipeline) Deduplicate(ctx context.Context, t *results.Table) (*results.Table, error) {
	eq := dedupe.Exact
	if p.Cfg.DedupPolicy == configs.DedupContainment {
		eq = dedupe.Containment
	}
	log := p.log.WithRunID(t.RunID)

	out, err := dedupe.Deduplicate(t, eq)
	if err != nil {
		log.LogDeduplicate(ctx, t.Len(), 0, err)
		return nil, err
	}
	out = dedupe.DropDuplicates(out).WithMinSelectors(p.Cfg.MinSelectors)
	log.LogDeduplicate(ctx, t.Len(), out.Len(), nil)
	return out, nil
}

// Clusters is the hierarchical clustering of a set of subgroups. Leaf i of Tree is
// Rows[i].
type Clusters struct {
	Class     string
	Rows      []results.Row
	Distances *mat.SymDense // nil when there are no rows
	Tree      *cluster.Clustering
}

// Cluster builds the full merge tree of the subgroups found for class. An empty class
// clusters the distinct subgroups of every class, keeping the first row of each.
func (p *Pipeline) Cluster(ctx context.Context, t *results.Table, class string) (*Clusters, error) {
	var rows []results.Row
	if class != "" {
		rows = t.ForClass(class).Rows
	} else {
		rows = distinctSubgroups(t.Rows)
	}

	c := &Clusters{Class: class, Rows: rows, Tree: &cluster.Clustering{}}
	if len(rows) > 0 {
		c.Distances = cluster.DistanceMatrix(rows)
		tree, err := p.Clusterer.Fit(c.Distances)
		p.log.WithRunID(t.RunID).LogCluster(ctx, class, len(rows), err)
		if err != nil {
			return nil, err
		}
		c.Tree = tree
	}
	return c, nil
}

func distinctSubgroups(rows []results.Row) []results.Row {
	seen := make(map[string]struct{}, len(rows))
	out := make([]results.Row, 0, len(rows))
	for _, r := range rows {
		if _, exists := seen[r.Subgroup.Key()]; exists {
			continue
		}
		seen[r.Subgroup.Key()] = struct{}{}
		out = append(out, r)
	}
	return out
}

// FilterByThreshold returns the subgroups of c that survive collapsing every merge at or
// below f.Threshold, with the replacement of each collapsed subgroup keyed by its
// selector key. c is left untouched.
func (p *Pipeline) FilterByThreshold(c *Clusters, f *options.Filter) ([]results.Row, map[string]selector.Conjunction, error) {
	return cluster.FilterByThreshold(c.Rows, c.Tree, f)
}

// Dendrogram is what a renderer needs to draw the merge tree of a set of subgroups
type Dendrogram struct {
	Class     string          `json:"class" yaml:"class"`
	Labels    []string        `json:"labels" yaml:"labels"`
	Distances [][]float64     `json:"distances" yaml:"distances"`
	Linkage   []cluster.Merge `json:"linkage" yaml:"linkage"`
}

// Dendrogram returns the leaf labels, the dissimilarity matrix and the linkage matrix of c
func (p *Pipeline) Dendrogram(c *Clusters) *Dendrogram {
	d := &Dendrogram{
		Class:     c.Class,
		Labels:    make([]string, 0, len(c.Rows)),
		Distances: make([][]float64, len(c.Rows)),
		Linkage:   cluster.Linkage(c.Tree),
	}
	for _, r := range c.Rows {
		d.Labels = append(d.Labels, r.Subgroup.String())
	}
	for i := range d.Distances {
		d.Distances[i] = make([]float64, len(c.Rows))
		for j := range d.Distances[i] {
			d.Distances[i][j] = c.Distances.At(i, j)
		}
	}
	return d
}
