package mtstat

import (
	"time"

	"github.com/celldyn/mtstat/catalog"
	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/match"
)

// NamedRegion binds a cell sub-compartment name to its distance-to-center
// interval.
type NamedRegion struct {
	Name   string
	Bounds match.Region
}

// Config carries the run-wide analysis parameters: one immutable value per
// run, set before any matching starts.
type Config struct {
	// Version is the record format of the analyzed recording.
	Version history.Version

	// EdgeLength is the physical length (μm) of one polymerization unit.
	EdgeLength float64

	// End is the analyzed filament end, 0 or 1.
	End int

	// Regions are the spatial strata to analyze, in reporting order.
	Regions []NamedRegion
}

// Analyzer runs the pattern-matching and cycle statistics over one decoded
// recording. It is read-only over the recording; analyzers for different
// ends or runs are independent.
type Analyzer struct {
	cell    *history.Cell
	cfg     Config
	logger  *Logger
	metrics MetricsCollector
}

// New creates an Analyzer over a decoded recording.
func New(cell *history.Cell, cfg Config, opts ...Option) (*Analyzer, error) {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(cell.Filaments) == 0 {
		return nil, ErrNoFilaments
	}
	if len(cfg.Regions) == 0 {
		return nil, ErrNoRegions
	}
	if cfg.Version != cell.Version {
		return nil, &ErrVersionMismatch{Config: int(cfg.Version), Recording: int(cell.Version)}
	}

	return &Analyzer{
		cell:    cell,
		cfg:     cfg,
		logger:  o.logger.WithEnd(cfg.End),
		metrics: o.metrics,
	}, nil
}

// Catalog builds the category catalog for one named region.
func (a *Analyzer) Catalog(region string) (*catalog.Catalog, error) {
	for _, r := range a.cfg.Regions {
		if r.Name == region {
			return a.build(r)
		}
	}
	return nil, &ErrUnknownRegion{Region: region}
}

func (a *Analyzer) build(r NamedRegion) (*catalog.Catalog, error) {
	start := time.Now()
	c, err := catalog.Build(a.cell.Filaments, r.Name, r.Bounds, catalog.Config{
		Version:    a.cfg.Version,
		EdgeLength: a.cfg.EdgeLength,
		End:        a.cfg.End,
		Logger:     a.logger.Logger,
	})

	occurrences, patterns := 0, 0
	if c != nil {
		patterns = len(c.Pure)
		for _, s := range c.Pure {
			occurrences += s.Count()
		}
	}
	a.metrics.RecordCatalog(r.Name, occurrences, time.Since(start), err)
	a.logger.LogCatalog(r.Name, patterns, time.Since(start), err)
	return c, err
}

// Run builds the catalog of every configured region and collects the full
// summaries, keyed by region name.
func (a *Analyzer) Run() (map[string]catalog.Summary, error) {
	start := time.Now()
	out := make(map[string]catalog.Summary, len(a.cfg.Regions))
	for _, r := range a.cfg.Regions {
		c, err := a.build(r)
		if err != nil {
			a.metrics.RecordRun(len(out), time.Since(start), err)
			return nil, err
		}
		out[r.Name] = c.Summary()
	}
	a.metrics.RecordRun(len(out), time.Since(start), nil)
	return out, nil
}

// RecordingTime exposes the time span of the underlying recording, used to
// normalize state frequencies.
func (a *Analyzer) RecordingTime() history.RecordingTime {
	return a.cell.RecordingTime()
}
