// Package catalog composes elementary occurrence sets into the semantic
// categories of the microtubule life cycle and derives population-level
// statistics from them.
//
// For one spatial region the catalog holds every named pure pattern of
// widths 1-3, the three basic kinetic states obtained by merging the pure
// alternatives (growth, shrink, pause), the two- and three-phase compounds,
// and the uncorrelated and correlated cycle decompositions.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/match"
	"github.com/celldyn/mtstat/occur"
	"github.com/celldyn/mtstat/state"
)

// Config carries the run-wide analysis parameters. It replaces any implicit
// process-wide state: one immutable value is passed into every catalog.
type Config struct {
	// Version is the record format of the analyzed streams.
	Version history.Version

	// EdgeLength is the physical length (μm) of one polymerization unit.
	EdgeLength float64

	// End is the analyzed filament end, 0 or 1. Reporting only.
	End int

	// Logger receives diagnostics; nil discards them.
	Logger *slog.Logger
}

func (c Config) validate() error {
	if !c.Version.Valid() {
		return fmt.Errorf("catalog: unknown record format version %d", c.Version)
	}
	if c.EdgeLength <= 0 {
		return fmt.Errorf("catalog: edge length must be positive, got %g", c.EdgeLength)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Catalog is the per-region collection of occurrence sets.
type Catalog struct {
	// Region names the cell sub-compartment the catalog was built for.
	Region string

	// Bounds is the distance-to-center interval defining the region.
	Bounds match.Region

	// Pure maps pattern name to the elementary occurrence set, for every
	// pattern in the state tables.
	Pure map[string]*occur.Set

	// Growth, Shrink and Pause are the three basic kinetic states, each the
	// union of all pure transitions converging on that state.
	Growth *occur.Set
	Shrink *occur.Set
	Pause  *occur.Set

	// ShrinkThenGrowth and GrowthThenShrink are the two-phase compounds.
	ShrinkThenGrowth *occur.Set
	GrowthThenShrink *occur.Set

	// GrowthPauseShrink is the three-phase compound: growth ending in
	// shrink through an intervening pause.
	GrowthPauseShrink *occur.Set

	cfg Config
	log *slog.Logger
}

// Build scans the streams for every pattern in the state tables restricted
// to the region, and derives the composite categories.
func Build(filaments []*history.Filament, region string, bounds match.Region, cfg Config) (*Catalog, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Catalog{
		Region: region,
		Bounds: bounds,
		Pure:   make(map[string]*occur.Set),
		cfg:    cfg,
		log:    cfg.logger().With("region", region, "end", cfg.End),
	}

	for _, tbl := range [][]state.Pattern{state.Singles, state.Doubles, state.Triples} {
		for _, p := range tbl {
			c.Pure[p.Name()] = match.Match(filaments, p, bounds, cfg.EdgeLength)
		}
	}

	if c.allSinglesEmpty() {
		c.log.Warn("no event of any type detected in region; are the region borders meaningful?")
	}

	c.Growth = c.merge("sg", "pg", "cg")
	c.Shrink = c.merge("gs", "ps", "cs")
	c.Pause = c.merge("gp", "sp")
	c.ShrinkThenGrowth = c.merge("gsg", "psg", "csg")
	c.GrowthThenShrink = c.merge("sgs", "pgs", "cgs")
	c.GrowthPauseShrink = c.merge("sgps", "cgps")

	return c, nil
}

// Get returns the elementary occurrence set by pure pattern name.
func (c *Catalog) Get(name string) (*occur.Set, bool) {
	s, ok := c.Pure[name]
	return s, ok
}

func (c *Catalog) allSinglesEmpty() bool {
	for _, p := range state.Singles {
		if c.Pure[p.Name()].Count() > 0 {
			return false
		}
	}
	return true
}

// merge unions pure sets by name. The operands come from disjoint patterns,
// so shared anchors indicate a table error and are logged.
func (c *Catalog) merge(names ...string) *occur.Set {
	sets := make([]*occur.Set, len(names))
	for k, n := range names {
		sets[k] = c.Pure[n]
	}
	m := occur.MustMerge(sets...)
	if m.DuplicateAnchors > 0 {
		c.log.Warn("merged occurrence sets share anchors; union operands must be disjoint",
			"category", m.Name(), "duplicates", m.DuplicateAnchors)
	}
	return m
}
