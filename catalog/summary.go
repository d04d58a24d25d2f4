package catalog

import (
	"github.com/celldyn/mtstat/occur"
	"github.com/celldyn/mtstat/report"
	"github.com/celldyn/mtstat/state"
)

// PatternSummary is the reported view of one occurrence set: the occurrence
// count and, when occurrences exist, the derived statistics. Reorientation
// is omitted for streams of the older record format.
type PatternSummary struct {
	Count         int           `json:"num"`
	Duration      *report.Stats `json:"duration,omitempty"`
	Elongation    *report.Stats `json:"elongation,omitempty"`
	Velocity      *report.Stats `json:"velocity,omitempty"`
	Reorientation *report.Stats `json:"reorientation,omitempty"`
}

// Summary is the full per-region report handed to the reporting service.
type Summary struct {
	Region string `json:"region"`

	// Patterns holds every elementary pattern by name.
	Patterns map[string]PatternSummary `json:"patterns"`

	Growth PatternSummary `json:"growth"`
	Shrink PatternSummary `json:"shrink"`
	Pause  PatternSummary `json:"pause"`

	CycleUncorrelated Cycle           `json:"cycle_uncorrelated"`
	CycleCorrelated   CorrelatedCycle `json:"cycle_correlated"`
}

// Summary reports every elementary and composite category of the catalog
// together with both cycle decompositions.
func (c *Catalog) Summary() Summary {
	s := Summary{
		Region:   c.Region,
		Patterns: make(map[string]PatternSummary, len(c.Pure)),
	}
	for _, tbl := range [][]state.Pattern{state.Singles, state.Doubles, state.Triples} {
		for _, p := range tbl {
			name := p.Name()
			set := c.Pure[name]
			if set.Count() == 0 {
				c.log.Info("no events detected for pattern; skipping report", "pattern", name)
			}
			s.Patterns[name] = c.summarize(set)
		}
	}
	s.Growth = c.summarize(c.Growth)
	s.Shrink = c.summarize(c.Shrink)
	s.Pause = c.summarize(c.Pause)
	s.CycleUncorrelated = c.CycleUncorrelated()
	s.CycleCorrelated = c.CycleCorrelated()
	return s
}

func (c *Catalog) summarize(set *occur.Set) PatternSummary {
	ps := PatternSummary{Count: set.Count()}
	if ps.Count == 0 {
		return ps
	}
	dur := set.Duration()
	elo := set.Elongation()
	vel := set.Velocity()
	ps.Duration = &dur
	ps.Elongation = &elo
	ps.Velocity = &vel
	if ro, ok := set.Reorientation(); ok {
		ps.Reorientation = &ro
	}
	for _, m := range []report.Stats{dur, elo, vel} {
		c.log.Info(set.Name(), "avg", m.Avg, "std", m.Std, "units", m.Unit)
	}
	return ps
}
