package catalog

import (
	"math"

	"github.com/celldyn/mtstat/occur"
	"github.com/celldyn/mtstat/report"
)

// Cycle is a growth/shrink/pause life-cycle decomposition: the overall cycle
// duration and the time fraction contributed by each phase.
type Cycle struct {
	Duration     report.Stats   `json:"duration"`
	TimeFraction PhaseFractions `json:"time_fraction"`
}

// PhaseFractions are the relative duration contributions of the three
// kinetic phases. Degenerate denominators make them NaN (null in JSON).
type PhaseFractions struct {
	Growth report.Scalar `json:"growth"`
	Shrink report.Scalar `json:"shrink"`
	Pause  report.Scalar `json:"pause"`
}

// CyclePart is one ordered two-phase compound of the correlated cycle.
type CyclePart struct {
	Duration     report.Stats      `json:"duration"`
	TimeFraction TwoPhaseFractions `json:"time_fraction"`
}

// TwoPhaseFractions are phase contributions of a two-phase compound.
type TwoPhaseFractions struct {
	Growth report.Scalar `json:"growth"`
	Shrink report.Scalar `json:"shrink"`
}

// CorrelatedCycle is the life-cycle decomposition derived from actually
// observed ordered phase sequences.
type CorrelatedCycle struct {
	// SG is the shrink-then-growth compound view.
	SG CyclePart `json:"sg"`
	// GS is the growth-then-shrink compound view.
	GS CyclePart `json:"gs"`
	// G0S combines growth ending in shrink with and without an
	// intervening pause.
	G0S Cycle `json:"g0s"`
}

// CycleUncorrelated treats growth, shrink and pause as independent phases:
// the cycle duration is the sum of the three phase mean durations, and each
// phase's time fraction its mean over that sum. The reported deviation is
// the spread across the three phase means.
func (c *Catalog) CycleUncorrelated() Cycle {
	g := c.Growth.Duration()
	s := c.Shrink.Duration()
	p := c.Pause.Duration()

	phases := []float64{float64(s.Avg), float64(g.Avg), float64(p.Avg)}
	var sum float64
	for _, v := range phases {
		sum += v
	}
	_, spread := meanStd(phases)
	dur := report.NewStats(sum, spread, occur.UnitDuration)
	c.log.Info("uncorrelated cycle duration",
		"avg", dur.Avg, "std", dur.Std, "units", dur.Unit)

	fractions := PhaseFractions{
		Growth: report.Scalar(c.ratio(float64(g.Avg), sum, "uncorrelated growth time fraction")),
		Shrink: report.Scalar(c.ratio(float64(s.Avg), sum, "uncorrelated shrink time fraction")),
		Pause:  report.Scalar(c.ratio(float64(p.Avg), sum, "uncorrelated pause time fraction")),
	}
	if fractions.Growth.IsNaN() && fractions.Shrink.IsNaN() && fractions.Pause.IsNaN() {
		c.log.Info("no growth/shrink cycle detected; time fractions omitted")
	}
	return Cycle{Duration: dur, TimeFraction: fractions}
}

// CycleCorrelated derives the life cycle from the observed two- and
// three-phase compounds. The combined g0s duration is the count-weighted
// average of the gs and gps compound durations with a pooled deviation; it
// is defined only when both compounds contributed occurrences and both
// means are numbers. Time fractions relate the base-state mean durations to
// the compound durations.
func (c *Catalog) CycleCorrelated() CorrelatedCycle {
	growth := float64(c.Growth.Duration().Avg)
	shrink := float64(c.Shrink.Duration().Avg)
	pause := float64(c.Pause.Duration().Avg)

	sgDur := c.ShrinkThenGrowth.Duration()
	sg := CyclePart{
		Duration: sgDur,
		TimeFraction: TwoPhaseFractions{
			Growth: report.Scalar(c.ratio(growth, float64(sgDur.Avg), "correlated growth time fraction, sg cycle")),
			Shrink: report.Scalar(c.ratio(shrink, float64(sgDur.Avg), "correlated shrink time fraction, sg cycle")),
		},
	}

	gsDur := c.GrowthThenShrink.Duration()
	gs := CyclePart{
		Duration: gsDur,
		TimeFraction: TwoPhaseFractions{
			Growth: report.Scalar(c.ratio(growth, float64(gsDur.Avg), "correlated growth time fraction, gs cycle")),
			Shrink: report.Scalar(c.ratio(shrink, float64(gsDur.Avg), "correlated shrink time fraction, gs cycle")),
		},
	}

	g0s := c.combinedG0S(gsDur)
	g0s.TimeFraction = PhaseFractions{
		Growth: report.Scalar(c.ratio(growth, float64(g0s.Duration.Avg), "correlated growth time fraction, g0s cycle")),
		Shrink: report.Scalar(c.ratio(shrink, float64(g0s.Duration.Avg), "correlated shrink time fraction, g0s cycle")),
		Pause:  report.Scalar(c.ratio(pause, float64(g0s.Duration.Avg), "correlated pause time fraction, g0s cycle")),
	}
	if g0s.TimeFraction.Growth.IsNaN() &&
		g0s.TimeFraction.Shrink.IsNaN() &&
		g0s.TimeFraction.Pause.IsNaN() {
		c.log.Info("no growth/shrink cycle detected; time fractions omitted")
	}

	return CorrelatedCycle{SG: sg, GS: gs, G0S: g0s}
}

// combinedG0S pools the gs and gps compounds into the combined "growth
// ending in shrink, with or without pause" population.
func (c *Catalog) combinedG0S(gsDur report.Stats) Cycle {
	gpsDur := c.GrowthPauseShrink.Duration()
	nGS := c.GrowthThenShrink.Count()
	nGPS := c.GrowthPauseShrink.Count()
	total := nGS + nGPS

	dur := report.NaNStats(occur.UnitDuration)
	if total > 0 && gsDur.Defined() && gpsDur.Defined() {
		avg := (float64(nGS)*float64(gsDur.Avg) + float64(nGPS)*float64(gpsDur.Avg)) / float64(total)
		std := math.Sqrt(sq(float64(nGS)*float64(gsDur.Std))+sq(float64(nGPS)*float64(gpsDur.Std))) / float64(total)
		dur = report.NewStats(avg, std, occur.UnitDuration)
	}
	c.log.Info("correlated cycle g0s duration",
		"avg", dur.Avg, "std", dur.Std, "units", dur.Unit)
	return Cycle{Duration: dur}
}

// ratio is the degenerate-safe division used by every fraction derivation:
// a zero or NaN denominator yields NaN and is logged, never raised.
func (c *Catalog) ratio(num, den float64, what string) float64 {
	if den == 0 || math.IsNaN(den) {
		c.log.Info("degenerate denominator", "ratio", what)
		return math.NaN()
	}
	v := num / den
	c.log.Info(what, "value", v)
	return v
}

func sq(x float64) float64 { return x * x }

func meanStd(xs []float64) (mean, std float64) {
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / n
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / n)
}
