package catalog

import (
	"math"

	"github.com/celldyn/mtstat/report"
)

// Frequencies are the per-region transition frequencies of the basic states
// and their derived ratios.
type Frequencies struct {
	// Catastrophes, Recoveries and Pauses are the transition rates into the
	// shrinking, growing and paused states, in events per second.
	Catastrophes report.Scalar `json:"catastrophes"`
	Recoveries   report.Scalar `json:"recoveries"`
	Pauses       report.Scalar `json:"pauses"`

	// FractionSpontaneousCatastrophes is the share of catastrophes entered
	// directly from growth, without an intervening pause.
	FractionSpontaneousCatastrophes report.Scalar `json:"fraction_spontaneous_catastrophes"`

	// RecoveryToCatastrophe is the ratio of recovery to catastrophe rates.
	RecoveryToCatastrophe report.Scalar `json:"ratio_rec2cat"`
}

// StateFrequencies derives the transition frequencies over a recording of
// the given duration (seconds).
func (c *Catalog) StateFrequencies(recordingDuration float64) Frequencies {
	f := Frequencies{
		Catastrophes: report.Scalar(c.ratio(float64(c.Shrink.Count()), recordingDuration, "catastrophe frequency")),
		Recoveries:   report.Scalar(c.ratio(float64(c.Growth.Count()), recordingDuration, "recovery frequency")),
		Pauses:       report.Scalar(c.ratio(float64(c.Pause.Count()), recordingDuration, "pause frequency")),
	}

	spontaneous := math.NaN()
	if n := c.Shrink.Count(); n > 0 {
		spontaneous = float64(c.Pure["gs"].Count()) / float64(n)
	}
	f.FractionSpontaneousCatastrophes = report.Scalar(spontaneous)
	c.log.Info("fraction of spontaneous catastrophes", "value", spontaneous)

	f.RecoveryToCatastrophe = report.Scalar(
		c.ratio(float64(f.Recoveries), float64(f.Catastrophes), "recovery to catastrophe ratio"))

	return f
}

// RadialGrowthDistribution discretizes the positions of growing ends as a
// function of distance to the cell center. edges are the histogram bin
// boundaries; bin j counts growth occurrences whose start and end center
// distances straddle edges[j].
func (c *Catalog) RadialGrowthDistribution(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	h := make([]float64, len(edges)-1)
	for k := range c.Growth.DistCenterFrom {
		from := float64(c.Growth.DistCenterFrom[k])
		to := float64(c.Growth.DistCenterTo[k])
		for j := 0; j < len(edges)-1; j++ {
			if from < edges[j] && edges[j] <= to {
				h[j]++
			}
		}
	}
	return h
}
