package occur

import (
	"math"

	"github.com/celldyn/mtstat/report"
)

// Units of the derived statistics.
const (
	UnitDuration      = "sec"
	UnitElongation    = "μm"
	UnitVelocity      = "μm/min"
	UnitReorientation = "deg"
)

// Duration computes the mean and standard deviation of the occurrence
// durations. NaN statistics on an empty set.
func (s *Set) Duration() report.Stats {
	return summarize(s.DTime, UnitDuration)
}

// Elongation computes the statistics of the physical length change incurred
// over the occurrences. Negative values mean net shortening.
func (s *Set) Elongation() report.Stats {
	return summarize(s.DLenUm, UnitElongation)
}

// Velocity computes the statistics of the end (de)polymerization velocity.
func (s *Set) Velocity() report.Stats {
	return summarize(s.Vel, UnitVelocity)
}

// Reorientation computes the statistics of the end direction change in
// degrees. ok is false when the source streams carry no orientations
// (older record format); the caller should omit the field, not fail.
func (s *Set) Reorientation() (stats report.Stats, ok bool) {
	if !s.withOrnt {
		return report.NaNStats(UnitReorientation), false
	}
	return summarize(s.DOrnt, UnitReorientation), true
}

// summarize computes mean and population standard deviation; NaN on empty.
func summarize(xs []float64, unit string) report.Stats {
	if len(xs) == 0 {
		return report.NaNStats(unit)
	}
	avg, std := meanStd(xs)
	return report.NewStats(avg, std, unit)
}

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

// XYDistribution builds a 2-D histogram of occurrence start positions
// projected onto the xy plane. edgesX and edgesY are the bin edges; the
// result has len(edgesX)-1 rows and len(edgesY)-1 columns. Points outside
// the edges are ignored; the rightmost edge is inclusive.
func (s *Set) XYDistribution(edgesX, edgesY []float64) [][]float64 {
	nx, ny := len(edgesX)-1, len(edgesY)-1
	if nx < 1 || ny < 1 {
		return nil
	}
	h := make([][]float64, nx)
	for i := range h {
		h[i] = make([]float64, ny)
	}
	for _, p := range s.PosFrom {
		ix, okx := bin(float64(p[0]), edgesX)
		iy, oky := bin(float64(p[1]), edgesY)
		if okx && oky {
			h[ix][iy]++
		}
	}
	return h
}

func bin(v float64, edges []float64) (int, bool) {
	n := len(edges) - 1
	if v < edges[0] || v > edges[n] {
		return 0, false
	}
	if v == edges[n] {
		return n - 1, true
	}
	// Linear scan keeps edge semantics obvious; edge counts are small.
	for i := 0; i < n; i++ {
		if v < edges[i+1] {
			return i, true
		}
	}
	return 0, false
}
