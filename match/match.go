// Package match scans filament event streams for transition patterns.
//
// One generic algorithm serves all pattern widths: for each stream a bitset
// of candidate anchors is narrowed by per-field equality masks and the
// spatial region predicate, and the surviving anchors are pulled into an
// occurrence set.
package match

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/occur"
	"github.com/celldyn/mtstat/state"
)

// Region is a half-open interval [Min, Max) on the distance to cell center,
// selecting a cell sub-compartment.
type Region struct {
	Min float64
	Max float64
}

// Everywhere is the region imposing no spatial restriction.
func Everywhere() Region {
	return Region{Min: 0, Max: math.Inf(1)}
}

// Contains reports whether a distance lies in the region.
func (r Region) Contains(d float64) bool {
	return d >= r.Min && d < r.Max
}

// Match scans every stream for the pattern and accumulates the matching
// occurrences whose starting event lies in the region. edgeLen converts
// polymerization units to physical length. Occurrences with zero elapsed
// time are discarded before the set is returned.
//
// A pattern without matches yields an empty set; all of its derived
// statistics are NaN, which callers must read as "feature absent".
func Match(filaments []*history.Filament, p state.Pattern, reg Region, edgeLen float64) *occur.Set {
	withOrnt := len(filaments) > 0 && filaments[0].HasOrientation()
	set := occur.NewSet(p, withOrnt)

	for fi, f := range filaments {
		ii := anchors(f, p, reg)
		if len(ii) > 0 {
			set.Append(f, ii, fi, edgeLen)
		}
	}
	set.RemoveInstantaneous()
	return set
}

// anchors returns the indices i of stream f where the pattern's states match
// at i..i+w and the starting event lies in the region.
func anchors(f *history.Filament, p state.Pattern, reg Region) []int {
	w := p.Width()
	n := f.Len() - w
	if n <= 0 {
		return nil
	}

	cand := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if f.StateFrom[i] == p.From {
			cand.Set(uint(i))
		}
	}
	for k, st := range p.Steps {
		cand.InPlaceIntersection(maskStateTo(f, n, k, st))
	}
	cand.InPlaceIntersection(maskRegion(f, n, reg))

	ii := make([]int, 0, cand.Count())
	for i, ok := cand.NextSet(0); ok; i, ok = cand.NextSet(i + 1) {
		ii = append(ii, int(i))
	}
	return ii
}

func maskStateTo(f *history.Filament, n, offset int, st state.State) *bitset.BitSet {
	m := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if f.StateTo[i+offset] == st {
			m.Set(uint(i))
		}
	}
	return m
}

func maskRegion(f *history.Filament, n int, reg Region) *bitset.BitSet {
	m := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if reg.Contains(float64(f.DistCenter[i])) {
			m.Set(uint(i))
		}
	}
	return m
}
