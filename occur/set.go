// Package occur implements occurrence sets: the vectorized accumulation,
// over all filament event streams, of every position where a transition
// pattern matched.
//
// A Set is created empty by a matcher, populated with Append (one call per
// filament that contributed matches), finalized with RemoveInstantaneous,
// and then either consumed directly or combined with sibling sets via Merge.
// All per-occurrence vectors are concatenated in filament processing order;
// that order carries no meaning, and the derived statistics depend only on
// aggregate mean and standard deviation.
package occur

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/internal/vecmath"
	"github.com/celldyn/mtstat/state"
)

// Set is the accumulated result of one pattern applied across all filaments.
//
// The exported slices run parallel: element k of each describes occurrence k.
// Slices tied to the V2 record format (counters, reorientation) are nil when
// the source streams lack those channels.
type Set struct {
	// Pattern names the set; composite (merged) sets carry a pattern with
	// an undefined leading state.
	Pattern state.Pattern

	// Filament and Index anchor each occurrence: the source stream and the
	// event index the pattern matched at.
	Filament []int
	Index    []int

	// NGrow/NShrink are the cumulative counters at the anchor; DGrow/DShrink
	// the counter increments over the pattern. V2 streams only.
	NGrow   []uint64
	NShrink []uint64
	DGrow   []int32
	DShrink []int32

	// DLen is the length change in polymerization units, DLenUm its physical
	// conversion, DTime is the elapsed time and Vel the polymerization
	// velocity in physical length per minute.
	DLen   []int32
	DLenUm []float64
	DTime  []float64
	Vel    []float64

	// DOrnt is the end reorientation in degrees; nil without orientations.
	DOrnt []float64

	// Raw channels copied from the stream at the anchor (and, for positions
	// and center distances, at the pattern's final event).
	Length         []uint32
	Time           []float64
	PosFrom        [][3]float32
	PosTo          [][3]float32
	DistCenterFrom []float32
	DistCenterTo   []float32
	DistMembrane   []float32
	DistNucleus    []float32
	Cas            [][6]float32

	// DuplicateAnchors counts (filament, index) anchors shared by the two
	// operands of the Merge that produced this set. Nonzero means the merge
	// contract (disjoint alternatives only) was violated by the caller.
	DuplicateAnchors uint64

	withOrnt bool
	anchors  *roaring64.Bitmap
}

// NewSet creates an empty occurrence set for the given pattern. withOrnt
// selects whether orientation-derived channels are accumulated; it must
// match the record format of the streams later passed to Append.
func NewSet(p state.Pattern, withOrnt bool) *Set {
	return &Set{
		Pattern:  p,
		withOrnt: withOrnt,
		anchors:  roaring64.New(),
	}
}

// Name is the canonical name of the owning pattern.
func (s *Set) Name() string { return s.Pattern.Name() }

// Width is the number of transition events the owning pattern spans.
func (s *Set) Width() int { return s.Pattern.Width() }

// Count is the number of accumulated occurrences.
func (s *Set) Count() int { return len(s.Time) }

// HasOrientation reports whether reorientation data is accumulated.
func (s *Set) HasOrientation() bool { return s.withOrnt }

// Append pulls the occurrences anchored at indices ii of stream f into the
// set and derives their kinetic quantities. fi is the stream's index within
// the analyzed collection, edgeLen the physical length of one polymerization
// unit.
//
// Every anchor i must satisfy i+Width < f.Len(); the matcher guarantees this.
func (s *Set) Append(f *history.Filament, ii []int, fi int, edgeLen float64) {
	w := s.Width()
	for _, i := range ii {
		s.Filament = append(s.Filament, fi)
		s.Index = append(s.Index, i)
		s.anchors.Add(anchorKey(fi, i))

		var dlen int32
		if f.HasCounters() {
			dg := int32(f.NGrow[i+w] - f.NGrow[i])
			ds := int32(f.NShrink[i+w] - f.NShrink[i])
			dlen = dg - ds
			s.NGrow = append(s.NGrow, f.NGrow[i])
			s.NShrink = append(s.NShrink, f.NShrink[i])
			s.DGrow = append(s.DGrow, dg)
			s.DShrink = append(s.DShrink, ds)
		} else {
			dlen = int32(f.Length[i+w]) - int32(f.Length[i])
		}
		if s.withOrnt && f.HasOrientation() {
			s.DOrnt = append(s.DOrnt, vecmath.AngleDeg(f.Ornt[i+w], f.Ornt[i]))
		}

		dlenUm := float64(dlen) * edgeLen
		dtime := f.Time[i+w] - f.Time[i]
		// Safe divide: instantaneous occurrences are discarded later, but
		// the formula must not blow up on the boundary.
		vel := 0.0
		if dtime != 0 {
			vel = dlenUm / dtime * 60
		}

		s.DLen = append(s.DLen, dlen)
		s.DLenUm = append(s.DLenUm, dlenUm)
		s.DTime = append(s.DTime, dtime)
		s.Vel = append(s.Vel, vel)

		s.Length = append(s.Length, f.Length[i])
		s.Time = append(s.Time, f.Time[i])
		s.PosFrom = append(s.PosFrom, f.Pos[i])
		s.PosTo = append(s.PosTo, f.Pos[i+w])
		s.DistCenterFrom = append(s.DistCenterFrom, f.DistCenter[i])
		s.DistCenterTo = append(s.DistCenterTo, f.DistCenter[i+w])
		s.DistMembrane = append(s.DistMembrane, f.DistMembrane[i])
		s.DistNucleus = append(s.DistNucleus, f.DistNucleus[i])
		s.Cas = append(s.Cas, f.Cas[i])
	}
}

// RemoveInstantaneous drops occurrences whose elapsed time is exactly zero.
// Such entries are recording artifacts, not physical transitions.
func (s *Set) RemoveInstantaneous() {
	keep := make([]int, 0, len(s.DTime))
	for k, dt := range s.DTime {
		if dt != 0 {
			keep = append(keep, k)
		}
	}
	if len(keep) == len(s.DTime) {
		return
	}
	s.filter(keep)
}

// filter rebuilds every parallel slice retaining only the given positions.
func (s *Set) filter(keep []int) {
	s.Filament = pick(s.Filament, keep)
	s.Index = pick(s.Index, keep)
	s.NGrow = pick(s.NGrow, keep)
	s.NShrink = pick(s.NShrink, keep)
	s.DGrow = pick(s.DGrow, keep)
	s.DShrink = pick(s.DShrink, keep)
	s.DLen = pick(s.DLen, keep)
	s.DLenUm = pick(s.DLenUm, keep)
	s.DTime = pick(s.DTime, keep)
	s.Vel = pick(s.Vel, keep)
	s.DOrnt = pick(s.DOrnt, keep)
	s.Length = pick(s.Length, keep)
	s.Time = pick(s.Time, keep)
	s.PosFrom = pick(s.PosFrom, keep)
	s.PosTo = pick(s.PosTo, keep)
	s.DistCenterFrom = pick(s.DistCenterFrom, keep)
	s.DistCenterTo = pick(s.DistCenterTo, keep)
	s.DistMembrane = pick(s.DistMembrane, keep)
	s.DistNucleus = pick(s.DistNucleus, keep)
	s.Cas = pick(s.Cas, keep)

	s.anchors = roaring64.New()
	for k := range s.Filament {
		s.anchors.Add(anchorKey(s.Filament[k], s.Index[k]))
	}
}

func pick[T any](xs []T, keep []int) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, 0, len(keep))
	for _, k := range keep {
		out = append(out, xs[k])
	}
	return out
}

func anchorKey(fi, i int) uint64 {
	return uint64(fi)<<32 | uint64(uint32(i))
}
