package occur

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ErrWidthMismatch indicates an attempt to merge occurrence sets of
// different pattern widths.
type ErrWidthMismatch struct {
	A, B int
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("cannot merge occurrence sets of widths %d and %d", e.A, e.B)
}

// Merge concatenates the contents of two occurrence sets of equal width into
// a new composite set named after the trailing states of a.
//
// Merge is meant for disjoint pattern alternatives converging on the same
// semantic outcome (e.g. "ends in shrink" as the union of gs, ps and cs).
// It is deliberately not idempotent: merging a set with itself duplicates
// content. Overlapping operands are not rejected, but the number of shared
// (filament, index) anchors is recorded in DuplicateAnchors so callers can
// flag the contract violation.
func Merge(a, b *Set) (*Set, error) {
	if a.Width() != b.Width() {
		return nil, &ErrWidthMismatch{A: a.Width(), B: b.Width()}
	}
	m := NewSet(a.Pattern.Composite(), a.withOrnt && b.withOrnt)

	m.Filament = concat(a.Filament, b.Filament)
	m.Index = concat(a.Index, b.Index)
	m.NGrow = concat(a.NGrow, b.NGrow)
	m.NShrink = concat(a.NShrink, b.NShrink)
	m.DGrow = concat(a.DGrow, b.DGrow)
	m.DShrink = concat(a.DShrink, b.DShrink)
	m.DLen = concat(a.DLen, b.DLen)
	m.DLenUm = concat(a.DLenUm, b.DLenUm)
	m.DTime = concat(a.DTime, b.DTime)
	m.Vel = concat(a.Vel, b.Vel)
	if m.withOrnt {
		m.DOrnt = concat(a.DOrnt, b.DOrnt)
	}
	m.Length = concat(a.Length, b.Length)
	m.Time = concat(a.Time, b.Time)
	m.PosFrom = concat(a.PosFrom, b.PosFrom)
	m.PosTo = concat(a.PosTo, b.PosTo)
	m.DistCenterFrom = concat(a.DistCenterFrom, b.DistCenterFrom)
	m.DistCenterTo = concat(a.DistCenterTo, b.DistCenterTo)
	m.DistMembrane = concat(a.DistMembrane, b.DistMembrane)
	m.DistNucleus = concat(a.DistNucleus, b.DistNucleus)
	m.Cas = concat(a.Cas, b.Cas)

	m.DuplicateAnchors = a.DuplicateAnchors + b.DuplicateAnchors +
		roaring64.And(a.anchors, b.anchors).GetCardinality()
	m.anchors = roaring64.Or(a.anchors, b.anchors)

	return m, nil
}

// MustMerge is Merge for statically-known same-width operands; it panics on
// a width mismatch.
func MustMerge(sets ...*Set) *Set {
	if len(sets) == 0 {
		panic("occur: MustMerge needs at least one set")
	}
	m := sets[0]
	for _, s := range sets[1:] {
		var err error
		if m, err = Merge(m, s); err != nil {
			panic(err)
		}
	}
	return m
}

func concat[T any](a, b []T) []T {
	if a == nil && b == nil {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
