package occur_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/occur"
	"github.com/celldyn/mtstat/state"
	"github.com/celldyn/mtstat/testutil"
)

const edgeLen = 0.008

func growShrink(t0, t1 float64, len0, len1 uint32) *history.Filament {
	return testutil.Filament(history.V2,
		testutil.Event{Time: t0, From: state.Growing, To: state.Shrinking, Length: len0, NGrow: uint64(len0), NShrink: 0},
		testutil.Event{Time: t1, From: state.Shrinking, To: state.Growing, Length: len1, NGrow: uint64(len0), NShrink: uint64(len0 - len1)},
	)
}

func singleSet(t *testing.T, spec string, f *history.Filament, ii []int, fi int) *occur.Set {
	t.Helper()
	s := occur.NewSet(state.MustParsePattern(spec), f.HasOrientation())
	s.Append(f, ii, fi, edgeLen)
	return s
}

func TestAppendDerivations(t *testing.T) {
	f := growShrink(0, 5, 10, 7)
	s := singleSet(t, "gs", f, []int{0}, 3)

	require.Equal(t, 1, s.Count())
	assert.Equal(t, []int{3}, s.Filament)
	assert.Equal(t, []int{0}, s.Index)
	assert.Equal(t, []float64{5}, s.DTime)
	// Counter-based length change: (0 growth) - (3 shrink) = -3 units.
	assert.Equal(t, []int32{-3}, s.DLen)
	assert.InDelta(t, -3*edgeLen, s.DLenUm[0], 1e-12)
	assert.InDelta(t, -3*edgeLen/5*60, s.Vel[0], 1e-12)
}

func TestAppendLengthFallbackV1(t *testing.T) {
	f := testutil.Filament(history.V1,
		testutil.Event{Time: 0, From: state.Growing, To: state.Shrinking, Length: 10},
		testutil.Event{Time: 5, From: state.Shrinking, To: state.Growing, Length: 7},
	)
	s := singleSet(t, "gs", f, []int{0}, 0)

	assert.Equal(t, []int32{-3}, s.DLen)
	_, ok := s.Reorientation()
	assert.False(t, ok, "V1 streams carry no orientation")
}

func TestReorientation(t *testing.T) {
	f := testutil.Filament(history.V2,
		testutil.Event{Time: 0, From: state.Growing, To: state.Shrinking, Ornt: testutil.RotatedZ(0)},
		testutil.Event{Time: 5, From: state.Shrinking, To: state.Growing, Ornt: testutil.RotatedZ(90)},
	)
	s := singleSet(t, "gs", f, []int{0}, 0)

	ro, ok := s.Reorientation()
	require.True(t, ok)
	assert.InDelta(t, 90, float64(ro.Avg), 1e-4)
}

func TestRemoveInstantaneous(t *testing.T) {
	f := testutil.Filament(history.V2,
		testutil.Event{Time: 3, From: state.Growing, To: state.Shrinking},
		testutil.Event{Time: 3, From: state.Shrinking, To: state.Growing},
		testutil.Event{Time: 4, From: state.Growing, To: state.Shrinking},
		testutil.Event{Time: 6, From: state.Shrinking, To: state.Growing},
	)
	s := singleSet(t, "gs", f, []int{0, 2}, 0)
	require.Equal(t, 2, s.Count())

	s.RemoveInstantaneous()
	require.Equal(t, 1, s.Count())
	assert.Equal(t, []int{2}, s.Index)
	assert.Equal(t, []float64{2}, s.DTime)
}

func TestEmptySetStatsAreNaN(t *testing.T) {
	s := occur.NewSet(state.MustParsePattern("gs"), true)

	assert.Equal(t, 0, s.Count())
	assert.True(t, s.Duration().Avg.IsNaN())
	assert.True(t, s.Elongation().Avg.IsNaN())
	assert.True(t, s.Velocity().Avg.IsNaN())
	ro, ok := s.Reorientation()
	assert.True(t, ok)
	assert.True(t, ro.Avg.IsNaN())
}

func TestMergeAdditivity(t *testing.T) {
	a := singleSet(t, "gs", growShrink(0, 2, 10, 9), []int{0}, 0)
	b := singleSet(t, "ps", growShrink(0, 6, 10, 7), []int{0}, 1)

	m, err := occur.Merge(a, b)
	require.NoError(t, err)

	assert.Equal(t, a.Count()+b.Count(), m.Count())
	assert.Equal(t, "shrink", m.Name())
	assert.Zero(t, m.DuplicateAnchors)

	// Mean of the union equals the count-weighted mean of the parts.
	wantAvg := (2.0 + 6.0) / 2
	assert.InDelta(t, wantAvg, float64(m.Duration().Avg), 1e-12)
}

func TestMergeWidthMismatch(t *testing.T) {
	a := occur.NewSet(state.MustParsePattern("gs"), true)
	b := occur.NewSet(state.MustParsePattern("sgs"), true)

	_, err := occur.Merge(a, b)
	var mismatch *occur.ErrWidthMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.A)
	assert.Equal(t, 2, mismatch.B)
}

func TestMergeDetectsSharedAnchors(t *testing.T) {
	f := growShrink(0, 5, 10, 7)
	a := singleSet(t, "gs", f, []int{0}, 0)
	b := singleSet(t, "gs", f, []int{0}, 0)

	m, err := occur.Merge(a, b)
	require.NoError(t, err)
	// Content duplicates: merge is not idempotent.
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, uint64(1), m.DuplicateAnchors)
}

func TestMergeContentCommutes(t *testing.T) {
	a := singleSet(t, "gs", growShrink(0, 2, 10, 9), []int{0}, 0)
	b := singleSet(t, "ps", growShrink(0, 6, 10, 7), []int{0}, 1)

	ab, err := occur.Merge(a, b)
	require.NoError(t, err)
	ba, err := occur.Merge(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.Count(), ba.Count())
	assert.InDelta(t, float64(ab.Duration().Avg), float64(ba.Duration().Avg), 1e-12)
	assert.InDelta(t, float64(ab.Duration().Std), float64(ba.Duration().Std), 1e-12)
}

func TestXYDistribution(t *testing.T) {
	f := testutil.Filament(history.V2,
		testutil.Event{Time: 0, From: state.Growing, To: state.Shrinking, Pos: [3]float32{0.5, 0.5, 0}},
		testutil.Event{Time: 1, From: state.Shrinking, To: state.Growing, Pos: [3]float32{1.5, 0.5, 0}},
		testutil.Event{Time: 2, From: state.Growing, To: state.Shrinking, Pos: [3]float32{1.5, 1.5, 0}},
		testutil.Event{Time: 3, From: state.Shrinking, To: state.Growing, Pos: [3]float32{9, 9, 0}},
	)
	s := singleSet(t, "gs", f, []int{0, 2}, 0)

	edges := []float64{0, 1, 2}
	h := s.XYDistribution(edges, edges)
	require.Len(t, h, 2)
	assert.Equal(t, 1.0, h[0][0])
	assert.Equal(t, 1.0, h[1][1])
	assert.Equal(t, 0.0, h[0][1])

	var total float64
	for i := range h {
		for j := range h[i] {
			total += h[i][j]
		}
	}
	assert.Equal(t, 2.0, total, "the out-of-range point is ignored")
}

func TestVelocitySafeDivide(t *testing.T) {
	// A zero-duration occurrence must not blow up before it is discarded.
	f := testutil.Filament(history.V2,
		testutil.Event{Time: 3, From: state.Growing, To: state.Shrinking},
		testutil.Event{Time: 3, From: state.Shrinking, To: state.Growing, NShrink: 2},
	)
	s := singleSet(t, "gs", f, []int{0}, 0)
	require.Equal(t, 1, s.Count())
	assert.Equal(t, 0.0, s.Vel[0])
	assert.False(t, math.IsNaN(s.Vel[0]))
}
