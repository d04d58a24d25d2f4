package history_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/state"
	"github.com/celldyn/mtstat/testutil"
)

func TestReadCellV2(t *testing.T) {
	f := testutil.Filament(history.V2,
		testutil.Event{
			Time: 1.5, From: state.Growing, To: state.Shrinking,
			Pos: [3]float32{3, 4, 2}, Length: 12, Age: 0.5,
			NGrow: 20, NShrink: 8,
			Cas:   [6]float32{1, 2, 3, 4, 5, 6},
			DistMembrane: 2.5, DistNucleus: 1.25,
		},
		testutil.Event{
			Time: 2.5, From: state.Shrinking, To: state.Growing,
			Pos: [3]float32{0, 1, 7}, Length: 9, Age: 1.5,
			NGrow: 21, NShrink: 12,
		},
	)
	src := testutil.Cell(history.V2, f)
	src.Time = 100.5

	got, err := history.ReadCell(bytes.NewReader(testutil.EncodeCell(src)), history.V2)
	require.NoError(t, err)

	assert.Equal(t, 100.5, got.Time)
	require.Len(t, got.Filaments, 1)

	g := got.Filaments[0]
	require.NoError(t, g.Validate())
	assert.Equal(t, f.Time, g.Time)
	assert.Equal(t, f.StateFrom, g.StateFrom)
	assert.Equal(t, f.StateTo, g.StateTo)
	assert.Equal(t, f.Pos, g.Pos)
	assert.Equal(t, f.Ornt, g.Ornt)
	assert.Equal(t, f.Length, g.Length)
	assert.Equal(t, f.NGrow, g.NGrow)
	assert.Equal(t, f.NShrink, g.NShrink)
	assert.Equal(t, f.Cas, g.Cas)

	// Distance to center is derived from the xy projection, never stored.
	assert.InDelta(t, 5.0, float64(g.DistCenter[0]), 1e-6)
	assert.InDelta(t, 1.0, float64(g.DistCenter[1]), 1e-6)
}

func TestReadCellV1(t *testing.T) {
	f := testutil.Filament(history.V1,
		testutil.Event{Time: 0, From: state.Growing, To: state.Paused, Length: 4},
	)
	src := testutil.Cell(history.V1, f)
	src.Time = 7
	src.Iteration = 42
	src.CellRadius = 11.5
	src.MTMass = 999

	got, err := history.ReadCell(bytes.NewReader(testutil.EncodeCell(src)), history.V1)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), got.Iteration)
	assert.Equal(t, float32(11.5), got.CellRadius)
	assert.Equal(t, uint64(999), got.MTMass)
	require.Len(t, got.Filaments, 1)
	g := got.Filaments[0]
	assert.False(t, g.HasOrientation())
	assert.False(t, g.HasCounters())
	require.NoError(t, g.Validate())
}

func TestReadCellTruncated(t *testing.T) {
	f := testutil.Filament(history.V2,
		testutil.Event{Time: 0, From: state.Growing, To: state.Shrinking},
	)
	data := testutil.EncodeCell(testutil.Cell(history.V2, f))

	_, err := history.ReadCell(bytes.NewReader(data[:len(data)-4]), history.V2)
	require.Error(t, err)
}

func TestReadCellUnknownVersion(t *testing.T) {
	_, err := history.ReadCell(bytes.NewReader(nil), history.Version(3))
	require.Error(t, err)
}

func TestRecordingTime(t *testing.T) {
	c := testutil.Cell(history.V2,
		testutil.Filament(history.V2,
			testutil.Event{Time: 2, From: state.Growing, To: state.Paused},
			testutil.Event{Time: 9, From: state.Paused, To: state.Growing},
		),
		testutil.Filament(history.V2,
			testutil.Event{Time: 1, From: state.Growing, To: state.Shrinking},
		),
	)

	rt := c.RecordingTime()
	assert.Equal(t, 1.0, rt.Initial)
	assert.Equal(t, 9.0, rt.Final)
	assert.Equal(t, 8.0, rt.Duration)
}

func TestRecordingTimeEmpty(t *testing.T) {
	rt := testutil.Cell(history.V2).RecordingTime()
	assert.True(t, math.IsNaN(rt.Duration))
}

func TestMeanLength(t *testing.T) {
	c := testutil.Cell(history.V2,
		testutil.Filament(history.V2, testutil.Event{Length: 10, From: state.Growing, To: state.Paused}),
		testutil.Filament(history.V2, testutil.Event{Length: 30, From: state.Growing, To: state.Paused}),
	)
	assert.InDelta(t, 0.008*20, c.MeanLength(0.008), 1e-9)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "history_e1_3.dat", history.FileName(1, 3))
}
