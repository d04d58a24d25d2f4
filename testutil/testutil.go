// Package testutil provides testing helpers for mtstat.
//
// This package is intended for use in tests only. It builds synthetic
// filament event streams from scripted transition sequences and encodes
// whole recordings into the simulator's binary layout so decoder and store
// round trips can be exercised without real simulation output.
package testutil

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/state"
)

// Event scripts one transition record of a synthetic stream.
type Event struct {
	Time         float64
	From, To     state.State
	Pos          [3]float32
	Ornt         [3]float32
	Length       uint32
	Age          float64
	NGrow        uint64
	NShrink      uint64
	Cas          [6]float32
	DistMembrane float32
	DistNucleus  float32
}

// AtDistance places the event at the given xy distance to the cell center.
func (e Event) AtDistance(d float32) Event {
	e.Pos = [3]float32{d, 0, 0}
	return e
}

// Filament builds a stream of the given record format from scripted events.
func Filament(v history.Version, events ...Event) *history.Filament {
	f := &history.Filament{}
	if v == history.V2 {
		f.Ornt = [][3]float32{}
		f.NGrow = []uint64{}
		f.NShrink = []uint64{}
	}
	for _, e := range events {
		f.Time = append(f.Time, e.Time)
		f.StateFrom = append(f.StateFrom, e.From)
		f.StateTo = append(f.StateTo, e.To)
		f.Pos = append(f.Pos, e.Pos)
		f.Length = append(f.Length, e.Length)
		f.Age = append(f.Age, e.Age)
		f.Cas = append(f.Cas, e.Cas)
		f.DistMembrane = append(f.DistMembrane, e.DistMembrane)
		f.DistNucleus = append(f.DistNucleus, e.DistNucleus)
		if v == history.V2 {
			o := e.Ornt
			if o == ([3]float32{}) {
				o = [3]float32{0, 0, 1}
			}
			f.Ornt = append(f.Ornt, o)
			f.NGrow = append(f.NGrow, e.NGrow)
			f.NShrink = append(f.NShrink, e.NShrink)
		}
	}
	f.DeriveDistCenter()
	return f
}

// Cell wraps streams into a recording.
func Cell(v history.Version, filaments ...*history.Filament) *history.Cell {
	return &history.Cell{Version: v, Filaments: filaments}
}

// EncodeCell serializes a recording into the simulator's binary layout,
// the inverse of history.ReadCell.
func EncodeCell(c *history.Cell) []byte {
	var b bytes.Buffer
	w := func(v any) { _ = binary.Write(&b, binary.LittleEndian, v) }

	if c.Version == history.V1 {
		w(c.Iteration)
	}
	w(c.Time)
	if c.Version == history.V1 {
		w(c.CellRadius)
		w(c.MTMass)
	}
	w(uint64(len(c.Filaments)))

	for _, f := range c.Filaments {
		w(int64(f.Len()))
		for i := 0; i < f.Len(); i++ {
			w(f.Time[i])
			w(uint32(f.StateFrom[i]))
			w(uint32(f.StateTo[i]))
			w(f.Pos[i])
			if c.Version == history.V2 {
				w(f.Ornt[i])
			}
			w(f.Length[i])
			w(f.Age[i])
			if c.Version == history.V2 {
				w(f.NGrow[i])
				w(f.NShrink[i])
			}
			w(f.Cas[i])
			w(f.DistMembrane[i])
			w(f.DistNucleus[i])
		}
	}
	return b.Bytes()
}

// RotatedZ returns the unit vector obtained by rotating (0,0,1) by the given
// angle in degrees within the xz plane, for scripting reorientations.
func RotatedZ(deg float64) [3]float32 {
	rad := deg * math.Pi / 180
	return [3]float32{float32(math.Sin(rad)), 0, float32(math.Cos(rad))}
}
