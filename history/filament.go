// Package history models per-filament event streams of microtubule dynamic
// instability and decodes them from simulator history files.
//
// One Filament holds the time-ordered transition records of a single
// microtubule end. All per-record slices share one length; the distance to
// the cell center is always derived from the recorded positions at load
// time, never read from storage.
package history

import (
	"fmt"

	"github.com/celldyn/mtstat/internal/vecmath"
	"github.com/celldyn/mtstat/state"
)

// Version identifies the record format of a history file.
// V1 lacks end orientations and the cumulative growth/shrink counters.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
)

// Valid reports whether v is a known record format.
func (v Version) Valid() bool { return v == V1 || v == V2 }

// Filament is the time-ordered event stream recorded for one filament end.
type Filament struct {
	// Time is the event timestamp in seconds, monotonic within the stream.
	Time []float64

	// StateFrom and StateTo bracket each transition.
	StateFrom []state.State
	StateTo   []state.State

	// Pos is the spatial position of the end node.
	Pos [][3]float32

	// Ornt is the end direction (unit vector); nil for V1 streams.
	Ornt [][3]float32

	// Length is the filament length in polymerization units.
	Length []uint32

	// Age is the filament age at the event.
	Age []float64

	// NGrow and NShrink are cumulative counters of elementary growth and
	// shrink increments; nil for V1 streams.
	NGrow   []uint64
	NShrink []uint64

	// Cas holds the auxiliary "cas" channel field intensities.
	Cas [][6]float32

	// DistMembrane and DistNucleus are distances to the plasma membrane and
	// the nuclear membrane.
	DistMembrane []float32
	DistNucleus  []float32

	// DistCenter is the xy-plane distance to the cell center, derived from
	// Pos when the stream is built.
	DistCenter []float32
}

// Len is the number of recorded transition events.
func (f *Filament) Len() int { return len(f.Time) }

// HasOrientation reports whether end orientations were recorded (V2 only).
func (f *Filament) HasOrientation() bool { return f.Ornt != nil }

// HasCounters reports whether cumulative growth/shrink counters were
// recorded (V2 only).
func (f *Filament) HasCounters() bool { return f.NGrow != nil }

// DeriveDistCenter (re)computes the distance-to-center channel from the
// recorded positions.
func (f *Filament) DeriveDistCenter() {
	f.DistCenter = make([]float32, len(f.Pos))
	for i, p := range f.Pos {
		f.DistCenter[i] = vecmath.NormXY(p)
	}
}

// Validate checks that all per-record slices share one length and that the
// version-dependent channels are consistently present.
func (f *Filament) Validate() error {
	n := len(f.Time)
	same := func(name string, l int) error {
		if l != n {
			return fmt.Errorf("history: %s has %d records, want %d", name, l, n)
		}
		return nil
	}
	checks := []struct {
		name string
		l    int
	}{
		{"state_from", len(f.StateFrom)},
		{"state_to", len(f.StateTo)},
		{"pos", len(f.Pos)},
		{"length", len(f.Length)},
		{"age", len(f.Age)},
		{"cas", len(f.Cas)},
		{"dist_membrane", len(f.DistMembrane)},
		{"dist_nucleus", len(f.DistNucleus)},
		{"dist_center", len(f.DistCenter)},
	}
	for _, c := range checks {
		if err := same(c.name, c.l); err != nil {
			return err
		}
	}
	if f.HasOrientation() {
		if err := same("ornt", len(f.Ornt)); err != nil {
			return err
		}
	}
	if f.HasCounters() {
		if err := same("n_grow", len(f.NGrow)); err != nil {
			return err
		}
		if err := same("n_shrink", len(f.NShrink)); err != nil {
			return err
		}
	}
	if f.HasOrientation() != f.HasCounters() {
		return fmt.Errorf("history: orientation and counter channels must both be present or both absent")
	}
	return nil
}

// newFilament allocates a stream of n records for the given format version.
func newFilament(n int, v Version) *Filament {
	f := &Filament{
		Time:         make([]float64, n),
		StateFrom:    make([]state.State, n),
		StateTo:      make([]state.State, n),
		Pos:          make([][3]float32, n),
		Length:       make([]uint32, n),
		Age:          make([]float64, n),
		Cas:          make([][6]float32, n),
		DistMembrane: make([]float32, n),
		DistNucleus:  make([]float32, n),
	}
	if v == V2 {
		f.Ornt = make([][3]float32, n)
		f.NGrow = make([]uint64, n)
		f.NShrink = make([]uint64, n)
	}
	return f
}
