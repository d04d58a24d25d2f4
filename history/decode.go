package history

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/celldyn/mtstat/state"
)

// ReadCell decodes a simulator history recording. The layout is little-endian
// and record-major: a version-dependent header, then for each filament the
// record count followed by its records, each record listing time, the state
// pair, position, (V2) orientation, length, age, (V2) growth/shrink counters,
// cas intensities and the two membrane distances, in that order.
//
// The distance-to-center channel is not part of the file; it is derived from
// the positions after decoding.
func ReadCell(r io.Reader, v Version) (*Cell, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("history: unknown record format version %d", v)
	}
	d := decoder{r: bufio.NewReader(r)}
	c := &Cell{Version: v}

	if v == V1 {
		c.Iteration = d.uint64()
	}
	c.Time = d.float64()
	if v == V1 {
		c.CellRadius = d.float32()
		c.MTMass = d.uint64()
	}
	fnum := d.uint64()
	if d.err != nil {
		return nil, fmt.Errorf("history: reading header: %w", d.err)
	}

	c.Filaments = make([]*Filament, 0, fnum)
	for j := uint64(0); j < fnum; j++ {
		nrc := d.int64()
		if d.err != nil {
			return nil, fmt.Errorf("history: reading record count of filament %d: %w", j, d.err)
		}
		if nrc < 0 {
			return nil, fmt.Errorf("history: filament %d has negative record count %d", j, nrc)
		}
		f := newFilament(int(nrc), v)
		for i := 0; i < int(nrc); i++ {
			f.Time[i] = d.float64()
			f.StateFrom[i] = state.State(d.uint32())
			f.StateTo[i] = state.State(d.uint32())
			d.vec3(&f.Pos[i])
			if v == V2 {
				d.vec3(&f.Ornt[i])
			}
			f.Length[i] = d.uint32()
			f.Age[i] = d.float64()
			if v == V2 {
				f.NGrow[i] = d.uint64()
				f.NShrink[i] = d.uint64()
			}
			d.vec6(&f.Cas[i])
			f.DistMembrane[i] = d.float32()
			f.DistNucleus[i] = d.float32()
		}
		if d.err != nil {
			return nil, fmt.Errorf("history: reading filament %d: %w", j, d.err)
		}
		f.DeriveDistCenter()
		c.Filaments = append(c.Filaments, f)
	}
	return c, nil
}

// decoder reads little-endian scalars with a sticky error.
type decoder struct {
	r   io.Reader
	err error
	buf [8]byte
}

func (d *decoder) read(n int) []byte {
	if d.err != nil {
		return d.buf[:n]
	}
	if _, err := io.ReadFull(d.r, d.buf[:n]); err != nil {
		d.err = err
	}
	return d.buf[:n]
}

func (d *decoder) uint32() uint32 { return binary.LittleEndian.Uint32(d.read(4)) }
func (d *decoder) uint64() uint64 { return binary.LittleEndian.Uint64(d.read(8)) }
func (d *decoder) int64() int64   { return int64(d.uint64()) }

func (d *decoder) float32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(d.read(4)))
}

func (d *decoder) float64() float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(d.read(8)))
}

func (d *decoder) vec3(v *[3]float32) {
	for k := range v {
		v[k] = d.float32()
	}
}

func (d *decoder) vec6(v *[6]float32) {
	for k := range v {
		v[k] = d.float32()
	}
}
