package history

import (
	"fmt"
	"math"
)

// Cell is a decoded simulation-wide history recording: the file header plus
// one event stream per filament end present in the system.
type Cell struct {
	// Version is the record format the recording was decoded with.
	Version Version

	// Time is the simulation system time at recording.
	Time float64

	// Iteration, CellRadius and MTMass are present in V1 headers only.
	Iteration  uint64
	CellRadius float32
	MTMass     uint64

	// Filaments holds one event stream per filament end.
	Filaments []*Filament
}

// RecordingTime is the time span covered by a recording.
type RecordingTime struct {
	Initial  float64 `json:"initial"`
	Final    float64 `json:"final"`
	Duration float64 `json:"duration"`
}

// RecordingTime returns the earliest and latest event timestamps over all
// streams and their difference. All values are NaN when the recording holds
// no events.
func (c *Cell) RecordingTime() RecordingTime {
	initial, final := math.Inf(1), math.Inf(-1)
	seen := false
	for _, f := range c.Filaments {
		for _, t := range f.Time {
			seen = true
			if t < initial {
				initial = t
			}
			if t > final {
				final = t
			}
		}
	}
	if !seen {
		nan := math.NaN()
		return RecordingTime{Initial: nan, Final: nan, Duration: nan}
	}
	return RecordingTime{Initial: initial, Final: final, Duration: final - initial}
}

// MeanLength returns the average initial filament length converted to
// physical units with the given edge length. NaN when no streams exist.
func (c *Cell) MeanLength(edgeLen float64) float64 {
	if len(c.Filaments) == 0 {
		return math.NaN()
	}
	var sum float64
	var n int
	for _, f := range c.Filaments {
		if f.Len() == 0 {
			continue
		}
		sum += float64(f.Length[0])
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return edgeLen * sum / float64(n)
}

// FileName is the conventional name of a history recording for the given
// filament end (0 or 1) and simulation run index.
func FileName(end, run int) string {
	return fmt.Sprintf("history_e%d_%d.dat", end, run)
}
