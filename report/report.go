// Package report holds the summary value types handed to the external
// reporting service, and the codec used to serialize them.
//
// Every derived statistic in this library degrades to NaN instead of
// raising; Scalar makes those NaNs survive JSON encoding as null.
package report

import "math"

// Scalar is a float64 that encodes NaN and infinities as JSON null.
type Scalar float64

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return jsonNumber(f), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to NaN.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Scalar(math.NaN())
		return nil
	}
	return unmarshalNumber(data, s)
}

// IsNaN reports whether the scalar is NaN.
func (s Scalar) IsNaN() bool { return math.IsNaN(float64(s)) }

// Stats is a scalar summary of one derived per-occurrence quantity:
// mean, standard deviation and the physical unit of both.
type Stats struct {
	Avg  Scalar `json:"avg"`
	Std  Scalar `json:"std"`
	Unit string `json:"units,omitempty"`
}

// NewStats builds a Stats value.
func NewStats(avg, std float64, unit string) Stats {
	return Stats{Avg: Scalar(avg), Std: Scalar(std), Unit: unit}
}

// NaNStats is the statistic of an empty occurrence set.
func NaNStats(unit string) Stats {
	return NewStats(math.NaN(), math.NaN(), unit)
}

// Defined reports whether the mean is a usable number.
func (s Stats) Defined() bool { return !s.Avg.IsNaN() }
