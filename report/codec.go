package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Codec encodes/decodes summary values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// JSON is the standard-library JSON codec.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is supplied.
var Default Codec = JSON{}

// Write serializes v with c (Default when nil) and writes it to w.
func Write(w io.Writer, c Codec, v any) error {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("report: %s marshal failed: %w", c.Name(), err)
	}
	_, err = w.Write(b)
	return err
}

func jsonNumber(f float64) []byte {
	return strconv.AppendFloat(nil, f, 'g', -1, 64)
}

func unmarshalNumber(data []byte, s *Scalar) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = Scalar(f)
	return nil
}
