package mtstat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFilaments is returned when the analyzed recording holds no
	// event streams.
	ErrNoFilaments = errors.New("recording holds no filament event streams")

	// ErrNoRegions is returned when the configuration names no regions.
	ErrNoRegions = errors.New("configuration names no spatial regions")
)

// ErrUnknownRegion indicates a request for a region the configuration does
// not name.
type ErrUnknownRegion struct {
	Region string
}

func (e *ErrUnknownRegion) Error() string {
	return fmt.Sprintf("unknown region %q", e.Region)
}

// ErrVersionMismatch indicates a configured record format that does not
// match the recording being analyzed.
type ErrVersionMismatch struct {
	Config    int
	Recording int
}

func (e *ErrVersionMismatch) Error() string {
	return fmt.Sprintf("configured record format v%d, recording is v%d", e.Config, e.Recording)
}
