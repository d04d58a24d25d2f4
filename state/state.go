// Package state defines the kinetic states a microtubule end adopts and the
// transition patterns built from them.
//
// A microtubule end persists in one kinetic state until an instantaneous
// transition to a new state occurs. A recorded event is therefore a pair of
// states bracketing the transition, and a Pattern is a short run of such
// pairs (width 1 to 3) that names a specific excursion of the end, e.g.
// "gs" (growing ending in shrinking) or "sgps" (a full
// shrink-growth-pause-shrink cycle).
package state

import "fmt"

// State is a kinetic state of a microtubule end.
type State int8

const (
	// Undefined marks the absent leading state of a composite pattern.
	Undefined State = iota - 1
	Growing
	Shrinking
	Paused
	Connected
	Depolymerized
)

// Short returns the canonical one-letter code of the state.
func (s State) Short() string {
	switch s {
	case Growing:
		return "g"
	case Shrinking:
		return "s"
	case Paused:
		return "p"
	case Connected:
		return "c"
	case Depolymerized:
		return "d"
	default:
		return "o"
	}
}

// Name returns the canonical word form of the state.
func (s State) Name() string {
	switch s {
	case Growing:
		return "growth"
	case Shrinking:
		return "shrink"
	case Paused:
		return "pause"
	case Connected:
		return "connect"
	case Depolymerized:
		return "depol"
	default:
		return "undef"
	}
}

// FromLetter converts a one-letter state code to a State.
func FromLetter(c byte) (State, error) {
	switch c {
	case 'g':
		return Growing, nil
	case 's':
		return Shrinking, nil
	case 'p':
		return Paused, nil
	case 'c':
		return Connected, nil
	case 'd':
		return Depolymerized, nil
	case 'o':
		return Undefined, nil
	default:
		return Undefined, &ErrUnknownState{Letter: c}
	}
}

// ErrUnknownState indicates a pattern letter outside the state enumeration.
// Malformed pattern specifications are programming errors and fail fast.
type ErrUnknownState struct {
	Letter byte
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("unknown state letter %q", e.Letter)
}

// ErrBadPatternWidth indicates a pattern specification whose length does not
// correspond to a supported width (1-3, i.e. 2-4 state letters).
type ErrBadPatternWidth struct {
	Spec string
}

func (e *ErrBadPatternWidth) Error() string {
	return fmt.Sprintf("pattern %q must have 2 to 4 state letters", e.Spec)
}
