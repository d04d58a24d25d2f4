package state

import "strings"

// Pattern is a run of consecutive state transitions of fixed width 1-3.
//
// From is the state the end is in before the run starts; Steps holds the
// state adopted after each of the w transitions. A pattern with
// From == Undefined is a composite: the merged union of alternatives that
// converge on the same trailing states.
type Pattern struct {
	From  State
	Steps []State
}

// ParsePattern parses a pattern specification such as "gs", "sgs" or "sgps".
// The first letter is the leading state, the remaining letters the states
// entered by each transition. An unknown letter or an unsupported length is
// a hard error.
func ParsePattern(spec string) (Pattern, error) {
	if len(spec) < 2 || len(spec) > 4 {
		return Pattern{}, &ErrBadPatternWidth{Spec: spec}
	}
	from, err := FromLetter(spec[0])
	if err != nil {
		return Pattern{}, err
	}
	steps := make([]State, len(spec)-1)
	for i := 1; i < len(spec); i++ {
		s, err := FromLetter(spec[i])
		if err != nil {
			return Pattern{}, err
		}
		steps[i-1] = s
	}
	return Pattern{From: from, Steps: steps}, nil
}

// MustParsePattern is ParsePattern for static tables; it panics on error.
func MustParsePattern(spec string) Pattern {
	p, err := ParsePattern(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// Width is the number of transition events the pattern spans.
func (p Pattern) Width() int { return len(p.Steps) }

// Composite derives the pattern naming the merged union of alternatives
// sharing this pattern's trailing states.
func (p Pattern) Composite() Pattern {
	steps := make([]State, len(p.Steps))
	copy(steps, p.Steps)
	return Pattern{From: Undefined, Steps: steps}
}

// Name returns the canonical pattern name: the concatenated one-letter codes
// for a pure pattern, or the '+'-joined word forms of the trailing states for
// a composite.
func (p Pattern) Name() string {
	if p.From != Undefined {
		var b strings.Builder
		b.WriteString(p.From.Short())
		for _, s := range p.Steps {
			b.WriteString(s.Short())
		}
		return b.String()
	}
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// Spec returns the short-letter spelling of the pattern, composite or not.
func (p Pattern) Spec() string {
	var b strings.Builder
	b.WriteString(p.From.Short())
	for _, s := range p.Steps {
		b.WriteString(s.Short())
	}
	return b.String()
}

// Pure transition patterns observed in the simulated dynamics, by width.
// These are explicit tables (not derived via reflection) and drive the
// catalog construction.
var (
	// Singles are all named single transitions.
	Singles = mustParseAll("sg", "pg", "gs", "ps", "gp", "sp", "cs", "cg",
		"gd", "sd", "pd")

	// Doubles are all named runs of two consecutive transitions.
	Doubles = mustParseAll("gsg", "psg", "csg", "gps", "cgs", "cgp", "sgs",
		"pgs", "sgp")

	// Triples are all named runs of three consecutive transitions, used for
	// growth-pause-shrink cycle accounting.
	Triples = mustParseAll("sgps", "cgps")
)

func mustParseAll(specs ...string) []Pattern {
	ps := make([]Pattern, len(specs))
	for i, s := range specs {
		ps[i] = MustParsePattern(s)
	}
	return ps
}
