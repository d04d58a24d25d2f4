// Package mtstat analyzes simulated microtubule dynamic-instability data.
//
// The input is one time-ordered event stream per filament end, each event a
// state transition (growing, shrinking, paused, connected, depolymerized)
// with positional, geometric and kinetic side channels. mtstat locates every
// occurrence of short transition patterns (widths 1-3) restricted to spatial
// regions, derives the per-occurrence kinetics (duration, length change,
// velocity, reorientation), composes elementary occurrence sets into
// semantic categories, and derives population statistics: transition
// frequencies and the time-fraction decomposition of the growth/shrink/pause
// life cycle, in both uncorrelated and correlated form.
//
// # Quick start
//
//	cell, err := history.ReadCell(f, history.V2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a, err := mtstat.New(cell, mtstat.Config{
//	    Version:    history.V2,
//	    EdgeLength: 0.008, // μm per polymerization unit
//	    End:        1,
//	    Regions: []mtstat.NamedRegion{
//	        {Name: "cytosol", Bounds: match.Everywhere()},
//	        {Name: "edge", Bounds: match.Region{Min: 8, Max: 12}},
//	    },
//	}, mtstat.WithLogger(mtstat.NewTextLogger(slog.LevelInfo)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summaries, err := a.Run()
//
// Recordings can also be loaded through the histstore package from a
// directory, memory, S3 or MinIO, with transparent zstd/lz4/gzip
// decompression.
//
// Degenerate statistics never raise: an empty occurrence set or a zero
// denominator yields NaN (serialized as JSON null by the report package),
// with a diagnostic log line. Only malformed static configuration - an
// unknown state letter, an unsupported pattern width, a non-positive edge
// length - is a hard error.
package mtstat
