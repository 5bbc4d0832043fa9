// Package penman reads and writes graphs in PENMAN notation.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// PENMAN notation is the bracketed textual format for rooted, directed,
// labeled graphs used by semantic representations such as AMR:
//
//	(b / bark-01
//	   :ARG0 (d / dog))
//
// The package offers a small facade mirrored on the classic read/write
// operations for the format:
//   - Decode / Encode: one graph to/from a string.
//   - Load / Loads: every graph in a file, stream, or string, fully
//     realized into a slice.
//   - Dump / Dumps: a slice of graphs to a file, stream, or string,
//     separated by blank lines.
//
// Sources and sinks are classified explicitly: a string is a filesystem
// path (opened and closed by the package), an io.Reader or io.Writer is
// used as-is and never closed, and anything else fails with
// ErrUnsupportedSource or ErrUnsupportedSink.
//
// Streaming is available through the pull-style GraphReader:
//
//	r := penman.NewCodec(nil).IterDecode(file)
//	for {
//	    g, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process g
//	}
//
// Each Next call scans and decodes exactly one graph, so malformed input
// surfaces at the element that contains it, not before.
//
// Options configure a single call: WithModel sets the role model used for
// inversion, WithTriples switches to the flat conjunction-of-triples
// syntax, and WithIndent/WithCompact control layout. Every public
// operation binds its options to one codec instance; nothing is shared
// between calls.
package penman
