package penman

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Decode deserializes exactly one graph from s.
func Decode(s string, opts ...Option) (*Graph, error) {
	return newCodec(buildOptions(opts)).Decode(s)
}

// Encode serializes g to notation text. WithTop re-roots the output at
// another variable of the graph.
func Encode(g *Graph, opts ...Option) (string, error) {
	return newCodec(buildOptions(opts)).Encode(g)
}

// Load deserializes every graph in source, which is either a filesystem
// path (string) or an io.Reader. A path is opened and closed by Load on
// every exit path; a reader is used as-is and never closed. The result
// is fully realized: on any decode failure the error is returned and no
// partial list.
func Load(source interface{}, opts ...Option) ([]*Graph, error) {
	r, owned, err := resolveSource(source)
	if err != nil {
		return nil, err
	}
	if owned != nil {
		defer owned.Close()
	}
	return readAll(newCodec(buildOptions(opts)), r)
}

// Loads deserializes every graph in s.
func Loads(s string, opts ...Option) ([]*Graph, error) {
	return readAll(newCodec(buildOptions(opts)), strings.NewReader(s))
}

// Dump serializes graphs to sink, which is either a filesystem path
// (string) or an io.Writer. A path is created or truncated and closed by
// Dump on every exit path; a writer is used as-is and never closed.
// Output is streamed graph by graph: each graph ends with a newline and
// consecutive graphs are separated by a blank line. An empty slice
// writes nothing. Writes before a failing graph are not rolled back.
func Dump(graphs []*Graph, sink interface{}, opts ...Option) error {
	w, owned, err := resolveSink(sink)
	if err != nil {
		return err
	}
	if owned != nil {
		defer owned.Close()
	}
	return writeAll(newCodec(buildOptions(opts)), w, graphs)
}

// Dumps serializes graphs to a string, separated by blank lines. Unlike
// Dump there is no trailing newline; this asymmetry is long-standing
// behavior of the format's tooling and is kept intentionally.
func Dumps(graphs []*Graph, opts ...Option) (string, error) {
	codec := newCodec(buildOptions(opts))
	parts := make([]string, len(graphs))
	for i, g := range graphs {
		s, err := codec.Encode(g)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, "\n\n"), nil
}

// resolveSource classifies a source designator. A string is a path and
// yields an owned file; an io.Reader is borrowed. Anything else fails
// with ErrUnsupportedSource.
func resolveSource(source interface{}) (io.Reader, io.Closer, error) {
	switch src := source.(type) {
	case string:
		f, err := os.Open(src)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case io.Reader:
		return src, nil, nil
	default:
		return nil, nil, ErrUnsupportedSource
	}
}

// resolveSink classifies a sink designator. A string is a path and
// yields an owned file opened for truncating write; an io.Writer is
// borrowed. Anything else fails with ErrUnsupportedSink.
func resolveSink(sink interface{}) (io.Writer, io.Closer, error) {
	switch snk := sink.(type) {
	case string:
		f, err := os.Create(snk)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case io.Writer:
		return snk, nil, nil
	default:
		return nil, nil, ErrUnsupportedSink
	}
}

// readAll realizes a lazy graph sequence into an ordered slice. Either
// every graph decodes or the first failure is returned alone.
func readAll(codec *Codec, r io.Reader) ([]*Graph, error) {
	gr := codec.IterDecode(r)
	var graphs []*Graph
	for {
		g, err := gr.Next()
		if err == io.EOF {
			return graphs, nil
		}
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
}

// writeAll streams encoded graphs to w without buffering the whole
// output: the first graph is followed by a newline, every further graph
// by a blank line, its text, and a newline.
func writeAll(codec *Codec, w io.Writer, graphs []*Graph) error {
	bw := bufio.NewWriter(w)
	for i, g := range graphs {
		s, err := codec.Encode(g)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(s); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return bw.Flush()
}
