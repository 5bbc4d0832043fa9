package penman

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, s string) *Graph {
	t.Helper()
	g, err := Decode(s)
	if err != nil {
		t.Fatalf("decode(%q): %v", s, err)
	}
	return g
}

func TestDumpsEmpty(t *testing.T) {
	out, err := Dumps(nil)
	if err != nil {
		t.Fatalf("dumps: %v", err)
	}
	if out != "" {
		t.Fatalf("dumps(nil) = %q, want empty string", out)
	}
}

func TestDumpEmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(nil, &buf); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("dump(nil) wrote %q, want zero bytes", buf.String())
	}
}

func TestDumpsSingleEqualsEncode(t *testing.T) {
	g := mustDecode(t, "(b / bark-01 :ARG0 (d / dog))")
	enc, err := Encode(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Dumps([]*Graph{g})
	if err != nil {
		t.Fatalf("dumps: %v", err)
	}
	if out != enc {
		t.Fatalf("dumps([g]) = %q, want %q", out, enc)
	}
}

func TestDumpDumpsAsymmetry(t *testing.T) {
	g1 := mustDecode(t, "(a / alpha)")
	g2 := mustDecode(t, "(b / beta)")
	graphs := []*Graph{g1, g2}

	s, err := Dumps(graphs)
	if err != nil {
		t.Fatalf("dumps: %v", err)
	}
	if s != "(a / alpha)\n\n(b / beta)" {
		t.Fatalf("dumps = %q", s)
	}

	var buf bytes.Buffer
	if err := Dump(graphs, &buf); err != nil {
		t.Fatalf("dump: %v", err)
	}
	// Dump ends with a newline, Dumps does not.
	if buf.String() != "(a / alpha)\n\n(b / beta)\n" {
		t.Fatalf("dump = %q", buf.String())
	}
	if buf.String() != s+"\n" {
		t.Fatalf("dump = %q, want dumps output plus trailing newline", buf.String())
	}
}

func TestLoadThreeGraphs(t *testing.T) {
	input := "(a / alpha)\n\n(b / beta)\n\n(c / gamma)\n"
	graphs, err := Loads(input)
	if err != nil {
		t.Fatalf("loads: %v", err)
	}
	if len(graphs) != 3 {
		t.Fatalf("loads returned %d graphs, want 3", len(graphs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if graphs[i].Top != want {
			t.Fatalf("graph %d top = %q, want %q", i, graphs[i].Top, want)
		}
	}
}

func TestLoadNoPartialResults(t *testing.T) {
	input := "(a / alpha)\n\n(b / )\n\n(c / gamma)\n"
	graphs, err := Loads(input)
	if err == nil {
		t.Fatal("loads succeeded, want error from malformed second graph")
	}
	if graphs != nil {
		t.Fatalf("loads returned partial result %v alongside error", graphs)
	}
}

func TestLoadPathAndReaderAgree(t *testing.T) {
	input := "(a / alpha)\n\n(b / beta)\n"
	path := filepath.Join(t.TempDir(), "graphs.penman")
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fromPath, err := Load(path)
	if err != nil {
		t.Fatalf("load from path: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	fromReader, err := Load(f)
	if err != nil {
		t.Fatalf("load from reader: %v", err)
	}

	if len(fromPath) != len(fromReader) {
		t.Fatalf("path loaded %d graphs, reader %d", len(fromPath), len(fromReader))
	}
	for i := range fromPath {
		a, _ := Encode(fromPath[i])
		b, _ := Encode(fromReader[i])
		if a != b {
			t.Fatalf("graph %d differs: %q vs %q", i, a, b)
		}
	}
}

func TestDumpPathAndWriterAgree(t *testing.T) {
	graphs := []*Graph{
		mustDecode(t, "(a / alpha)"),
		mustDecode(t, "(b / beta)"),
	}
	path := filepath.Join(t.TempDir(), "out.penman")
	if err := Dump(graphs, path); err != nil {
		t.Fatalf("dump to path: %v", err)
	}
	fromPath, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var buf bytes.Buffer
	if err := Dump(graphs, &buf); err != nil {
		t.Fatalf("dump to writer: %v", err)
	}
	if buf.String() != string(fromPath) {
		t.Fatalf("writer output %q differs from file output %q", buf.String(), fromPath)
	}
}

func TestUnsupportedDesignators(t *testing.T) {
	if _, err := Load(42); !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("load(42) error = %v, want ErrUnsupportedSource", err)
	}
	if err := Dump(nil, 42); !errors.Is(err, ErrUnsupportedSink) {
		t.Fatalf("dump(nil, 42) error = %v, want ErrUnsupportedSink", err)
	}
}

func TestDumpEncodeFailureAbortsRemainingWrites(t *testing.T) {
	good := mustDecode(t, "(a / alpha)")
	bad := &Graph{} // empty graph cannot be encoded
	tail := mustDecode(t, "(c / gamma)")

	var buf bytes.Buffer
	err := Dump([]*Graph{good, bad, tail}, &buf)
	if err == nil {
		t.Fatal("dump succeeded, want encode error")
	}
	// Writes before the failure stay flushed; nothing after it appears.
	if got := buf.String(); got != "(a / alpha)\n" {
		t.Fatalf("sink contents = %q, want first graph only", got)
	}
}

func TestLoadBorrowedReaderNotClosed(t *testing.T) {
	r := &closeTracking{Reader: strings.NewReader("(a / alpha)")}
	if _, err := Load(r); err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.closed {
		t.Fatal("load closed a borrowed reader")
	}
}

type closeTracking struct {
	*strings.Reader
	closed bool
}

func (c *closeTracking) Close() error {
	c.closed = true
	return nil
}
