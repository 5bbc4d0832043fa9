package penman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// graphsEqual compares top and triple sets, which is what the notation
// preserves across a re-encode.
func graphsEqual(t *testing.T, want, got *Graph) {
	t.Helper()
	if want.Top != got.Top {
		t.Fatalf("top = %q, want %q", got.Top, want.Top)
	}
	if diff := cmp.Diff(want.Triples(), got.Triples()); diff != "" {
		t.Fatalf("triples mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripAcrossLayouts(t *testing.T) {
	inputs := []string{
		"(h / hi)",
		"(b / bark-01 :ARG0 (d / dog))",
		`(c / city :name (n / name :op1 "New" :op2 "York"))`,
		"(w / want-01 :ARG0 (d / dog) :ARG1 (g / go-02 :ARG0 d))",
		"(a / and :op1 (x / exist-01 :polarity -) :op2 (y / year :quant 3))",
	}
	layouts := [][]Option{
		nil,
		{WithIndent(IndentNone)},
		{WithIndent(4)},
		{WithCompact()},
	}
	for _, input := range inputs {
		orig := mustDecode(t, input)
		for _, layout := range layouts {
			out, err := Encode(orig, layout...)
			if err != nil {
				t.Fatalf("encode(%q): %v", input, err)
			}
			back, err := Decode(out)
			if err != nil {
				t.Fatalf("decode of re-encoded %q: %v\nencoded: %s", input, err, out)
			}
			graphsEqual(t, orig, back)
		}
	}
}

func TestRoundTripTriplesLayout(t *testing.T) {
	inputs := []string{
		"(h / hi)",
		"(b / bark-01 :ARG0 (d / dog) :polarity -)",
	}
	for _, input := range inputs {
		orig := mustDecode(t, input)
		out, err := Encode(orig, WithTriples())
		if err != nil {
			t.Fatalf("encode(%q): %v", input, err)
		}
		back, err := Decode(out, WithTriples())
		if err != nil {
			t.Fatalf("decode of %q: %v", out, err)
		}
		graphsEqual(t, orig, back)
	}
}

func TestRoundTripThroughDumpAndLoad(t *testing.T) {
	graphs := []*Graph{
		mustDecode(t, "(a / alpha :mod (m / modest))"),
		mustDecode(t, "(b / beta :quant 7)"),
	}
	s, err := Dumps(graphs)
	if err != nil {
		t.Fatalf("dumps: %v", err)
	}
	back, err := Loads(s)
	if err != nil {
		t.Fatalf("loads: %v", err)
	}
	if len(back) != len(graphs) {
		t.Fatalf("loads returned %d graphs, want %d", len(back), len(graphs))
	}
	for i := range graphs {
		graphsEqual(t, graphs[i], back[i])
	}
}
