package penman

import "testing"

func TestEncodeLayouts(t *testing.T) {
	g, err := Decode("(a / alpha :polarity - :ARG0 (b / beta :mod (c / gamma)))")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "auto indent",
			opts: nil,
			want: "(a / alpha\n   :polarity -\n   :ARG0 (b / beta\n            :mod (c / gamma)))",
		},
		{
			name: "no indent",
			opts: []Option{WithIndent(IndentNone)},
			want: "(a / alpha :polarity - :ARG0 (b / beta :mod (c / gamma)))",
		},
		{
			name: "fixed indent",
			opts: []Option{WithIndent(2)},
			want: "(a / alpha\n  :polarity -\n  :ARG0 (b / beta\n          :mod (c / gamma)))",
		},
		{
			name: "compact attributes",
			opts: []Option{WithCompact()},
			want: "(a / alpha :polarity -\n   :ARG0 (b / beta\n            :mod (c / gamma)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(g, tt.opts...)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got != tt.want {
				t.Fatalf("encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompactStopsAtFirstEdge(t *testing.T) {
	g, err := Decode("(a / alpha :ARG0 (b / beta) :polarity -)")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := Encode(g, WithCompact())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// :polarity follows an edge in notation order, so it stays on its own line.
	want := "(a / alpha\n   :ARG0 (b / beta)\n   :polarity -)"
	if got != want {
		t.Fatalf("encode = %q, want %q", got, want)
	}
}
