package penman

import (
	"bufio"
	"io"
	"strings"
)

// Indentation sentinels for Options.Indent.
const (
	// IndentAuto aligns each branch under the column after its node's
	// variable. This is the default.
	IndentAuto = -1
	// IndentNone lays every graph out on a single line.
	IndentNone = -2
)

// Options configures one decode or encode operation. A value is built
// once per public call and is read-only afterwards.
type Options struct {
	// Model provides role semantics for inversion. Nil selects DefaultModel.
	Model *Model
	// Triples selects the flat conjunction-of-triples syntax.
	Triples bool
	// Indent is a column count, IndentAuto, or IndentNone.
	Indent int
	// Compact keeps a node's leading attributes on its first line.
	Compact bool
	// Top re-roots encoding at the named variable when non-empty.
	Top string
}

// Option configures decode/encode behavior.
type Option func(*Options)

// WithModel sets the role model.
func WithModel(m *Model) Option {
	return func(opts *Options) {
		opts.Model = m
	}
}

// WithTriples switches reading and writing to triple conjunctions.
func WithTriples() Option {
	return func(opts *Options) {
		opts.Triples = true
	}
}

// WithIndent sets a fixed indent of n columns per nesting level.
// WithIndent(IndentAuto) and WithIndent(IndentNone) select the sentinels.
func WithIndent(n int) Option {
	return func(opts *Options) {
		opts.Indent = n
	}
}

// WithCompact keeps a node's leading attributes on its first line.
func WithCompact() Option {
	return func(opts *Options) {
		opts.Compact = true
	}
}

// WithTop re-roots encoded output at the named variable. The variable
// must exist in the graph.
func WithTop(v string) Option {
	return func(opts *Options) {
		opts.Top = v
	}
}

func defaultOptions() Options {
	return Options{Indent: IndentAuto}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Model == nil {
		options.Model = DefaultModel
	}
	return options
}

// Codec binds a model and options to the PENMAN grammar. Every public
// operation of the package constructs exactly one Codec and discards it
// when the call returns.
type Codec struct {
	opts Options
}

// NewCodec returns a codec for the given model. A nil model selects
// DefaultModel.
func NewCodec(model *Model, opts ...Option) *Codec {
	options := buildOptions(opts)
	if model != nil {
		options.Model = model
	}
	return &Codec{opts: options}
}

func newCodec(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Decode parses s as exactly one graph. Zero graphs, trailing content,
// or a grammar violation yield a *DecodeError.
func (c *Codec) Decode(s string) (*Graph, error) {
	meta, body := splitMetadata(s)
	if c.opts.Triples {
		return decodeTriples(body, meta)
	}
	if strings.TrimSpace(body) == "" {
		return nil, decodeErrorf(s, 0, 0, "no graph found in input")
	}
	p := newParser(body)
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if err := p.parseEnd(); err != nil {
		return nil, err
	}
	return interpret(root, meta), nil
}

// Encode serializes g using the bound options. A top override naming a
// variable absent from the graph yields an *EncodeError.
func (c *Codec) Encode(g *Graph) (string, error) {
	if c.opts.Triples {
		return encodeTriples(g, c.opts.Top, c.opts.Model)
	}
	root, err := configure(g, c.opts.Top, c.opts.Model)
	if err != nil {
		return "", err
	}
	return formatGraph(root, c.opts), nil
}

// IterDecode returns a pull-style reader over every graph in r. Each
// Next call scans and decodes one graph; malformed input fails at the
// element that contains it. The reader is single-pass.
func (c *Codec) IterDecode(r io.Reader) *GraphReader {
	return &GraphReader{codec: c, reader: bufio.NewReader(r)}
}

// GraphReader streams graphs from an input. Next returns io.EOF when the
// input is exhausted; any other error is sticky.
type GraphReader struct {
	codec  *Codec
	reader *bufio.Reader
	err    error
}

// Next scans the next graph's text from the input and decodes it.
func (r *GraphReader) Next() (*Graph, error) {
	if r.err != nil {
		return nil, r.err
	}
	var chunk string
	var err error
	if r.codec.opts.Triples {
		chunk, err = nextTripleChunk(r.reader)
	} else {
		chunk, err = nextGraphChunk(r.reader)
	}
	if err != nil {
		r.err = err
		return nil, err
	}
	g, err := r.codec.Decode(chunk)
	if err != nil {
		r.err = err
		return nil, err
	}
	return g, nil
}

// nextGraphChunk reads one balanced parenthesized graph, keeping any
// "# ::" metadata lines that precede it. Returns io.EOF if only
// whitespace and plain comments remain.
func nextGraphChunk(br *bufio.Reader) (string, error) {
	var chunk strings.Builder
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		switch ch {
		case ' ', '\t', '\r', '\n':
			continue
		case '#':
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				return "", err
			}
			if strings.HasPrefix(line, " ::") {
				chunk.WriteByte('#')
				chunk.WriteString(line)
				if !strings.HasSuffix(line, "\n") {
					chunk.WriteByte('\n')
				}
			}
			if err == io.EOF {
				return "", io.EOF
			}
			continue
		case '(':
			chunk.WriteByte('(')
			if err := readBalanced(br, &chunk); err != nil {
				return "", err
			}
			return chunk.String(), nil
		default:
			return "", decodeErrorf(string(ch), 0, 0, "expected '(', found %q", ch)
		}
	}
}

// readBalanced copies input into chunk until the parenthesis opened by
// the caller closes, honoring strings and comments.
func readBalanced(br *bufio.Reader, chunk *strings.Builder) error {
	depth := 1
	inString := false
	inComment := false
	escaped := false
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return decodeErrorf(chunk.String(), 0, 0, "unbalanced parentheses at end of input")
		}
		if err != nil {
			return err
		}
		chunk.WriteByte(ch)
		switch {
		case escaped:
			escaped = false
		case inString:
			if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
		case inComment:
			if ch == '\n' {
				inComment = false
			}
		case ch == '"':
			inString = true
		case ch == '#':
			inComment = true
		case ch == '(':
			depth++
		case ch == ')':
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}

// nextTripleChunk reads one blank-line-delimited block of triple
// conjunction text, keeping "# ::" metadata lines.
func nextTripleChunk(br *bufio.Reader) (string, error) {
	var chunk strings.Builder
	started := false
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			if started {
				return chunk.String(), nil
			}
		case strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "# ::"):
			// Plain comment, ignore.
		default:
			started = true
			chunk.WriteString(line)
		}
		if err == io.EOF {
			if started {
				return chunk.String(), nil
			}
			return "", io.EOF
		}
	}
}
