package penman

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedSource indicates a source that is neither a path nor a reader.
	ErrCodeUnsupportedSource ErrorCode = "UNSUPPORTED_SOURCE"
	// ErrCodeUnsupportedSink indicates a sink that is neither a path nor a writer.
	ErrCodeUnsupportedSink ErrorCode = "UNSUPPORTED_SINK"
	// ErrCodeMalformedGraph indicates notation text that violates the grammar.
	ErrCodeMalformedGraph ErrorCode = "MALFORMED_GRAPH"
	// ErrCodeEncode indicates a graph the encoder rejects.
	ErrCodeEncode ErrorCode = "ENCODE_ERROR"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
)

var (
	// ErrUnsupportedSource indicates a source designator that is neither a
	// filesystem path nor an io.Reader.
	ErrUnsupportedSource = errors.New("penman: source is neither a path nor a reader")
	// ErrUnsupportedSink indicates a sink designator that is neither a
	// filesystem path nor an io.Writer.
	ErrUnsupportedSink = errors.New("penman: sink is neither a path nor a writer")
)

// Code returns the error code for an error. Returns empty string for nil
// errors and for io.EOF, which is not an error condition.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}
	switch {
	case errors.Is(err, ErrUnsupportedSource):
		return ErrCodeUnsupportedSource
	case errors.Is(err, ErrUnsupportedSink):
		return ErrCodeUnsupportedSink
	}
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return ErrCodeMalformedGraph
	}
	var encErr *EncodeError
	if errors.As(err, &encErr) {
		return ErrCodeEncode
	}
	return ErrCodeIOError
}

// DecodeError provides structured context for notation parse failures.
type DecodeError struct {
	Text   string // Offending graph text or input excerpt
	Line   int    // 1-based line number (0 if unknown)
	Column int    // 1-based column number (0 if unknown)
	Err    error  // Underlying error
}

func (e *DecodeError) Error() string {
	var msg strings.Builder
	msg.WriteString("penman")
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// formatExcerpt renders the offending line with a caret at the error column.
func (e *DecodeError) formatExcerpt() string {
	if e.Text == "" {
		return ""
	}
	lines := strings.Split(e.Text, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		const maxExcerptLen = 80
		if len(e.Text) > maxExcerptLen {
			return e.Text[:maxExcerptLen] + "..."
		}
		return e.Text
	}
	line := lines[e.Line-1]
	if e.Column < 1 {
		return line
	}
	caretPos := e.Column - 1
	if caretPos > len(line) {
		caretPos = len(line)
	}
	var result strings.Builder
	result.WriteString(line)
	result.WriteString("\n  ")
	for i := 0; i < caretPos; i++ {
		result.WriteByte(' ')
	}
	result.WriteByte('^')
	return result.String()
}

// EncodeError reports a graph the encoder cannot serialize, such as a top
// override naming a variable that is not in the graph.
type EncodeError struct {
	Var string // Variable involved, if any
	Err error  // Underlying error
}

func (e *EncodeError) Error() string {
	if e.Var != "" {
		return fmt.Sprintf("penman: %s: %s", e.Err.Error(), e.Var)
	}
	return "penman: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

func decodeErrorf(text string, line, column int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Text:   text,
		Line:   line,
		Column: column,
		Err:    fmt.Errorf(format, args...),
	}
}
