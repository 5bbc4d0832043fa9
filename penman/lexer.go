package penman

import "strings"

type tokenKind int

const (
	TokEOF tokenKind = iota
	TokLParen
	TokRParen
	TokSlash
	TokRole
	TokSymbol
	TokString
	TokAlign
)

func (k tokenKind) String() string {
	switch k {
	case TokEOF:
		return "TokEOF"
	case TokLParen:
		return "TokLParen"
	case TokRParen:
		return "TokRParen"
	case TokSlash:
		return "TokSlash"
	case TokRole:
		return "TokRole"
	case TokSymbol:
		return "TokSymbol"
	case TokString:
		return "TokString"
	case TokAlign:
		return "TokAlign"
	default:
		return "TokUnknown"
	}
}

type token struct {
	Kind   tokenKind
	Lexeme string
	Line   int
	Column int
}

// scanner tokenizes one graph's worth of notation text. Position tracking
// is 1-based so it can flow directly into DecodeError.
type scanner struct {
	input string
	pos   int
	line  int
	col   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1, col: 1}
}

func (s *scanner) errorf(line, col int, format string, args ...interface{}) *DecodeError {
	return decodeErrorf(s.input, line, col, format, args...)
}

func (s *scanner) next() (token, error) {
	s.skipSpace()
	if s.pos >= len(s.input) {
		return token{Kind: TokEOF, Line: s.line, Column: s.col}, nil
	}
	line, col := s.line, s.col
	switch ch := s.input[s.pos]; ch {
	case '(':
		s.advance()
		return token{Kind: TokLParen, Lexeme: "(", Line: line, Column: col}, nil
	case ')':
		s.advance()
		return token{Kind: TokRParen, Lexeme: ")", Line: line, Column: col}, nil
	case '/':
		s.advance()
		return token{Kind: TokSlash, Lexeme: "/", Line: line, Column: col}, nil
	case ':':
		return s.scanRole()
	case '"':
		return s.scanString()
	case '~':
		return s.scanAlignment()
	}
	return s.scanSymbol()
}

func (s *scanner) scanRole() (token, error) {
	line, col := s.line, s.col
	start := s.pos
	s.advance() // consume ':'
	for s.pos < len(s.input) && !isDelimiter(s.input[s.pos]) && s.input[s.pos] != '~' {
		s.advance()
	}
	lexeme := s.input[start:s.pos]
	if lexeme == ":" {
		return token{}, s.errorf(line, col, "empty role")
	}
	return token{Kind: TokRole, Lexeme: lexeme, Line: line, Column: col}, nil
}

func (s *scanner) scanString() (token, error) {
	line, col := s.line, s.col
	start := s.pos
	s.advance() // consume opening quote
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if ch == '\\' && s.pos+1 < len(s.input) {
			s.advance()
			s.advance()
			continue
		}
		if ch == '"' {
			s.advance()
			return token{Kind: TokString, Lexeme: s.input[start:s.pos], Line: line, Column: col}, nil
		}
		s.advance()
	}
	return token{}, s.errorf(line, col, "unterminated string")
}

// scanAlignment consumes a surface alignment marker such as ~1 or ~e.1,2.
// Alignments are tolerated on input and discarded.
func (s *scanner) scanAlignment() (token, error) {
	line, col := s.line, s.col
	start := s.pos
	s.advance() // consume '~'
	for s.pos < len(s.input) && !isDelimiter(s.input[s.pos]) {
		s.advance()
	}
	return token{Kind: TokAlign, Lexeme: s.input[start:s.pos], Line: line, Column: col}, nil
}

func (s *scanner) scanSymbol() (token, error) {
	line, col := s.line, s.col
	start := s.pos
	for s.pos < len(s.input) && !isDelimiter(s.input[s.pos]) && s.input[s.pos] != '~' {
		s.advance()
	}
	lexeme := s.input[start:s.pos]
	if lexeme == "" {
		return token{}, s.errorf(line, col, "unexpected character %q", s.input[s.pos])
	}
	return token{Kind: TokSymbol, Lexeme: lexeme, Line: line, Column: col}, nil
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case '#':
			// Comment to end of line.
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *scanner) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func isDelimiter(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' ||
		ch == '(' || ch == ')' || ch == '/' || ch == '"'
}

// splitMetadata separates "# ::key value" comment lines from the text
// that precedes a graph and returns them as a metadata map.
func splitMetadata(text string) (map[string]string, string) {
	var meta map[string]string
	var body []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ::") {
			rest := strings.TrimPrefix(trimmed, "# ::")
			key, value, _ := strings.Cut(rest, " ")
			if key != "" {
				if meta == nil {
					meta = make(map[string]string)
				}
				meta[key] = strings.TrimSpace(value)
			}
			continue
		}
		body = append(body, line)
	}
	return meta, strings.Join(body, "\n")
}
