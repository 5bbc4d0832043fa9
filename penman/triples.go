package penman

import "strings"

// Triple conjunction syntax: role(source, target) terms joined by '^'.
// The instance role is written bare; every other role drops its leading
// colon on output and regains it on input.

// decodeTriples parses a conjunction of triples into a graph. The source
// of the first triple becomes the top.
func decodeTriples(body string, meta map[string]string) (*Graph, error) {
	sc := newScanner(body)
	var triples []Triple
	for {
		tok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokEOF {
			break
		}
		if len(triples) > 0 {
			if tok.Kind != TokSymbol || tok.Lexeme != "^" {
				return nil, sc.errorf(tok.Line, tok.Column, "expected '^', found %s", describeToken(tok))
			}
			tok, err = sc.next()
			if err != nil {
				return nil, err
			}
		}
		t, err := parseTripleTerm(sc, tok)
		if err != nil {
			return nil, err
		}
		triples = append(triples, t)
	}
	if len(triples) == 0 {
		return nil, decodeErrorf(body, 0, 0, "no triples found in input")
	}
	g := NewGraph(triples, "")
	g.Metadata = meta
	return g, nil
}

// parseTripleTerm parses one "role(source, target)" term. The scanner
// splits "role(source," into symbol runs because '(' is a delimiter, so
// the pieces arrive as separate tokens.
func parseTripleTerm(sc *scanner, name token) (Triple, error) {
	if name.Kind != TokSymbol && name.Kind != TokRole {
		return Triple{}, sc.errorf(name.Line, name.Column, "expected a role name, found %s", describeToken(name))
	}
	open, err := sc.next()
	if err != nil {
		return Triple{}, err
	}
	if open.Kind != TokLParen {
		return Triple{}, sc.errorf(open.Line, open.Column, "expected '(' after role %s, found %s", name.Lexeme, describeToken(open))
	}
	source, err := sc.next()
	if err != nil {
		return Triple{}, err
	}
	if source.Kind != TokSymbol && source.Kind != TokString {
		return Triple{}, sc.errorf(source.Line, source.Column, "expected a source, found %s", describeToken(source))
	}
	src := strings.TrimSuffix(source.Lexeme, ",")
	if src == source.Lexeme {
		comma, err := sc.next()
		if err != nil {
			return Triple{}, err
		}
		if comma.Kind != TokSymbol || comma.Lexeme != "," {
			return Triple{}, sc.errorf(comma.Line, comma.Column, "expected ',', found %s", describeToken(comma))
		}
	}
	target, err := sc.next()
	if err != nil {
		return Triple{}, err
	}
	if target.Kind != TokSymbol && target.Kind != TokString {
		return Triple{}, sc.errorf(target.Line, target.Column, "expected a target, found %s", describeToken(target))
	}
	tgt := target.Lexeme
	closing, err := sc.next()
	if err != nil {
		return Triple{}, err
	}
	if closing.Kind != TokRParen {
		return Triple{}, sc.errorf(closing.Line, closing.Column, "expected ')', found %s", describeToken(closing))
	}
	role := name.Lexeme
	if role != "instance" && !strings.HasPrefix(role, ":") {
		role = ":" + role
	}
	if role == "instance" {
		role = InstanceRole
	}
	return Triple{Source: src, Role: role, Target: tgt}, nil
}

// encodeTriples writes the graph as a conjunction, one triple per line.
// A top override moves that variable's triples to the front.
func encodeTriples(g *Graph, top string, model *Model) (string, error) {
	if len(g.triples) == 0 {
		return "", &EncodeError{Err: errEmptyGraph}
	}
	triples := g.Triples()
	if top != "" && top != g.Top {
		if _, ok := g.Variables()[top]; !ok {
			return "", &EncodeError{Var: top, Err: errTopNotInGraph}
		}
		front := make([]Triple, 0, len(triples))
		rest := make([]Triple, 0, len(triples))
		for _, t := range triples {
			if t.Source == top {
				front = append(front, t)
			} else {
				rest = append(rest, t)
			}
		}
		triples = append(front, rest...)
	}
	parts := make([]string, 0, len(triples))
	for _, t := range triples {
		if t.Role == InstanceRole && t.Target == "" {
			// A concept-less instance has no expressible term form.
			continue
		}
		role := strings.TrimPrefix(t.Role, ":")
		parts = append(parts, role+"("+t.Source+", "+t.Target+")")
	}
	return strings.Join(parts, " ^\n"), nil
}
