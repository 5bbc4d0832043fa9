package penman

// parser builds a tree from tokens with one token of lookahead.
// Alignment markers are consumed and dropped wherever they appear.
type parser struct {
	sc     *scanner
	tok    token
	peeked bool
}

func newParser(input string) *parser {
	return &parser{sc: newScanner(input)}
}

func (p *parser) next() (token, error) {
	if p.peeked {
		p.peeked = false
		return p.tok, nil
	}
	for {
		tok, err := p.sc.next()
		if err != nil {
			return token{}, err
		}
		if tok.Kind == TokAlign {
			continue
		}
		return tok, nil
	}
}

func (p *parser) peek() (token, error) {
	if !p.peeked {
		tok, err := p.next()
		if err != nil {
			return token{}, err
		}
		p.tok = tok
		p.peeked = true
	}
	return p.tok, nil
}

func (p *parser) errorf(tok token, format string, args ...interface{}) *DecodeError {
	return decodeErrorf(p.sc.input, tok.Line, tok.Column, format, args...)
}

// parseNode parses one parenthesized node:
//
//	node   := "(" variable ("/" concept)? branch* ")"
//	branch := role (node | symbol | string)
func (p *parser) parseNode() (*treeNode, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokLParen {
		return nil, p.errorf(tok, "expected '(', found %s", describeToken(tok))
	}
	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokSymbol {
		return nil, p.errorf(tok, "expected a variable, found %s", describeToken(tok))
	}
	node := &treeNode{Var: tok.Lexeme}

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokSlash {
		p.peeked = false
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokSymbol && tok.Kind != TokString {
			return nil, p.errorf(tok, "expected a concept, found %s", describeToken(tok))
		}
		node.Concept = tok.Lexeme
	}

	for {
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokRParen:
			return node, nil
		case TokRole:
			branch, err := p.parseBranch(tok.Lexeme)
			if err != nil {
				return nil, err
			}
			node.Branches = append(node.Branches, branch)
		default:
			return nil, p.errorf(tok, "expected a role or ')', found %s", describeToken(tok))
		}
	}
}

func (p *parser) parseBranch(role string) (treeBranch, error) {
	tok, err := p.peek()
	if err != nil {
		return treeBranch{}, err
	}
	switch tok.Kind {
	case TokLParen:
		child, err := p.parseNode()
		if err != nil {
			return treeBranch{}, err
		}
		return treeBranch{Role: role, Node: child}, nil
	case TokSymbol, TokString:
		p.peeked = false
		return treeBranch{Role: role, Atom: tok.Lexeme}, nil
	default:
		return treeBranch{}, p.errorf(tok, "expected a value for role %s, found %s", role, describeToken(tok))
	}
}

// parseEnd asserts no graph content remains in the input.
func (p *parser) parseEnd() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokEOF {
		return p.errorf(tok, "unexpected content after graph: %s", describeToken(tok))
	}
	return nil
}

func describeToken(tok token) string {
	if tok.Kind == TokEOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}
