package sql

import "iter"

func Parse(tokens iter.Seq2[Token, error]) (*Script, error) {
	pull, stop := iter.Pull2(tokens)
	defer stop()

	p := &parser{pull: pull}
	p.advance()
	return p.parseScript()
}

func ParseString(in string) (*Script, error) {
	return Parse(Lex(in))
}

// parser keeps exactly one token of lookahead. A lexical error pulled from
// the stream is held in err and reported by the next expect or fail.
type parser struct {
	pull    func() (Token, error, bool)
	current Token
	err     error
}

func (p *parser) advance() {
	if p.err != nil {
		return
	}
	tok, err, ok := p.pull()
	if !ok {
		// stream exhausted, current stays at EOF
		return
	}
	if err != nil {
		p.err = err
		return
	}
	p.current = tok
}

func (p *parser) peek(typ TokenType) bool {
	return p.err == nil && p.current.Typ == typ
}

func (p *parser) accept(typ TokenType) (Token, bool) {
	if !p.peek(typ) {
		return Token{}, false
	}
	tok := p.current
	p.advance()
	return tok, true
}

func (p *parser) expect(typ TokenType) (Token, error) {
	tok, ok := p.accept(typ)
	if !ok {
		return Token{}, p.fail(typ)
	}
	return tok, nil
}

func (p *parser) fail(expected ...TokenType) error {
	if p.err != nil {
		return p.err
	}
	return &ParseError{Got: p.current, Expected: expected}
}

func (p *parser) parseScript() (*Script, error) {
	var statements []Statement
	for {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if p.peek(EOF) {
			return &Script{Statements: statements}, nil
		}
	}
}

func (p *parser) parseStatement() (Statement, error) {
	var stmt Statement
	var err error

	if kw, ok := p.accept(Select); ok {
		stmt, err = p.parseSelectStatement(kw)
	} else if kw, ok := p.accept(Create); ok {
		stmt, err = p.parseCreateStatement(kw)
	} else {
		return nil, p.fail(Select, Create)
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(Semicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseSelectStatement(kw Token) (*SelectStatement, error) {
	stmt := &SelectStatement{Keyword: kw}

	if _, ok := p.accept(Wildcard); ok {
		stmt.Wildcard = true
	} else if col, ok := p.accept(Identifier); ok {
		stmt.Columns = []Token{col}
		for {
			if _, ok := p.accept(Comma); !ok {
				break
			}
			col, err := p.expect(Identifier)
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
		}
	} else {
		return nil, p.fail(Wildcard, Identifier)
	}

	if _, err := p.expect(From); err != nil {
		return nil, err
	}
	table, err := p.expect(Identifier)
	if err != nil {
		return nil, err
	}
	stmt.Table = table
	return stmt, nil
}

func (p *parser) parseCreateStatement(kw Token) (*CreateStatement, error) {
	if _, err := p.expect(Table); err != nil {
		return nil, err
	}
	table, err := p.expect(Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(OpenParen); err != nil {
		return nil, err
	}

	var columns []ColumnSpec
	for {
		spec, err := p.parseColumnSpec()
		if err != nil {
			return nil, err
		}
		columns = append(columns, spec)

		if _, ok := p.accept(Comma); !ok {
			break
		}
	}

	if _, err := p.expect(CloseParen); err != nil {
		return nil, err
	}
	return &CreateStatement{Keyword: kw, Table: table, Columns: columns}, nil
}

func (p *parser) parseColumnSpec() (ColumnSpec, error) {
	name, err := p.expect(Identifier)
	if err != nil {
		return ColumnSpec{}, err
	}
	typ, err := p.expect(Identifier)
	if err != nil {
		return ColumnSpec{}, err
	}

	spec := ColumnSpec{Name: name, Typ: typ}
	if _, ok := p.accept(OpenParen); !ok {
		return spec, nil
	}
	size, err := p.expect(Number)
	if err != nil {
		return ColumnSpec{}, err
	}
	if _, err := p.expect(CloseParen); err != nil {
		return ColumnSpec{}, err
	}
	spec.Size = &size
	return spec, nil
}
