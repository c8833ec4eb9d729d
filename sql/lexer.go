package sql

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

type TokenType int

const (
	EOF TokenType = iota
	Select
	From
	Create
	Table
	Identifier
	Number
	OpenParen
	CloseParen
	Wildcard
	Comma
	Semicolon
	Comment
)

func (t TokenType) String() string {
	return [...]string{
		"EOF",
		"Select",
		"From",
		"Create",
		"Table",
		"Identifier",
		"Number",
		"OpenParen",
		"CloseParen",
		"Wildcard",
		"Comma",
		"Semicolon",
		"Comment",
	}[int(t)]
}

type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	if t.Typ == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("<%v; %v>", t.Typ, t.Lexeme)
}

// keywords are matched case-sensitively, "select" is an identifier
var keywords = map[string]TokenType{
	"SELECT": Select,
	"FROM":   From,
	"CREATE": Create,
	"TABLE":  Table,
}

var singleCharTokens = map[rune]TokenType{
	'(': OpenParen,
	')': CloseParen,
	'*': Wildcard,
	',': Comma,
	';': Semicolon,
}

// Lex returns a lazy token stream over in. Tokens are scanned one at a time
// as the consumer pulls them. The stream ends after the EOF token or after the
// first lexical error. It is single-pass: ranging over it again resumes where
// the previous loop stopped instead of starting over.
func Lex(in string) iter.Seq2[Token, error] {
	it := &strIter{Reader: strings.NewReader(in), line: 1, col: 1}
	done := false

	return func(yield func(Token, error) bool) {
		for !done {
			tok, err := it.scan()
			if err != nil || tok.Typ == EOF {
				done = true
			}
			if err == nil && tok.Typ == Comment {
				continue
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

func (it *strIter) scan() (Token, error) {
	for {
		line, col := it.line, it.col
		c, ok := it.next()
		if !ok {
			return emit(EOF, "", line, col), nil
		}

		if unicode.IsSpace(c) {
			continue
		} else if isDigit(c) {
			return emit(Number, readWhile(c, it, isDigit), line, col), nil
		} else if c == '-' {
			return it.comment(line, col)
		} else if unicode.IsLetter(c) {
			word := readWhile(c, it, isAlnum)
			if typ, ok := keywords[word]; ok {
				return emit(typ, word, line, col), nil
			}
			return emit(Identifier, word, line, col), nil
		} else if typ, ok := singleCharTokens[c]; ok {
			return emit(typ, string(c), line, col), nil
		}
		return Token{}, &LexError{Line: line, Col: col, Char: c, Err: ErrUnrecognizedSymbol}
	}
}

// comment consumes "--" and everything up to and including the next newline.
func (it *strIter) comment(line, col int) (Token, error) {
	if next, ok := it.peek(); !ok || next != '-' {
		return Token{}, &LexError{Line: line, Col: col, Char: '-', Err: ErrUnrecognizedSymbol}
	}
	it.next()

	body := readWhile('-', it, func(r rune) bool { return r != '\n' })
	if _, ok := it.next(); !ok {
		return Token{}, &LexError{Line: line, Col: col, Err: ErrUnterminatedComment}
	}
	return emit(Comment, "-"+body, line, col), nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func readWhile(first rune, si *strIter, fn func(rune) bool) string {
	var out strings.Builder
	out.WriteRune(first)
	for next, ok := si.peek(); ok; next, ok = si.peek() {
		if !fn(next) {
			break
		}
		si.next()
		out.WriteRune(next)
	}
	return out.String()
}

type strIter struct {
	*strings.Reader
	line int
	col  int
}

func (l *strIter) next() (rune, bool) {
	r, _, err := l.ReadRune()
	if err != nil {
		return r, false
	}
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r, true
}

func (l *strIter) peek() (rune, bool) {
	line, col := l.line, l.col
	r, ok := l.next()
	if ok {
		l.UnreadRune()
	}
	l.line, l.col = line, col
	return r, ok
}

func emit(typ TokenType, lexeme string, line, col int) Token {
	return Token{typ, lexeme, line, col}
}
