package sql

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnrecognizedSymbol  = errors.New("unrecognized symbol")
	ErrUnterminatedComment = errors.New("comment not terminated by a newline")
)

// LexError reports the position of the first character the lexer could not
// turn into a token.
type LexError struct {
	Line int
	Col  int
	Char rune
	Err  error
}

func (e *LexError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Col, e.Err, e.Char)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the next token doesn't fit the grammar rule
// being parsed.
type ParseError struct {
	Got      Token
	Expected []TokenType
}

func (e *ParseError) Error() string {
	expected := make([]string, 0, len(e.Expected))
	for _, typ := range e.Expected {
		expected = append(expected, typ.String())
	}
	return fmt.Sprintf("%d:%d: unexpected token %v, expected %s",
		e.Got.Line, e.Got.Col, e.Got, strings.Join(expected, " or "))
}
