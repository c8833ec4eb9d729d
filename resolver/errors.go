package resolver

import (
	"errors"
	"fmt"

	"simple-sql/sql"
)

var (
	ErrUndeclaredTable  = errors.New("undeclared table")
	ErrUndeclaredColumn = errors.New("undeclared column")
	ErrInvalidSize      = errors.New("invalid column size")
)

// NameError points at the table or column token that could not be resolved.
// Err is ErrUndeclaredTable or ErrUndeclaredColumn.
type NameError struct {
	Token  sql.Token
	Reason string
	Err    error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%d:%d: %v %q: %s", e.Token.Line, e.Token.Col, e.Err, e.Token.Lexeme, e.Reason)
}

func (e *NameError) Unwrap() error {
	return e.Err
}
