package sql

// Script is a sequence of statements in source order. Order matters: a
// SELECT only sees tables created by earlier statements.
type Script struct {
	Statements []Statement
}

// Statement is either a *CreateStatement or a *SelectStatement.
type Statement interface {
	statementTag()
}

type CreateStatement struct {
	Keyword Token
	Table   Token
	Columns []ColumnSpec
}

func (*CreateStatement) statementTag() {}

type ColumnSpec struct {
	Name Token
	Typ  Token
	// nil unless the type is followed by "(NUMBER)"
	Size *Token
}

// SelectStatement lists either every column (Wildcard) or the Columns named
// explicitly. A wildcard select has no Columns; the two are never mixed.
type SelectStatement struct {
	Keyword  Token
	Columns  []Token
	Wildcard bool
	Table    Token
}

func (*SelectStatement) statementTag() {}
