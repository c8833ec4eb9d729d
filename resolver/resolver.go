package resolver

import (
	"fmt"
	"strconv"

	"simple-sql/sql"
)

// Resolver threads one symbol table through a sequence of statements. It is
// not safe for concurrent use.
type Resolver struct {
	symbols SymbolTable
}

func New() *Resolver {
	return &Resolver{symbols: SymbolTable{}}
}

// ResolveScript resolves every statement of script in order against a fresh
// symbol table. On error no table is returned.
func ResolveScript(script *sql.Script) (SymbolTable, error) {
	r := New()
	for _, stmt := range script.Statements {
		if err := r.Resolve(stmt); err != nil {
			return nil, err
		}
	}
	return r.Symbols(), nil
}

// Analyze lexes, parses and resolves src, stopping at the first error.
func Analyze(src string) (SymbolTable, error) {
	script, err := sql.ParseString(src)
	if err != nil {
		return nil, err
	}
	return ResolveScript(script)
}

// Symbols returns the live table. It keeps changing as more statements are
// resolved.
func (r *Resolver) Symbols() SymbolTable {
	return r.symbols
}

func (r *Resolver) Clone() *Resolver {
	return &Resolver{symbols: r.symbols.Clone()}
}

// Resolve applies one statement. A statement that fails leaves the symbol
// table as it was.
func (r *Resolver) Resolve(stmt sql.Statement) error {
	switch stmt := stmt.(type) {
	case *sql.CreateStatement:
		return r.create(stmt)
	case *sql.SelectStatement:
		return r.selectFrom(stmt)
	}
	debugAssert(false, "unknown statement type %T", stmt)
	return fmt.Errorf("unknown statement type %T", stmt)
}

// create replaces any earlier table of the same name. Repeated columns keep
// the last declaration.
func (r *Resolver) create(stmt *sql.CreateStatement) error {
	table := Table{}
	for _, spec := range stmt.Columns {
		rec := &ColumnRecord{Type: spec.Typ.Lexeme}
		if spec.Size != nil {
			size, err := strconv.Atoi(spec.Size.Lexeme)
			if err != nil {
				return fmt.Errorf("%d:%d: column %q size %s: %w",
					spec.Size.Line, spec.Size.Col, spec.Name.Lexeme, spec.Size.Lexeme, ErrInvalidSize)
			}
			rec.Size = &size
		}
		table[spec.Name.Lexeme] = rec
	}
	r.symbols[stmt.Table.Lexeme] = table
	return nil
}

func (r *Resolver) selectFrom(stmt *sql.SelectStatement) error {
	tableName := stmt.Table.Lexeme
	table, ok := r.symbols[tableName]
	if !ok {
		return &NameError{Token: stmt.Table, Reason: "no such table", Err: ErrUndeclaredTable}
	}

	var accessed []*ColumnRecord
	if stmt.Wildcard {
		for _, rec := range table {
			accessed = append(accessed, rec)
		}
	} else {
		for _, col := range stmt.Columns {
			rec, ok := table[col.Lexeme]
			if !ok {
				return &NameError{
					Token:  col,
					Reason: fmt.Sprintf("column is not in table %s", tableName),
					Err:    ErrUndeclaredColumn,
				}
			}
			accessed = append(accessed, rec)
		}
	}

	for _, rec := range accessed {
		rec.access(stmt.Keyword.Line)
	}
	return nil
}
