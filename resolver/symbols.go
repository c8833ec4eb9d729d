package resolver

import (
	"cmp"
	"slices"
)

// ColumnRecord is what the resolver knows about one declared column and how
// often SELECT statements touched it.
type ColumnRecord struct {
	Type string `json:"type"`
	// nil when the column was declared without "(size)"
	Size     *int `json:"size,omitempty"`
	Accesses int  `json:"accesses"`
	// line of the SELECT keyword, once per access
	Lines []int `json:"lines,omitempty"`
}

func (c *ColumnRecord) access(line int) {
	c.Accesses++
	c.Lines = append(c.Lines, line)
	debugAssert(len(c.Lines) == c.Accesses, "access lines out of sync: %d lines for %d accesses", len(c.Lines), c.Accesses)
}

type Table map[string]*ColumnRecord

type SymbolTable map[string]Table

func (st SymbolTable) Column(table, column string) (*ColumnRecord, bool) {
	t, ok := st[table]
	if !ok {
		return nil, false
	}
	rec, ok := t[column]
	return rec, ok
}

// Clone returns a deep copy, records included.
func (st SymbolTable) Clone() SymbolTable {
	out := make(SymbolTable, len(st))
	for name, table := range st {
		t := make(Table, len(table))
		for col, rec := range table {
			c := *rec
			if rec.Size != nil {
				size := *rec.Size
				c.Size = &size
			}
			c.Lines = slices.Clone(rec.Lines)
			t[col] = &c
		}
		out[name] = t
	}
	return out
}

type ColumnRef struct {
	Table  string
	Column string
	Record *ColumnRecord
}

// Columns flattens the table, sorted by table and then column name.
func (st SymbolTable) Columns() []ColumnRef {
	var refs []ColumnRef
	for name, table := range st {
		for col, rec := range table {
			refs = append(refs, ColumnRef{Table: name, Column: col, Record: rec})
		}
	}
	slices.SortFunc(refs, func(a, b ColumnRef) int {
		return cmp.Or(cmp.Compare(a.Table, b.Table), cmp.Compare(a.Column, b.Column))
	})
	return refs
}
