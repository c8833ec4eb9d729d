package resolver

// HotColumns returns the columns accessed more often than the average column,
// the usual candidates for an index.
func HotColumns(st SymbolTable) []ColumnRef {
	refs := st.Columns()
	total := 0
	for _, ref := range refs {
		total += ref.Record.Accesses
	}

	var hot []ColumnRef
	for _, ref := range refs {
		// accesses > total/len(refs), kept in integers
		if ref.Record.Accesses*len(refs) > total {
			hot = append(hot, ref)
		}
	}
	return hot
}

// UnusedColumns returns the columns no SELECT ever touched.
func UnusedColumns(st SymbolTable) []ColumnRef {
	var unused []ColumnRef
	for _, ref := range st.Columns() {
		if ref.Record.Accesses == 0 {
			unused = append(unused, ref)
		}
	}
	return unused
}
