package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refNames(refs []ColumnRef) []string {
	var out []string
	for _, ref := range refs {
		out = append(out, ref.Table+"."+ref.Column)
	}
	return out
}

func TestStats(t *testing.T) {
	st, err := Analyze(`CREATE TABLE T (A int, B int, C int);
		CREATE TABLE S (X int, Y int);
		SELECT A, B FROM T;
		SELECT A FROM T;
		SELECT X FROM S;
		SELECT X FROM S;
	`)
	require.NoError(t, err)

	t.Run("columns are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"S.X", "S.Y", "T.A", "T.B", "T.C"}, refNames(st.Columns()))
	})

	t.Run("hot columns are above the mean", func(t *testing.T) {
		// 5 accesses over 5 columns
		assert.Equal(t, []string{"S.X", "T.A"}, refNames(HotColumns(st)))
	})

	t.Run("unused columns", func(t *testing.T) {
		assert.Equal(t, []string{"S.Y", "T.C"}, refNames(UnusedColumns(st)))
	})

	t.Run("empty table", func(t *testing.T) {
		assert.Empty(t, HotColumns(SymbolTable{}))
		assert.Empty(t, UnusedColumns(SymbolTable{}))
	})

	t.Run("nothing is hot when all are equal", func(t *testing.T) {
		st, err := Analyze("CREATE TABLE T (A int, B int); SELECT * FROM T;")
		require.NoError(t, err)
		assert.Empty(t, HotColumns(st))
	})
}
