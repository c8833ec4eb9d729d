package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simple-sql/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLines(t *testing.T, s *session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	run(s, strings.NewReader(strings.Join(lines, "\n")), &out)
	return out.String()
}

func TestRepl(t *testing.T) {
	t.Run("statements are resolved into the session", func(t *testing.T) {
		s := newSession()
		out := runLines(t, s,
			"CREATE TABLE T (A int, B varchar(10));",
			"SELECT A FROM T; SELECT * FROM T; -- both",
			"",
			"show",
		)

		assert.Equal(t, 3, strings.Count(out, "ok\n"))
		assert.Contains(t, out, "2 columns found")
		assert.Equal(t, 2, s.r.Symbols()["T"]["A"].Accesses)
		assert.Equal(t, 1, s.r.Symbols()["T"]["B"].Accesses)
	})

	t.Run("errors are printed and the loop goes on", func(t *testing.T) {
		s := newSession()
		out := runLines(t, s,
			"SELECT X FROM Y;",
			"SELECT FROM",
			"CREATE TABLE T (A int);",
		)

		assert.Contains(t, out, `error: statement error: 1:15: undeclared table "Y"`)
		assert.Contains(t, out, "error: error parsing sql:")
		assert.Contains(t, s.r.Symbols(), "T")
	})

	t.Run("quit stops reading", func(t *testing.T) {
		s := newSession()
		out := runLines(t, s, "quit", "CREATE TABLE T (A int);")

		assert.Contains(t, out, "auf wiedersehen!")
		assert.Empty(t, s.r.Symbols())
	})

	t.Run("reset", func(t *testing.T) {
		s := newSession()
		runLines(t, s, "CREATE TABLE T (A int);", "reset")
		assert.Empty(t, s.r.Symbols())
	})

	t.Run("stats", func(t *testing.T) {
		s := newSession()
		out := runLines(t, s,
			"CREATE TABLE T (A int, B int, C int);",
			"SELECT A FROM T; SELECT A, B FROM T;",
			"stats",
		)
		assert.Contains(t, out, "hot columns:\n\tT.A (2)\nunused columns:\n\tT.C\n")
	})
}

func TestReplFiles(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.sql")
	require.NoError(t, os.WriteFile(script, []byte("CREATE TABLE T (A int);\nSELECT * FROM T;\n"), 0o644))

	t.Run("load and dump", func(t *testing.T) {
		s := newSession()
		dump := filepath.Join(dir, "dump.json")
		out := runLines(t, s, "load "+script, "dump "+dump)

		assert.Contains(t, out, "loaded 2 statements")
		data, err := os.ReadFile(dump)
		require.NoError(t, err)

		var st resolver.SymbolTable
		require.NoError(t, json.Unmarshal(data, &st))
		assert.Equal(t, resolver.SymbolTable{
			"T": resolver.Table{"A": {Type: "int", Accesses: 1, Lines: []int{2}}},
		}, st)
	})

	t.Run("failed load keeps the session", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.sql")
		require.NoError(t, os.WriteFile(bad, []byte("SELECT * FROM T;\nSELECT Z FROM T;\n"), 0o644))

		s := newSession()
		out := runLines(t, s, "CREATE TABLE T (A int);", "load "+bad)

		assert.Contains(t, out, "Current symbol table is not changed")
		assert.Equal(t, 0, s.r.Symbols()["T"]["A"].Accesses)
	})

	t.Run("missing file", func(t *testing.T) {
		s := newSession()
		out := runLines(t, s, "load "+filepath.Join(dir, "nope.sql"))
		assert.Contains(t, out, "error reading the file")
	})

	t.Run("dump without file name", func(t *testing.T) {
		assert.Error(t, dumpToFile(resolver.SymbolTable{}, ""))
	})
}
