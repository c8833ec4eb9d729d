package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"simple-sql/resolver"
	"simple-sql/sql"
	"strings"
	"text/tabwriter"
)

func main() {
	s := newSession()
	if len(os.Args) > 1 {
		if err := s.loadFile(os.Args[1], os.Stdout); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}

	fmt.Println("hello, type statements to analyze:")
	fmt.Println("'quit' or 'exit' to stop")
	fmt.Println("'show' to print the symbol table, 'stats' for hot and unused columns")
	fmt.Println("'reset' to start over with an empty symbol table")
	fmt.Println("'dump <filename>' to dump the symbol table to <filename>")
	fmt.Println("'load <filename>' to analyze the script in <filename>")
	fmt.Println("or type <sql statements> to analyze")

	run(s, os.Stdin, os.Stdout)
}

type session struct {
	r *resolver.Resolver
}

func newSession() *session {
	return &session{r: resolver.New()}
}

func run(s *session, in io.Reader, out io.Writer) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if quit := handleLine(s, strings.TrimSpace(line), out); quit {
			return
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(out, err)
			}
			return
		}
	}
}

func handleLine(s *session, line string, out io.Writer) bool {
	if line == "" {
		return false
	} else if line == "quit" || line == "exit" {
		fmt.Fprintln(out, "auf wiedersehen!")
		return true
	} else if line == "show" {
		printSymbols(out, s.r.Symbols())
	} else if line == "stats" {
		printStats(out, s.r.Symbols())
	} else if line == "reset" {
		s.r = resolver.New()
		fmt.Fprintln(out, "symbol table cleared")
	} else if ok, fileName := hasPrefixAndTrim(line, "dump "); ok {
		if err := dumpToFile(s.r.Symbols(), fileName); err != nil {
			fmt.Fprintln(out, err)
		} else {
			fmt.Fprintf(out, "symbol table wrote to %q\n", fileName)
		}
	} else if ok, fileName := hasPrefixAndTrim(line, "load "); ok {
		if err := s.loadFile(fileName, out); err != nil {
			fmt.Fprintf(out, "failed to load file %q: %v. Current symbol table is not changed\n", fileName, err)
		}
	} else if err := s.handleSql(line, out); err != nil {
		fmt.Fprintln(out, "error:", err)
	}
	return false
}

// handleSql resolves the statements of one input line into the session,
// stopping at the first one that fails.
func (s *session) handleSql(src string, out io.Writer) error {
	// a trailing comment needs its newline back
	script, err := sql.ParseString(src + "\n")
	if err != nil {
		return fmt.Errorf("error parsing sql: %w", err)
	}

	for _, stmt := range script.Statements {
		if err := s.r.Resolve(stmt); err != nil {
			return fmt.Errorf("statement error: %w", err)
		}
		fmt.Fprintln(out, "ok")
	}
	return nil
}

// loadFile resolves a whole script file on a copy of the session's table and
// only keeps the result if every statement succeeded.
func (s *session) loadFile(fileName string, out io.Writer) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("error reading the file: %w", err)
	}

	script, err := sql.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("error parsing sql: %w", err)
	}

	next := s.r.Clone()
	for _, stmt := range script.Statements {
		if err := next.Resolve(stmt); err != nil {
			return fmt.Errorf("statement error: %w", err)
		}
	}

	s.r = next
	fmt.Fprintf(out, "loaded %d statements from %q\n", len(script.Statements), fileName)
	return nil
}

func printSymbols(out io.Writer, st resolver.SymbolTable) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "table\tcolumn\ttype\tsize\taccesses")
	cols := st.Columns()
	for _, ref := range cols {
		size := "-"
		if ref.Record.Size != nil {
			size = fmt.Sprint(*ref.Record.Size)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", ref.Table, ref.Column, ref.Record.Type, size, ref.Record.Accesses)
	}
	w.Flush()
	fmt.Fprintf(out, "%d columns found\n", len(cols))
}

func printStats(out io.Writer, st resolver.SymbolTable) {
	fmt.Fprintln(out, "hot columns:")
	for _, ref := range resolver.HotColumns(st) {
		fmt.Fprintf(out, "\t%s.%s (%d)\n", ref.Table, ref.Column, ref.Record.Accesses)
	}
	fmt.Fprintln(out, "unused columns:")
	for _, ref := range resolver.UnusedColumns(st) {
		fmt.Fprintf(out, "\t%s.%s\n", ref.Table, ref.Column)
	}
}

func hasPrefixAndTrim(s string, prefix string) (bool, string) {
	if strings.HasPrefix(s, prefix) {
		return true, strings.TrimPrefix(s, prefix)
	}
	return false, s
}

func dumpToFile(st resolver.SymbolTable, fileName string) error {
	if fileName == "" {
		return fmt.Errorf("please provide file name for 'dump' command")
	}
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("error writing a file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("error writing to file %v: %w", fileName, err)
	}
	return nil
}
