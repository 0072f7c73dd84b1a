// Package los loads line-of-sight test tables. The tests themselves are
// precomputed elsewhere; this package only maps CSV rows into typed records
// for display.
package los

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Test is one LOS test row: two player positions, the recorded visibility
// flag and a free-text description. Identity is row order in the table.
type Test struct {
	P1, P2      r3.Vec
	Raw         string // the los column exactly as written
	Description string
}

// Visible reports whether the row records line of sight. Only the literal
// string "TRUE" counts: the exporter writes upper-case literals, and
// lower-case or numeric variants indicate a file this tool was never
// calibrated against, so they read as blocked rather than guessed at.
func (t Test) Visible() bool {
	return t.Raw == "TRUE"
}

// SchemaError reports a table that violates the required column contract.
// Row is 1-based over data rows; 0 means the header itself is at fault.
type SchemaError struct {
	Column string
	Row    int
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("los: missing required column %q", e.Column)
	}
	return fmt.Sprintf("los: row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Required columns. Order in the file is unconstrained; extra columns are
// ignored.
var required = []string{
	"player 1 x", "player 1 y", "player 1 z",
	"player 2 x", "player 2 y", "player 2 z",
	"los", "Description",
}

// Load reads a LOS test CSV file.
func Load(path string) ([]Test, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("los: open %s: %w", path, err)
	}
	defer f.Close()

	tests, err := Read(f)
	if err != nil {
		return nil, err
	}
	return tests, nil
}

// Read parses a LOS test table from r. The first record is a header naming
// the columns; every required column must be present or the whole read
// fails with *SchemaError.
func Read(r io.Reader) ([]Test, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Column: required[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("los: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, &SchemaError{Column: name}
		}
	}

	var tests []Test
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return tests, nil
		}
		if err != nil {
			return nil, fmt.Errorf("los: row %d: %w", row, err)
		}

		t := Test{
			Raw:         field(rec, cols["los"]),
			Description: field(rec, cols["Description"]),
		}
		if t.P1, err = point(rec, cols, "player 1", row); err != nil {
			return nil, err
		}
		if t.P2, err = point(rec, cols, "player 2", row); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
}

func point(rec []string, cols map[string]int, player string, row int) (r3.Vec, error) {
	var p r3.Vec
	for _, axis := range []struct {
		name string
		dst  *float64
	}{
		{player + " x", &p.X},
		{player + " y", &p.Y},
		{player + " z", &p.Z},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(field(rec, cols[axis.name])), 64)
		if err != nil {
			return r3.Vec{}, &SchemaError{Column: axis.name, Row: row, Err: err}
		}
		*axis.dst = v
	}
	return p, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
