package los

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `player 1 x,player 1 y,player 1 z,player 2 x,player 2 y,player 2 z,los,Description
0,0,0,10,0,0,TRUE,mid doors
100,-50,25.5,200,60,-10,FALSE,cross from pit
`

func TestRead(t *testing.T) {
	tests, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tests) != 2 {
		t.Fatalf("got %d rows, want 2", len(tests))
	}

	first := tests[0]
	if first.P1.X != 0 || first.P2.X != 10 {
		t.Errorf("row 1 positions = %v -> %v", first.P1, first.P2)
	}
	if !first.Visible() {
		t.Error("row 1 should be visible")
	}
	if first.Description != "mid doors" {
		t.Errorf("row 1 description = %q", first.Description)
	}

	second := tests[1]
	if second.Visible() {
		t.Error("row 2 should be blocked")
	}
	if second.P1.Z != 25.5 || second.P2.Y != 60 {
		t.Errorf("row 2 positions = %v -> %v", second.P1, second.P2)
	}
}

func TestReadColumnOrderUnconstrained(t *testing.T) {
	// Shuffled columns plus an extra one that must be ignored.
	csv := `Description,los,extra,player 2 z,player 2 y,player 2 x,player 1 z,player 1 y,player 1 x
valve test,TRUE,junk,6,5,4,3,2,1
`
	tests, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tests) != 1 {
		t.Fatalf("got %d rows, want 1", len(tests))
	}
	got := tests[0]
	if got.P1.X != 1 || got.P1.Y != 2 || got.P1.Z != 3 {
		t.Errorf("P1 = %v, want (1, 2, 3)", got.P1)
	}
	if got.P2.X != 4 || got.P2.Y != 5 || got.P2.Z != 6 {
		t.Errorf("P2 = %v, want (4, 5, 6)", got.P2)
	}
}

func TestReadMissingColumn(t *testing.T) {
	csv := `player 1 x,player 1 y,player 1 z,player 2 x,player 2 y,player 2 z,Description
0,0,0,1,1,1,no los column
`
	_, err := Read(strings.NewReader(csv))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v (%T), want *SchemaError", err, err)
	}
	if schemaErr.Column != "los" {
		t.Errorf("Column = %q, want \"los\"", schemaErr.Column)
	}
	if schemaErr.Row != 0 {
		t.Errorf("Row = %d, want 0 for header fault", schemaErr.Row)
	}
}

func TestReadBadNumber(t *testing.T) {
	csv := `player 1 x,player 1 y,player 1 z,player 2 x,player 2 y,player 2 z,los,Description
0,0,0,abc,1,1,TRUE,broken row
`
	_, err := Read(strings.NewReader(csv))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v (%T), want *SchemaError", err, err)
	}
	if schemaErr.Column != "player 2 x" {
		t.Errorf("Column = %q, want \"player 2 x\"", schemaErr.Column)
	}
	if schemaErr.Row != 1 {
		t.Errorf("Row = %d, want 1", schemaErr.Row)
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v (%T), want *SchemaError for missing header", err, err)
	}
}

func TestVisibleExactMatch(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"TRUE", true},
		{"FALSE", false},
		{"true", false},
		{"True", false},
		{"1", false},
		{"", false},
		{" TRUE", false},
	}
	for _, tc := range tests {
		if got := (Test{Raw: tc.raw}).Visible(); got != tc.want {
			t.Errorf("Visible(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "los-tests.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	tests, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tests) != 2 {
		t.Fatalf("got %d rows, want 2", len(tests))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
