package render

import (
	"errors"
	"testing"
)

func TestNewTable(t *testing.T) {
	if _, err := NewTable(0, 3); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("NewTable(0,3): expected ErrShapeMismatch, got %v", err)
	}
	tbl, err := NewTable(2, 3)
	if err != nil {
		t.Fatalf("NewTable(2,3): %v", err)
	}
	if tbl.Rows() != 2 || tbl.Cols() != 3 {
		t.Errorf("shape: got %dx%d", tbl.Rows(), tbl.Cols())
	}
}

func TestTableAtSet(t *testing.T) {
	tbl, _ := NewTable(2, 2)
	if err := tbl.Set(1, 0, "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, err := tbl.At(1, 0); err != nil || v != "x" {
		t.Errorf("At(1,0): got %q, %v", v, err)
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		if _, err := tbl.At(rc[0], rc[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At%v: expected ErrOutOfRange, got %v", rc, err)
		}
		if err := tbl.Set(rc[0], rc[1], "y"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set%v: expected ErrOutOfRange, got %v", rc, err)
		}
	}
	if _, err := tbl.Row(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Row(2): expected ErrOutOfRange, got %v", err)
	}
}

// TestTableCopies verifies Row, Records and Clone never alias storage.
func TestTableCopies(t *testing.T) {
	tbl, err := FromRecords([][]string{{"a", "b"}, {"c", "d"}})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	row, _ := tbl.Row(0)
	row[0] = "z"
	recs := tbl.Records()
	recs[1][1] = "z"
	cl := tbl.Clone()
	_ = cl.Set(0, 1, "z")

	if got := tbl.String(); got != "[a, b]\n[c, d]\n" {
		t.Errorf("table mutated through a copy: %q", got)
	}
}

func TestFromRecordsRagged(t *testing.T) {
	if _, err := FromRecords([][]string{{"a", "b"}, {"c"}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("ragged: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := FromRecords(nil); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("nil: expected ErrShapeMismatch, got %v", err)
	}
}
