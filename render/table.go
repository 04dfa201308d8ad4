package render

import (
	"fmt"
	"strings"
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Table is a row-major matrix of strings.
// data holds r*c cells in row-major order.
type Table struct {
	r, c int
	data []string
}

// NewTable creates an r×c Table of empty strings.
// Returns ErrShapeMismatch if rows or cols is below 1.
// Complexity: O(r*c).
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewTable(%d,%d): %w", rows, cols, ErrShapeMismatch)
	}
	return &Table{r: rows, c: cols, data: make([]string, rows*cols)}, nil
}

// FromRecords copies records into a Table. Every record must have the same
// non-zero length.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("FromRecords: empty: %w", ErrShapeMismatch)
	}
	t, _ := NewTable(len(records), len(records[0]))
	for i, rec := range records {
		if len(rec) != t.c {
			return nil, fmt.Errorf("FromRecords: row %d has %d cells, want %d: %w", i, len(rec), t.c, ErrShapeMismatch)
		}
		copy(t.data[i*t.c:(i+1)*t.c], rec)
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.r }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.c }

func (t *Table) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, tableErrorf(method, row, col, ErrOutOfRange)
	}
	return row*t.c + col, nil
}

// At returns the cell at (row, col).
// Complexity: O(1).
func (t *Table) At(row, col int) (string, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		return "", err
	}
	return t.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (t *Table) Set(row, col int, v string) error {
	idx, err := t.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	t.data[idx] = v
	return nil
}

// Fill sets every cell to v.
func (t *Table) Fill(v string) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Row returns a copy of row i.
func (t *Table) Row(i int) ([]string, error) {
	if i < 0 || i >= t.r {
		return nil, tableErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]string, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])
	return out, nil
}

// Records returns a deep copy of the table as one slice per row, the shape
// encoding/csv and spreadsheet writers consume.
// Complexity: O(r*c).
func (t *Table) Records() [][]string {
	out := make([][]string, t.r)
	for i := range out {
		out[i] = make([]string, t.c)
		copy(out[i], t.data[i*t.c:(i+1)*t.c])
	}
	return out
}

// Clone returns a deep copy of the Table.
func (t *Table) Clone() *Table {
	data := make([]string, len(t.data))
	copy(data, t.data)
	return &Table{r: t.r, c: t.c, data: data}
}

// String renders one "[a, b, c]" line per row, for debugging.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.r; i++ {
		sb.WriteByte('[')
		sb.WriteString(strings.Join(t.data[i*t.c:(i+1)*t.c], ", "))
		sb.WriteString("]\n")
	}
	return sb.String()
}
