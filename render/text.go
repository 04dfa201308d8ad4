package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText writes t as tab-aligned columns, one line per row.
func WriteText(w io.Writer, t *Table) error {
	if t == nil {
		return fmt.Errorf("WriteText: %w", ErrNilInput)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i := 0; i < t.r; i++ {
		if _, err := fmt.Fprintln(tw, strings.Join(t.data[i*t.c:(i+1)*t.c], "\t")); err != nil {
			return fmt.Errorf("WriteText: row %d: %w", i, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	return nil
}
