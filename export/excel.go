package export

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/seatplan/render"
)

// minColWidth is the narrowest excel column, in character units.
const minColWidth = 8

// writeExcel writes t into the first worksheet starting at A1, no header.
// Column widths follow the longest cell of each column.
func writeExcel(_ context.Context, path string, t *render.Table, cfg exportConfig) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if first := f.GetSheetName(0); first != cfg.sheet {
		if err := f.SetSheetName(first, cfg.sheet); err != nil {
			return fmt.Errorf("excel: %w", err)
		}
	}

	widths := make([]int, t.Cols())
	for i, rec := range t.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excel: %w", err)
		}
		if err = f.SetSheetRow(cfg.sheet, cell, &rec); err != nil {
			return fmt.Errorf("excel: row %d: %w", i+1, err)
		}
		for j, v := range rec {
			widths[j] = max(widths[j], utf8.RuneCountInString(v))
		}
	}
	for j, w := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("excel: %w", err)
		}
		if err = f.SetColWidth(cfg.sheet, col, col, float64(max(w+2, minColWidth))); err != nil {
			return fmt.Errorf("excel: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: %w", err)
	}
	return nil
}
