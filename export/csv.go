package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/katalvlaran/seatplan/render"
)

// utf8BOM prefixes every csv file.
const utf8BOM = "\ufeff"

// writeCSV writes t without a header row, prefixed by a UTF-8 BOM.
func writeCSV(_ context.Context, path string, t *render.Table, _ exportConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err = bw.WriteString(utf8BOM); err != nil {
		_ = f.Close()
		return err
	}
	cw := csv.NewWriter(bw)
	if err = cw.WriteAll(t.Records()); err != nil {
		_ = f.Close()
		return fmt.Errorf("csv: %w", err)
	}
	if err = bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
