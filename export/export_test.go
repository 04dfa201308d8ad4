package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/seatplan/export"
	"github.com/katalvlaran/seatplan/internal/logging"
	"github.com/katalvlaran/seatplan/render"
)

func sampleTable(t *testing.T) *render.Table {
	t.Helper()
	tbl, err := render.FromRecords([][]string{
		{"-", "Podium", "张三"},
		{"Ann", "Corridor", "Bo"},
		{"Cy", "Corridor", "-"},
	})
	require.NoError(t, err)
	return tbl
}

func TestParseFormats(t *testing.T) {
	assert.Equal(t,
		[]export.Format{export.FormatExcel, export.FormatCSV, export.FormatPNG, "pdf"},
		export.ParseFormats("Excel, csv,,png,csv, pdf"))
	assert.Empty(t, export.ParseFormats(" , "))

	ext, ok := export.FormatExcel.Ext()
	assert.True(t, ok)
	assert.Equal(t, ".xlsx", ext)
	assert.False(t, export.Format("pdf").Supported())
}

func TestExportAllFormats(t *testing.T) {
	tbl := sampleTable(t)
	base := filepath.Join(t.TempDir(), "nested", "arrangement_result")

	written, err := export.Export(context.Background(), tbl,
		[]export.Format{export.FormatExcel, export.FormatCSV, export.FormatPNG}, base)
	require.NoError(t, err)
	require.Len(t, written, 3)
	for i, ext := range []string{".xlsx", ".csv", ".png"} {
		assert.Equal(t, base+ext, written[i].Path)
		assert.Positive(t, written[i].Size)
	}

	// csv: BOM, no header, records intact.
	data, err := os.ReadFile(base + ".csv")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\ufeff")))
	recs, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff")))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, tbl.Records(), recs)

	// excel: first sheet holds the table from A1.
	f, err := excelize.OpenFile(base + ".xlsx")
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	assert.Equal(t, tbl.Records(), rows)

	// png: decodes with one column of cells per table column.
	pf, err := os.Open(base + ".png")
	require.NoError(t, err)
	defer pf.Close()
	img, err := png.Decode(pf)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 3*48)
}

func TestExportReplacesExisting(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(base+".csv", bytes.Repeat([]byte("x"), 4096), 0o600))

	written, err := export.Export(context.Background(), sampleTable(t), []export.Format{export.FormatCSV}, base)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Less(t, written[0].Size, int64(4096))
}

func TestExportSkipsUnknown(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.NewText(buf, slog.LevelDebug)
	base := filepath.Join(t.TempDir(), "out")

	written, err := export.Export(context.Background(), sampleTable(t),
		export.ParseFormats("pdf,csv"), base, export.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, export.FormatCSV, written[0].Format)
	assert.Contains(t, buf.String(), "skipping unsupported export format")
	assert.Contains(t, buf.String(), "format=pdf")
	assert.Contains(t, buf.String(), "msg=exported")
	assert.NoFileExists(t, base+".pdf")
}

func TestExportErrors(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")

	_, err := export.Export(context.Background(), nil, []export.Format{export.FormatCSV}, base)
	assert.ErrorIs(t, err, export.ErrNilTable)

	_, err = export.Export(context.Background(), sampleTable(t), nil, base)
	assert.ErrorIs(t, err, export.ErrNoFormats)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = export.Export(ctx, sampleTable(t), []export.Format{export.FormatCSV, export.FormatPNG}, base)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportPNGFonts(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "goregular.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o600))

	buf := &bytes.Buffer{}
	logger := logging.NewText(buf, slog.LevelDebug)
	_, err := export.Export(context.Background(), sampleTable(t), []export.Format{export.FormatPNG},
		filepath.Join(dir, "ttf"), export.WithFontPath(fontPath), export.WithFontSize(18), export.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "goregular.ttf")

	buf.Reset()
	_, err = export.Export(context.Background(), sampleTable(t), []export.Format{export.FormatPNG},
		filepath.Join(dir, "fallback"), export.WithFontPath(filepath.Join(dir, "missing.ttf")), export.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "font not found")
	assert.FileExists(t, filepath.Join(dir, "fallback.png"))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { export.WithFontSize(0) })
	assert.Panics(t, func() { export.WithSheetName("") })
}

func TestExcelSheetName(t *testing.T) {
	base := filepath.Join(t.TempDir(), "named")
	_, err := export.Export(context.Background(), sampleTable(t), []export.Format{export.FormatExcel}, base,
		export.WithSheetName("Seats"))
	require.NoError(t, err)

	f, err := excelize.OpenFile(base + ".xlsx")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Seats"}, f.GetSheetList())
}
