package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seatplan/render"
)

// Written describes one file produced by Export.
type Written struct {
	Format Format
	Path   string
	Size   int64
}

// writer writes t to path.
type writer func(ctx context.Context, path string, t *render.Table, cfg exportConfig) error

var writers = map[Format]writer{
	FormatExcel: writeExcel,
	FormatCSV:   writeCSV,
	FormatPNG:   writePNG,
}

// Export writes t once per format to base+extension.
//
// Stage 1 (Validate): non-nil table, at least one format.
// Stage 2 (Prepare): create the parent directory; drop unsupported formats
// with a warning.
// Stage 3 (Write): one goroutine per format; the first failure cancels the
// rest and is returned.
// Results follow the order of formats.
func Export(ctx context.Context, t *render.Table, formats []Format, base string, opts ...Option) ([]Written, error) {
	if t == nil {
		return nil, fmt.Errorf("Export: %w", ErrNilTable)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("Export: %s: %w", base, ErrNoFormats)
	}
	cfg := newExportConfig(opts...)

	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("Export: %w", err)
		}
	}

	var jobs []Written
	for _, f := range formats {
		ext, ok := f.Ext()
		if !ok {
			cfg.logger.Warn("skipping unsupported export format", "format", string(f), "base", base)
			continue
		}
		jobs = append(jobs, Written{Format: f, Path: base + ext})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("Export: %s: %w", job.Format, err)
			}
			if err := removeExisting(job.Path); err != nil {
				return fmt.Errorf("Export: %s: %w", job.Format, err)
			}
			if err := writers[job.Format](gctx, job.Path, t, cfg); err != nil {
				return fmt.Errorf("Export: %s: %w", job.Format, err)
			}
			info, err := os.Stat(job.Path)
			if err != nil {
				return fmt.Errorf("Export: %s: %w", job.Format, err)
			}
			job.Size = info.Size()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, w := range jobs {
		cfg.logger.Info("exported", "format", string(w.Format), "path", w.Path, "size", humanize.Bytes(uint64(w.Size)))
	}
	return jobs, nil
}

// removeExisting deletes path if it exists.
func removeExisting(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
