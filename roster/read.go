package roster

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Read loads a roster from path, dispatching on the file extension:
//
//	.csv                    comma separated
//	.txt                    whitespace separated
//	.xlsx, .xlsm            first worksheet
//	.db, .sqlite, .sqlite3  SELECT name, tag FROM <table>
//
// Returns ErrInputNotFound when path does not exist and ErrUnsupportedInput
// for any other extension. ctx bounds the SQLite query only.
func Read(ctx context.Context, path string, opts ...ReadOption) (*Roster, error) {
	cfg := newReadConfig(opts...)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("Read(%s): %w", path, ErrInputNotFound)
		}
		return nil, fmt.Errorf("Read(%s): %w", path, err)
	}

	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = readCSV(path)
	case ".txt":
		records, err = readTXT(path)
	case ".xlsx", ".xlsm":
		records, err = readXLSX(path)
	case ".db", ".sqlite", ".sqlite3":
		// Rows from SQL carry no header row.
		cfg.header = false
		records, err = readSQLite(ctx, path, cfg.table)
	default:
		return nil, fmt.Errorf("Read(%s): extension %q: %w", path, ext, ErrUnsupportedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", path, err)
	}

	r, err := fromRecords(records, cfg)
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", path, err)
	}
	return r, nil
}

// fromRecords turns raw rows into a Roster. Blank rows are skipped; the
// header row (if configured) is dropped before blank-row filtering so a
// file with an empty first line still loses exactly one header.
func fromRecords(records [][]string, cfg readConfig) (*Roster, error) {
	if cfg.header && len(records) > 0 {
		records = records[1:]
	}
	list := make([]Entity, 0, len(records))
	for line, rec := range records {
		if blankRecord(rec) {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: %w", line+1, ErrMalformedRow)
		}
		name := strings.TrimSpace(rec[0])
		raw := strings.TrimSpace(rec[1])
		tag := Tag(raw)
		if cfg.normalize {
			tag = NormalizeTag(raw)
		}
		list = append(list, Entity{ID: len(list) + 1, Name: name, Tag: tag})
	}

	return New(list)
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
