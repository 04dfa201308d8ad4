package roster

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// readSQLite scans (name, tag) rows from table in rowid order.
// table is validated by WithTable, so it is safe to interpolate.
func readSQLite(ctx context.Context, path, table string) ([][]string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	query := fmt.Sprintf(`SELECT name, tag FROM "%s" ORDER BY rowid`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query %s: %w", table, err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		var name, tag sql.NullString
		if err := rows.Scan(&name, &tag); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		records = append(records, []string{name.String, tag.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: rows: %w", err)
	}
	return records, nil
}
