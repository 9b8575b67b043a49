package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/glebarez/sqlite"
)

// QuerySQLite runs query against the database file at path, opened read-only.
// The header is the result's column names; NULL values become empty cells.
func QuerySQLite(ctx context.Context, path, query string, args ...any) (Records, error) {
	// The driver would create a missing file.
	if _, err := os.Stat(path); err != nil {
		return Records{}, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return Records{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return Records{}, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Records{}, err
	}
	if len(cols) == 0 {
		return Records{}, ErrEmpty
	}

	recs := Records{Header: cols}
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return Records{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		recs.Rows = append(recs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Records{}, fmt.Errorf("query failed: %w", err)
	}
	return recs, nil
}

func dsn(path string) string {
	return "file:" + filepath.ToSlash(path) + "?mode=ro&_pragma=query_only(1)"
}
