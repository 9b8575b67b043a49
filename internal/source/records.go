// Package source reads tabular records from CSV, JSON Lines and SQLite
package source

import (
	"errors"
	"fmt"

	"github.com/young1lin/tabfit/table"
)

var (
	// ErrEmpty is returned when a source has no header
	ErrEmpty = errors.New("source has no records")
	// ErrInvalidRecord is returned for a record that cannot be read
	ErrInvalidRecord = errors.New("invalid record")
)

// Records is a header plus data rows of plain text cells
type Records struct {
	Header []string
	Rows   [][]string
}

// Table builds a table with the header row followed by the data rows. The
// table is as wide as the longest row: the header and shorter rows are
// padded with empty cells.
func (r Records) Table(opts table.Options, specs ...table.ColumnSpec) (*table.Table, error) {
	if len(r.Header) == 0 {
		return nil, ErrEmpty
	}
	n := len(r.Header)
	for _, row := range r.Rows {
		n = max(n, len(row))
	}
	t := table.New(opts, specs...)
	if err := t.AddHeader(table.Strings(fit(r.Header, n)...)); err != nil {
		return nil, err
	}
	for i, row := range r.Rows {
		if err := t.AddRow(table.Strings(fit(row, n)...)); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return t, nil
}

func fit(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
