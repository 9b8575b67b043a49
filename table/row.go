package table

import "fmt"

// Row is an ordered list of cells
type Row []Cell

// NewRow returns a row of cells
func NewRow(cells ...Cell) Row {
	return Row(cells)
}

// Strings returns a row with one plain cell per value
func Strings(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Text(v)
	}
	return row
}

// Values returns a row with one plain cell per value, formatted with fmt
func Values(values ...any) Row {
	row := make(Row, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case Cell:
			row[i] = v
		case string:
			row[i] = Text(v)
		default:
			row[i] = Text(fmt.Sprint(v))
		}
	}
	return row
}

// Columns returns the number of columns the row covers
func (r Row) Columns() int {
	n := 0
	for _, c := range r {
		n += c.Span()
	}
	return n
}

// ToRow is implemented by values that know how to present themselves as a row
type ToRow interface {
	ToRow() Row
}

// Headed is implemented by row values that can also describe their columns
type Headed interface {
	Headers() Row
}

// FromRows builds a table from values. When the first value implements
// Headed its headers become the header row.
func FromRows[T ToRow](rows []T, opts Options, specs ...ColumnSpec) (*Table, error) {
	t := New(opts, specs...)
	if len(rows) == 0 {
		return t, nil
	}
	if h, ok := any(rows[0]).(Headed); ok {
		if err := t.AddHeader(h.Headers()); err != nil {
			return nil, fmt.Errorf("failed to add header: %w", err)
		}
	}
	for i, r := range rows {
		if err := t.AddRow(r.ToRow()); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}
