package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads delimited text. The first record is the header. Records may
// have a different field count than the header.
func ReadCSV(r io.Reader, comma rune) (Records, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var recs Records
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Records{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		if recs.Header == nil {
			recs.Header = rec
			continue
		}
		recs.Rows = append(recs.Rows, rec)
	}
	if recs.Header == nil {
		return Records{}, ErrEmpty
	}
	return recs, nil
}
