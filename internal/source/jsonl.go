package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

const maxLineSize = 4 * 1024 * 1024

// ReadJSONL reads one JSON object per line. Each path is a gjson path that
// selects one column; with no paths the columns are the keys of the first
// object, in order. Blank lines are skipped.
func ReadJSONL(r io.Reader, paths []string) (Records, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var recs Records
	infer := len(paths) == 0
	if !infer {
		recs.Header = paths
	}
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return Records{}, fmt.Errorf("%w: line %d is not valid JSON", ErrInvalidRecord, n)
		}
		obj := gjson.Parse(line)
		if !obj.IsObject() {
			return Records{}, fmt.Errorf("%w: line %d is not an object", ErrInvalidRecord, n)
		}
		if infer {
			paths, recs.Header = objectKeys(obj)
			infer = false
		}

		row := make([]string, len(paths))
		for i, p := range paths {
			if v := obj.Get(p); v.Exists() {
				row[i] = v.String()
			}
		}
		recs.Rows = append(recs.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Records{}, fmt.Errorf("failed to read line %d: %w", n+1, err)
	}
	if len(recs.Header) == 0 {
		return Records{}, ErrEmpty
	}
	return recs, nil
}

// objectKeys returns the escaped gjson paths and the raw names of obj's keys
func objectKeys(obj gjson.Result) (paths, names []string) {
	obj.ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		paths = append(paths, gjson.Escape(key.String()))
		return true
	})
	return paths, names
}
