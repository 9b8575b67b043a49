// Package render assembles wrapped cells into bordered grid lines
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/young1lin/tabfit/internal/wrap"
)

var (
	// ErrColumnMismatch is returned when a row's spans do not add up to the column count
	ErrColumnMismatch = errors.New("row does not match column count")
	// ErrCellOverflow is returned when a line is wider than its cell
	ErrCellOverflow = errors.New("line wider than its cell")
	// ErrInvalidPadding is returned for negative padding
	ErrInvalidPadding = errors.New("padding must not be negative")
	// ErrUnknownStyle is returned for an unknown border style name
	ErrUnknownStyle = errors.New("unknown border style")
	// ErrUnknownAlign is returned for an unknown alignment name
	ErrUnknownAlign = errors.New("unknown alignment")
)

// Cell is the wrapped content of one table cell
type Cell struct {
	Lines []wrap.Line
	Align Align
	Span  int // columns covered; 0 means 1
}

func (c Cell) span() int {
	return max(c.Span, 1)
}

// Row is one table row
type Row []Cell

// Grid is a laid out table ready to be drawn
type Grid struct {
	Widths []int
	Header []Row
	Body   []Row
}

// Options control how the grid is drawn
type Options struct {
	Style   Style
	Padding int
	// HeaderSeparator draws a rule between the header and the body
	HeaderSeparator bool
	// RowSeparators draws a rule between every two rows
	RowSeparators bool
	TopBorder     bool
	BottomBorder  bool
}

// Gap is the width between the content of two adjacent columns
func (o Options) Gap() int {
	return o.Style.BorderWidth() + 2*o.Padding
}

// Overhead is the width a table of n columns spends on borders and padding
func (o Options) Overhead(n int) int {
	return (n+1)*o.Style.BorderWidth() + 2*o.Padding*n
}

// Assemble draws the grid. Every returned line has the same display width.
func Assemble(g Grid, opts Options) ([]string, error) {
	if opts.Padding < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPadding, opts.Padding)
	}
	rows := make([]Row, 0, len(g.Header)+len(g.Body))
	rows = append(rows, g.Header...)
	rows = append(rows, g.Body...)
	if len(rows) == 0 {
		return nil, nil
	}
	a := assembler{widths: g.Widths, opts: opts}
	for i, row := range rows {
		if err := a.check(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	var lines []string
	if opts.TopBorder {
		lines = a.rule(lines, nil, rows[0])
	}
	for i, row := range rows {
		if i > 0 {
			separate := opts.RowSeparators || (opts.HeaderSeparator && i == len(g.Header))
			if separate {
				lines = a.rule(lines, rows[i-1], row)
			}
		}
		lines = a.content(lines, row)
	}
	if opts.BottomBorder {
		lines = a.rule(lines, rows[len(rows)-1], nil)
	}
	return lines, nil
}

type assembler struct {
	widths []int
	opts   Options
}

// check verifies that row covers every column and that its lines fit
func (a assembler) check(row Row) error {
	covered := 0
	for _, c := range row {
		covered += c.span()
	}
	if covered != len(a.widths) {
		return fmt.Errorf("%w: covers %d of %d columns", ErrColumnMismatch, covered, len(a.widths))
	}

	col := 0
	for _, c := range row {
		w := a.cellWidth(col, c.span())
		for _, l := range c.Lines {
			if l.Width > w {
				return fmt.Errorf("%w: %q is %d wide, cell is %d", ErrCellOverflow, l.Text, l.Width, w)
			}
		}
		col += c.span()
	}
	return nil
}

// cellWidth is the content width of a cell spanning n columns from start
func (a assembler) cellWidth(start, n int) int {
	w := (n - 1) * a.opts.Gap()
	for _, cw := range a.widths[start : start+n] {
		w += cw
	}
	return w
}

// content appends the text lines of one row
func (a assembler) content(lines []string, row Row) []string {
	height := 0
	for _, c := range row {
		height = max(height, len(c.Lines))
	}
	height = max(height, 1)

	pad := strings.Repeat(" ", a.opts.Padding)
	for i := 0; i < height; i++ {
		var b strings.Builder
		b.WriteString(a.opts.Style.Vertical)
		col := 0
		for _, c := range row {
			w := a.cellWidth(col, c.span())
			var l wrap.Line
			if i < len(c.Lines) {
				l = c.Lines[i]
			}
			b.WriteString(pad)
			b.WriteString(Pad(l, w, c.Align))
			b.WriteString(pad)
			b.WriteString(a.opts.Style.Vertical)
			col += c.span()
		}
		lines = append(lines, b.String())
	}
	return lines
}

// rule appends a horizontal rule between above and below. Either may be
// nil for the top and bottom borders.
func (a assembler) rule(lines []string, above, below Row) []string {
	s := a.opts.Style
	if !s.ruled() {
		return lines
	}
	up, down := boundaries(above), boundaries(below)

	left, right := s.LeftJoin, s.RightJoin
	switch {
	case above == nil:
		left, right = s.TopLeft, s.TopRight
	case below == nil:
		left, right = s.BottomLeft, s.BottomRight
	}

	var b strings.Builder
	b.WriteString(left)
	for i, w := range a.widths {
		b.WriteString(strings.Repeat(s.Horizontal, w+2*a.opts.Padding))
		if i == len(a.widths)-1 {
			break
		}
		switch {
		case up[i] && down[i]:
			b.WriteString(s.Cross)
		case up[i]:
			b.WriteString(s.BottomJoin)
		case down[i]:
			b.WriteString(s.TopJoin)
		default:
			b.WriteString(strings.Repeat(s.Horizontal, s.BorderWidth()))
		}
	}
	b.WriteString(right)
	return append(lines, b.String())
}

// boundaries marks every column that is followed by a cell border in row
func boundaries(row Row) map[int]bool {
	out := make(map[int]bool, len(row))
	col := 0
	for _, c := range row {
		col += c.span()
		out[col-1] = true
	}
	return out
}
