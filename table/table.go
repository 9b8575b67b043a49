// Package table lays out rows of text as a bordered grid that fits a
// terminal width. Cell text is wrapped at Unicode line break opportunities
// and measured in display columns, so wide and combining characters and
// styled spans line up.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/young1lin/tabfit/internal/layout"
	"github.com/young1lin/tabfit/internal/render"
	"github.com/young1lin/tabfit/internal/wrap"
)

var (
	// ErrInvalidWidth is returned when the requested width is not positive
	ErrInvalidWidth = errors.New("width must be positive")
	// ErrColumnCount is returned when a row does not cover every column
	ErrColumnCount = errors.New("row does not match the table's column count")
	// ErrInvalidSpan is returned for a cell spanning fewer than one column
	ErrInvalidSpan = errors.New("cell span must be at least 1")
	// ErrMultilineFragment is returned when a fixed fragment holds more
	// than one line
	ErrMultilineFragment = wrap.ErrMultilineFragment
)

// BorderStyle is the set of glyphs borders are drawn with
type BorderStyle = render.Style

// Built-in border styles
var (
	Simple   = render.Simple
	Extended = render.Extended
	Thin     = render.Thin
	Rounded  = render.Rounded
	Elegant  = render.Elegant
	Empty    = render.Empty
	Blank    = render.Blank
)

// ParseBorderStyle returns the built-in style with the given name
func ParseBorderStyle(name string) (BorderStyle, error) {
	return render.ParseStyle(name)
}

// BorderStyles lists the names of the built-in styles
func BorderStyles() []string {
	return render.Styles()
}

// ColumnSpec constrains one column
type ColumnSpec struct {
	// Width fixes the column width. It is raised to fit unbreakable content.
	Width    int
	MinWidth int
	// MaxWidth stops the column growing past this width, content permitting
	MaxWidth int
	Align    Align
	// NoGrow keeps the column at its minimum width
	NoGrow bool
}

// Options control table rendering
type Options struct {
	BorderStyle     BorderStyle
	Padding         int
	DefaultAlign    Align
	HeaderSeparator bool
	SeparateRows    bool
	TopBorder       bool
	BottomBorder    bool
	// Stretch widens growable columns until the table fills the width
	Stretch bool
	// Logger receives overflow warnings; the standard logger when nil
	Logger logrus.FieldLogger
}

// DefaultOptions returns double-line borders, one space of padding and a
// rule under the header
func DefaultOptions() Options {
	return Options{
		BorderStyle:     Extended,
		Padding:         1,
		DefaultAlign:    AlignLeft,
		HeaderSeparator: true,
		TopBorder:       true,
		BottomBorder:    true,
	}
}

// Table is a set of header and body rows. Adding rows is not safe for
// concurrent use; rendering a table nobody is modifying is.
type Table struct {
	opts    Options
	specs   []ColumnSpec
	columns int
	header  []Row
	body    []Row
}

// New returns an empty table. When specs are given they fix the column count.
func New(opts Options, specs ...ColumnSpec) *Table {
	return &Table{opts: opts, specs: specs, columns: len(specs)}
}

// Columns returns the column count, 0 until it is known
func (t *Table) Columns() int {
	return t.columns
}

// Len returns the number of header and body rows
func (t *Table) Len() int {
	return len(t.header) + len(t.body)
}

// AddHeader appends a header row
func (t *Table) AddHeader(r Row) error {
	if err := t.accept(r); err != nil {
		return err
	}
	t.header = append(t.header, r)
	return nil
}

// AddRow appends a body row
func (t *Table) AddRow(r Row) error {
	if err := t.accept(r); err != nil {
		return err
	}
	t.body = append(t.body, r)
	return nil
}

func (t *Table) accept(r Row) error {
	for i, c := range r {
		if c.Span() < 1 {
			return fmt.Errorf("%w: cell %d spans %d", ErrInvalidSpan, i, c.Span())
		}
	}
	n := r.Columns()
	if t.columns == 0 {
		t.columns = n
	}
	if n == 0 || n != t.columns {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, n, t.columns)
	}
	return nil
}

// Output is a rendered table
type Output struct {
	Lines []string
	// Widths holds the content width of every column
	Widths []int
	// Width is the display width of every line
	Width int
	// Overflow is how far Width exceeds the requested width
	Overflow int
}

// String joins the lines with newlines
func (o *Output) String() string {
	return strings.Join(o.Lines, "\n")
}

// Render lays the table out to fit in width columns. When even the
// narrowest layout is wider, the table is rendered anyway and the excess
// is reported in Output.Overflow.
func (t *Table) Render(width int) (*Output, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if t.Len() == 0 {
		return &Output{}, nil
	}

	req, err := t.request(width)
	if err != nil {
		return nil, err
	}
	res, err := layout.Resolve(req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve column widths: %w", err)
	}
	if res.Overflow > 0 {
		t.logger().WithFields(logrus.Fields{
			"budget":   width,
			"width":    res.Total,
			"overflow": res.Overflow,
		}).Warn("table is wider than the requested width")
	}
	return t.draw(res)
}

// RenderNatural renders every column at its natural width
func (t *Table) RenderNatural() (*Output, error) {
	if t.Len() == 0 {
		return &Output{}, nil
	}
	req, err := t.request(0)
	if err != nil {
		return nil, err
	}
	res, err := layout.Natural(req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve column widths: %w", err)
	}
	return t.draw(res)
}

func (t *Table) logger() logrus.FieldLogger {
	if t.opts.Logger != nil {
		return t.opts.Logger
	}
	return logrus.StandardLogger()
}

func (t *Table) renderOptions() render.Options {
	return render.Options{
		Style:           t.opts.BorderStyle,
		Padding:         t.opts.Padding,
		HeaderSeparator: t.opts.HeaderSeparator,
		RowSeparators:   t.opts.SeparateRows,
		TopBorder:       t.opts.TopBorder,
		BottomBorder:    t.opts.BottomBorder,
	}
}

func (t *Table) spec(col int) ColumnSpec {
	if col < len(t.specs) {
		return t.specs[col]
	}
	return ColumnSpec{}
}

// request measures every cell and builds the layout input
func (t *Table) request(budget int) (layout.Request, error) {
	if t.opts.Padding < 0 {
		return layout.Request{}, fmt.Errorf("%w: %d", render.ErrInvalidPadding, t.opts.Padding)
	}
	ropts := t.renderOptions()
	cols := make([]layout.Column, t.columns)
	for i := range cols {
		s := t.spec(i)
		if s.Width < 0 || s.MinWidth < 0 || s.MaxWidth < 0 {
			return layout.Request{}, fmt.Errorf("%w: column %d", layout.ErrInvalidColumn, i)
		}
		cols[i] = layout.Column{Min: s.MinWidth, Fixed: s.Width, Max: s.MaxWidth, Grow: !s.NoGrow}
	}

	// a column whose cells all carry a max width is capped at the largest
	capped := make([]bool, t.columns)
	cellMax := make([]int, t.columns)
	for i := range capped {
		capped[i] = true
	}

	var spans []layout.Span
	for _, row := range t.rows() {
		col := 0
		for _, c := range row {
			floor, natural := c.measure()
			if c.Span() == 1 {
				cols[col].Min = max(cols[col].Min, floor)
				cols[col].Natural = max(cols[col].Natural, natural)
				if c.maxWidth > 0 {
					cellMax[col] = max(cellMax[col], c.maxWidth)
				} else {
					capped[col] = false
				}
			} else {
				spans = append(spans, layout.Span{Start: col, Count: c.Span(), Min: floor, Natural: natural})
			}
			col += c.Span()
		}
	}

	for i := range cols {
		if capped[i] && cellMax[i] > 0 && (cols[i].Max == 0 || cellMax[i] < cols[i].Max) {
			cols[i].Max = cellMax[i]
		}
	}

	return layout.Request{
		Columns:  cols,
		Spans:    spans,
		Budget:   budget,
		Overhead: ropts.Overhead(t.columns),
		Gap:      ropts.Gap(),
		Stretch:  t.opts.Stretch,
	}, nil
}

func (t *Table) rows() []Row {
	rows := make([]Row, 0, t.Len())
	rows = append(rows, t.header...)
	return append(rows, t.body...)
}

// draw wraps every cell to its resolved width and assembles the grid
func (t *Table) draw(res layout.Result) (*Output, error) {
	ropts := t.renderOptions()
	grid := render.Grid{Widths: res.Widths}
	var err error
	if grid.Header, err = t.wrapRows(t.header, res.Widths, ropts.Gap()); err != nil {
		return nil, err
	}
	if grid.Body, err = t.wrapRows(t.body, res.Widths, ropts.Gap()); err != nil {
		return nil, err
	}

	lines, err := render.Assemble(grid, ropts)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble table: %w", err)
	}
	return &Output{
		Lines:    lines,
		Widths:   res.Widths,
		Width:    res.Total,
		Overflow: res.Overflow,
	}, nil
}

func (t *Table) wrapRows(rows []Row, widths []int, gap int) ([]render.Row, error) {
	out := make([]render.Row, len(rows))
	for r, row := range rows {
		cells := make(render.Row, len(row))
		col := 0
		for i, c := range row {
			w := (c.Span() - 1) * gap
			for _, cw := range widths[col : col+c.Span()] {
				w += cw
			}
			// a zero-width column only holds content that occupies no columns
			lines, err := wrap.Fragments(c.fragments, max(w, 1))
			if err != nil {
				return nil, fmt.Errorf("failed to wrap cell %d: %w", i, err)
			}
			cells[i] = render.Cell{Lines: lines, Align: t.align(c, col), Span: c.Span()}
			col += c.Span()
		}
		out[r] = cells
	}
	return out, nil
}

// align picks the cell's alignment, then its column's, then the table default
func (t *Table) align(c Cell, col int) Align {
	if c.align != AlignDefault {
		return c.align
	}
	if a := t.spec(col).Align; a != AlignDefault {
		return a
	}
	return t.opts.DefaultAlign
}
