package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tabfit/internal/linebreak"
	"github.com/young1lin/tabfit/internal/render"
	"github.com/young1lin/tabfit/internal/width"
	"github.com/young1lin/tabfit/internal/wrap"
)

// Fragment is a piece of cell text. Fragments with Fixed set are pre-styled
// spans measured by their declared Width and never split across lines.
type Fragment = wrap.Fragment

// Align is the horizontal alignment of a cell
type Align = render.Align

const (
	AlignDefault = render.AlignDefault
	AlignLeft    = render.AlignLeft
	AlignCenter  = render.AlignCenter
	AlignRight   = render.AlignRight
)

// ParseAlign converts "left", "center" or "right" to an Align
func ParseAlign(s string) (Align, error) {
	return render.ParseAlign(s)
}

// Plain returns an unstyled fragment
func Plain(text string) Fragment {
	return Fragment{Text: text}
}

// Sized returns a fragment that occupies exactly w columns whatever its text.
// The text must be a single line; rendering a cell whose sized fragment
// holds a line break fails with ErrMultilineFragment.
func Sized(text string, w int) Fragment {
	return Fragment{Text: text, Width: max(w, 0), Fixed: true}
}

// Cell is the content of one table cell. Cells are values; the With
// methods return modified copies.
type Cell struct {
	fragments []Fragment
	align     Align
	extra     int // columns covered beyond the first
	minWidth  int
	maxWidth  int
}

// Text returns a cell holding plain text
func Text(s string) Cell {
	return NewCell(Plain(s))
}

// NewCell returns a cell made of fragments
func NewCell(frags ...Fragment) Cell {
	return Cell{fragments: frags}
}

// Styled returns a cell whose text is rendered with style. The text still
// wraps at its break opportunities; each piece is styled on its own.
func Styled(style lipgloss.Style, text string) Cell {
	var frags []Fragment
	for _, seg := range linebreak.Segments(text) {
		body := strings.TrimRightFunc(seg, isSpace)
		if body != "" {
			r := style.Render(body)
			frags = append(frags, Fragment{Text: r, Width: width.String(r), Fixed: true})
		}
		if tail := seg[len(body):]; tail != "" {
			frags = append(frags, Plain(tail))
		}
	}
	return NewCell(frags...)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// WithAlign sets the alignment
func (c Cell) WithAlign(a Align) Cell {
	c.align = a
	return c
}

// WithSpan makes the cell cover n adjacent columns
func (c Cell) WithSpan(n int) Cell {
	c.extra = n - 1
	return c
}

// WithMinWidth keeps the cell's columns at least w wide
func (c Cell) WithMinWidth(w int) Cell {
	c.minWidth = w
	return c
}

// WithMaxWidth limits how wide the cell asks its columns to grow.
// It never cuts content: unbreakable text still sets the minimum.
func (c Cell) WithMaxWidth(w int) Cell {
	c.maxWidth = w
	return c
}

// Span returns the number of columns the cell covers
func (c Cell) Span() int {
	return c.extra + 1
}

// Fragments returns the cell's content
func (c Cell) Fragments() []Fragment {
	return c.fragments
}

// String returns the cell's text without any width information
func (c Cell) String() string {
	var b strings.Builder
	for _, f := range c.fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// measure returns the floor and natural width the cell asks for
func (c Cell) measure() (floor, natural int) {
	floor = max(wrap.MinContent(c.fragments), c.minWidth)
	natural = wrap.Natural(c.fragments)
	if c.maxWidth > 0 {
		natural = min(natural, max(c.maxWidth, floor))
	}
	return floor, max(natural, floor)
}
