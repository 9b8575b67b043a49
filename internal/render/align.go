package render

import (
	"fmt"
	"strings"

	"github.com/young1lin/tabfit/internal/wrap"
)

// Align is the horizontal alignment of a cell's lines
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ParseAlign converts an alignment name to an Align
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return AlignDefault, nil
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignDefault, fmt.Errorf("%w: %q", ErrUnknownAlign, s)
}

// String returns the name of the alignment
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "default"
	}
}

// Pad places a line inside w columns.
// Default and left alignment pad on the right; center puts the odd
// column on the right.
func Pad(l wrap.Line, w int, a Align) string {
	padding := w - l.Width
	if padding <= 0 {
		return l.Text
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", padding) + l.Text
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(" ", left) + l.Text + strings.Repeat(" ", padding-left)
	default:
		return l.Text + strings.Repeat(" ", padding)
	}
}
