package render

import (
	"fmt"
	"strings"

	"github.com/young1lin/tabfit/internal/width"
)

// Style is the set of glyphs a table border is drawn with
type Style struct {
	Name string

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	// LeftJoin and RightJoin start and end an inner rule
	LeftJoin  string
	RightJoin string
	// TopJoin is where a column boundary starts below a rule,
	// BottomJoin where one ends above it
	TopJoin    string
	BottomJoin string
	Cross      string

	Vertical   string
	Horizontal string
}

var (
	// Simple draws with ASCII characters
	Simple = Style{
		Name:    "simple",
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		LeftJoin: "+", RightJoin: "+", TopJoin: "+", BottomJoin: "+", Cross: "+",
		Vertical: "|", Horizontal: "-",
	}
	// Extended draws with double lines
	Extended = Style{
		Name:    "extended",
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		LeftJoin: "╠", RightJoin: "╣", TopJoin: "╦", BottomJoin: "╩", Cross: "╬",
		Vertical: "║", Horizontal: "═",
	}
	// Thin draws with single lines
	Thin = Style{
		Name:    "thin",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		LeftJoin: "├", RightJoin: "┤", TopJoin: "┬", BottomJoin: "┴", Cross: "┼",
		Vertical: "│", Horizontal: "─",
	}
	// Rounded is Thin with rounded corners
	Rounded = Style{
		Name:    "rounded",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		LeftJoin: "├", RightJoin: "┤", TopJoin: "┬", BottomJoin: "┴", Cross: "┼",
		Vertical: "│", Horizontal: "─",
	}
	// Elegant has double outer corners and joins with single inner lines
	Elegant = Style{
		Name:    "elegant",
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		LeftJoin: "╠", RightJoin: "╣", TopJoin: "╦", BottomJoin: "╩", Cross: "┼",
		Vertical: "│", Horizontal: "─",
	}
	// Empty keeps the layout of a border but draws it with spaces
	Empty = Style{
		Name:    "empty",
		TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
		LeftJoin: " ", RightJoin: " ", TopJoin: " ", BottomJoin: " ", Cross: " ",
		Vertical: " ", Horizontal: " ",
	}
	// Blank draws no border at all; cells are separated by padding only
	Blank = Style{Name: "blank"}
)

// Styles lists the built-in styles by name
func Styles() []string {
	return []string{Simple.Name, Extended.Name, Thin.Name, Rounded.Name, Elegant.Name, Empty.Name, Blank.Name}
}

// ParseStyle returns the built-in style with the given name
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple", "ascii":
		return Simple, nil
	case "extended", "double":
		return Extended, nil
	case "thin", "single":
		return Thin, nil
	case "rounded":
		return Rounded, nil
	case "elegant":
		return Elegant, nil
	case "empty":
		return Empty, nil
	case "blank", "none":
		return Blank, nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// BorderWidth is the display width of a vertical border
func (s Style) BorderWidth() int {
	return width.String(s.Vertical)
}

// ruled reports whether the style draws horizontal rules
func (s Style) ruled() bool {
	return s.Horizontal != ""
}
