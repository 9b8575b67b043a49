// Package wrap breaks cell content into display lines no wider than a target width.
package wrap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/young1lin/tabfit/internal/linebreak"
	"github.com/young1lin/tabfit/internal/width"
)

var (
	// ErrInvalidWidth is returned when the target width is not positive
	ErrInvalidWidth = errors.New("target width must be positive")
	// ErrMultilineFragment is returned for a fixed fragment with a line
	// terminator anywhere but at its end
	ErrMultilineFragment = errors.New("fixed fragment spans several lines")
)

// Fragment is a piece of cell content.
// A Fixed fragment is a pre-styled span: it is measured by its declared
// Width and is never split across lines. It holds a single line and may
// only end with a line terminator.
type Fragment struct {
	Text  string
	Width int
	Fixed bool
}

// Line is one wrapped display line and its width in columns
type Line struct {
	Text  string
	Width int
}

// lineTerminators are the explicit terminators a segment may end with
const lineTerminators = "\r\n\v\f\u0085\u2028\u2029"

// unit is the smallest piece the wrapper moves between lines
type unit struct {
	text    string
	width   int
	keep    int // bytes of text left after trimming trailing whitespace
	visible int // width of text[:keep]
	newline bool
}

// solid reports whether u holds something other than collapsible whitespace
func (u unit) solid() bool {
	return u.keep > 0 || u.visible > 0
}

// Text wraps a plain string to the given width
func Text(text string, w int) ([]Line, error) {
	return Fragments([]Fragment{{Text: text}}, w)
}

// Fragments wraps the fragments to the given width.
//
// Lines end at break opportunities; trailing whitespace is dropped from every
// line. A token that cannot fit on its own is placed on a line by itself and
// exceeds the width rather than being cut. Whitespace never starts a new
// line by itself, and a line holding only whitespace when a width break
// happens is dropped.
func Fragments(frags []Fragment, w int) ([]Line, error) {
	if w <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, w)
	}
	for i, f := range frags {
		if f.Fixed && strings.ContainsAny(strings.TrimRight(f.Text, lineTerminators), lineTerminators) {
			return nil, fmt.Errorf("%w: fragment %d %q", ErrMultilineFragment, i, f.Text)
		}
	}

	var (
		lines   []Line
		buf     strings.Builder
		used    int  // width of buf
		keep    int  // bytes of buf up to the last visible content
		visible int  // width of buf[:keep]
		content bool // buf holds something other than whitespace
		ended   bool // the last unit ended with a line terminator
		pending bool // buf holds at least one unit
	)
	reset := func() {
		buf.Reset()
		used, keep, visible, content, pending = 0, 0, 0, false, false
	}
	flush := func() {
		lines = append(lines, Line{Text: buf.String()[:keep], Width: visible})
		reset()
	}

	for _, u := range split(frags) {
		if pending && u.solid() && used+u.visible > w {
			if content {
				flush()
			} else {
				reset()
			}
		}

		if u.solid() {
			keep = buf.Len() + u.keep
			visible = used + u.visible
			content = true
		}
		buf.WriteString(u.text)
		used += u.width
		pending = true

		ended = u.newline
		if u.newline {
			flush()
		}
	}

	if pending || ended || len(lines) == 0 {
		flush()
	}
	return lines, nil
}

// Natural returns the width of the widest line when only explicit line
// terminators break the content
func Natural(frags []Fragment) int {
	var widest, used int
	for _, u := range split(frags) {
		if u.solid() {
			widest = max(widest, used+u.visible)
		}
		used += u.width
		if u.newline {
			used = 0
		}
	}
	return widest
}

// MinContent returns the width of the widest piece that cannot be broken
func MinContent(frags []Fragment) int {
	widest := 0
	for _, u := range split(frags) {
		if u.visible > widest {
			widest = u.visible
		}
	}
	return widest
}

// split turns the fragments into wrap units. Adjacent plain fragments are
// joined and segmented at break opportunities; fixed fragments stay whole.
func split(frags []Fragment) []unit {
	var (
		units []unit
		run   strings.Builder
	)
	segment := func() {
		if run.Len() == 0 {
			return
		}
		text := run.String()
		run.Reset()
		start := 0
		for b := range linebreak.Breaks(text) {
			units = append(units, plainUnit(text[start:b.Pos], b.Newline))
			start = b.Pos
		}
	}

	for _, f := range frags {
		if !f.Fixed {
			run.WriteString(f.Text)
			continue
		}
		segment()
		text := strings.TrimRight(f.Text, lineTerminators)
		units = append(units, unit{
			text:    text,
			width:   f.Width,
			keep:    len(text),
			visible: f.Width,
			newline: text != f.Text,
		})
	}
	segment()
	return units
}

func plainUnit(seg string, newline bool) unit {
	text := seg
	if newline {
		text = strings.TrimRight(seg, lineTerminators)
	}
	trimmed := strings.TrimRightFunc(text, isCollapsible)
	return unit{
		text:    text,
		width:   width.String(text),
		keep:    len(trimmed),
		visible: width.String(trimmed),
		newline: newline,
	}
}

// isCollapsible reports whether r is whitespace that may be dropped at a line end.
// No-break spaces are content.
func isCollapsible(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.IsSpace(r)
}
