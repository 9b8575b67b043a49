// Package linebreak finds the positions where text may or must be broken
// across lines, following the Unicode line breaking algorithm (UAX #14).
package linebreak

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Break is a position in the text where a line may end
type Break struct {
	// Pos is the byte offset just after the segment that ends here
	Pos int
	// Mandatory is set when the line must end here
	Mandatory bool
	// Newline is set when the segment ends with an explicit line terminator
	Newline bool
	// End marks the terminal break at len(text)
	End bool
}

// Breaks returns the break opportunities of text in increasing order.
// The sequence is lazy and restartable: each range over it scans from the start.
// It always ends with a mandatory break at len(text), even for empty text.
func Breaks(text string) iter.Seq[Break] {
	return func(yield func(Break) bool) {
		if text == "" {
			yield(Break{Mandatory: true, End: true})
			return
		}

		var (
			segment   string
			mustBreak bool
		)
		rest, state, pos := text, -1, 0
		for len(rest) > 0 {
			segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
			pos += len(segment)
			b := Break{
				Pos:       pos,
				Mandatory: mustBreak || rest == "",
				End:       rest == "",
			}
			if b.Mandatory {
				b.Newline = uniseg.HasTrailingLineBreakInString(segment)
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Segments splits text at every break opportunity.
// Concatenating the result gives back text.
func Segments(text string) []string {
	var out []string
	start := 0
	for b := range Breaks(text) {
		if b.Pos > start || (b.End && len(out) == 0) {
			out = append(out, text[start:b.Pos])
		}
		start = b.Pos
	}
	return out
}
