// Package width measures how many terminal columns text occupies.
package width

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// condition is built once and only read afterwards.
// East Asian ambiguous characters are treated as narrow.
var condition = sync.OnceValue(func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	c.CreateLUT()
	return c
})

// String returns the display width of s.
// Escape sequences (colors, hyperlinks) occupy no columns.
func String(s string) int {
	if s == "" {
		return 0
	}
	return condition().StringWidth(Strip(s))
}

// Rune returns the display width of a single code point: 0, 1 or 2
func Rune(r rune) int {
	return condition().RuneWidth(r)
}

// Strip removes ANSI escape sequences from s
func Strip(s string) string {
	if !strings.ContainsAny(s, "\x1b\u009b") {
		return s
	}
	return ansi.Strip(s)
}

// Truncate cuts s so that it fits in w columns, appending tail when it had to cut
func Truncate(s string, w int, tail string) string {
	if w <= 0 {
		return ""
	}
	return condition().Truncate(Strip(s), w, tail)
}
