// Package termsize finds the width a table should be rendered at
package termsize

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrUnknownWidth is returned when no width source is available
var ErrUnknownWidth = errors.New("terminal width unknown")

// Sizer reports the size of an output device
type Sizer interface {
	IsTerminal() bool
	Width() (int, error)
}

// Terminal is a Sizer over an open file descriptor
type Terminal struct {
	Fd int
}

// Stdout returns the Sizer for standard output
func Stdout() Terminal {
	return Terminal{Fd: int(os.Stdout.Fd())}
}

// IsTerminal reports whether the descriptor is a terminal
func (t Terminal) IsTerminal() bool {
	return term.IsTerminal(t.Fd)
}

// Width returns the terminal's column count
func (t Terminal) Width() (int, error) {
	w, _, err := term.GetSize(t.Fd)
	if err != nil {
		return 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return w, nil
}

// Resolve picks the rendering width: an explicit positive width first, then
// the terminal, then the COLUMNS value from env.
func Resolve(explicit int, sizer Sizer, env func(string) string) (int, error) {
	if explicit > 0 {
		return explicit, nil
	}
	if sizer != nil && sizer.IsTerminal() {
		if w, err := sizer.Width(); err == nil && w > 0 {
			return w, nil
		}
	}
	if env != nil {
		if v := strings.TrimSpace(env("COLUMNS")); v != "" {
			if w, err := strconv.Atoi(v); err == nil && w > 0 {
				return w, nil
			}
		}
	}
	return 0, ErrUnknownWidth
}
