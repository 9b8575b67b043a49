// Package layout negotiates column widths against a total width budget
package layout

import "errors"

var (
	// ErrInvalidBudget is returned when the width budget is not positive
	ErrInvalidBudget = errors.New("width budget must be positive")
	// ErrInvalidColumn is returned for negative column measurements
	ErrInvalidColumn = errors.New("invalid column")
	// ErrInvalidSpan is returned when a span does not fit the columns
	ErrInvalidSpan = errors.New("invalid span")
)

// Column holds the measurements of one column
type Column struct {
	Min     int  // floor: declared minimum or widest unbreakable token
	Natural int  // unwrapped width of the widest cell
	Fixed   int  // explicit width override, 0 for none
	Max     int  // cap on growth, 0 for none; never below Min
	Grow    bool // may grow past Min towards Natural
}

// Span describes a cell covering several adjacent columns
type Span struct {
	Start   int
	Count   int
	Min     int
	Natural int
}

// Request is the input of one layout pass
type Request struct {
	Columns []Column
	Spans   []Span
	// Budget is the total line width available
	Budget int
	// Overhead is the width taken by borders and padding
	Overhead int
	// Gap is the width between two adjacent columns, used by spans
	Gap int
	// Stretch hands budget left over after natural widths to growable columns
	Stretch bool
}

// Result is the outcome of one layout pass
type Result struct {
	Widths   []int
	Total    int // Overhead plus the sum of Widths
	Overflow int // how far Total exceeds the budget
}
