package layout

import (
	"fmt"
	"slices"
)

// Resolve computes one width per column so that the table fits Budget.
//
// Each column starts at its floor, or at its override when it has one.
// Spare budget goes to growable columns in proportion to how far they are
// from their natural width, one column at a time by highest average, so
// a larger budget never yields a narrower column. When even the starting
// widths do not fit, the widest columns above their floor give up width
// first. Whatever still does not fit is reported as Overflow.
// Ties always go to the lower column index.
func Resolve(req Request) (Result, error) {
	if req.Budget <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidBudget, req.Budget)
	}
	floors, naturals, err := measure(req)
	if err != nil {
		return Result{}, err
	}

	widths := make([]int, len(req.Columns))
	for i, c := range req.Columns {
		widths[i] = floors[i]
		if c.Fixed > 0 {
			widths[i] = max(c.Fixed, floors[i])
		}
	}

	remaining := req.Budget - req.Overhead - sum(widths)
	switch {
	case remaining > 0:
		remaining = grow(req.Columns, widths, naturals, remaining)
		if req.Stretch && remaining > 0 {
			stretch(req.Columns, widths, floors, remaining)
		}
	case remaining < 0:
		shrink(widths, floors, -remaining)
	}

	return result(req, widths), nil
}

// Natural lays out every column at its natural width. Budget is ignored
// and Overflow is always zero.
func Natural(req Request) (Result, error) {
	floors, naturals, err := measure(req)
	if err != nil {
		return Result{}, err
	}
	widths := make([]int, len(req.Columns))
	for i, c := range req.Columns {
		switch {
		case c.Fixed > 0:
			widths[i] = max(c.Fixed, floors[i])
		case c.Grow:
			widths[i] = max(naturals[i], floors[i])
		default:
			widths[i] = floors[i]
		}
	}
	return Result{Widths: widths, Total: req.Overhead + sum(widths)}, nil
}

func result(req Request, widths []int) Result {
	total := req.Overhead + sum(widths)
	return Result{
		Widths:   widths,
		Total:    total,
		Overflow: max(0, total-req.Budget),
	}
}

// measure validates the request and folds span demands into per-column
// floors and naturals
func measure(req Request) (floors, naturals []int, err error) {
	n := len(req.Columns)
	floors = make([]int, n)
	naturals = make([]int, n)
	for i, c := range req.Columns {
		if c.Min < 0 || c.Natural < 0 || c.Fixed < 0 || c.Max < 0 {
			return nil, nil, fmt.Errorf("%w: column %d has a negative width", ErrInvalidColumn, i)
		}
		floors[i] = c.Min
		naturals[i] = max(c.Natural, c.Min)
	}

	spans := slices.Clone(req.Spans)
	for _, s := range spans {
		if s.Count < 1 || s.Start < 0 || s.Start+s.Count > n {
			return nil, nil, fmt.Errorf("%w: columns %d+%d of %d", ErrInvalidSpan, s.Start, s.Count, n)
		}
	}
	// narrow spans first so that wide ones see the widths they imply
	slices.SortStableFunc(spans, func(a, b Span) int { return a.Count - b.Count })

	for _, s := range spans {
		if s.Count == 1 {
			floors[s.Start] = max(floors[s.Start], s.Min)
			naturals[s.Start] = max(naturals[s.Start], s.Natural)
			continue
		}
		gaps := (s.Count - 1) * req.Gap
		spread(floors[s.Start:s.Start+s.Count], s.Min-gaps)
		spread(naturals[s.Start:s.Start+s.Count], s.Natural-gaps)
	}
	for i, c := range req.Columns {
		if c.Max > 0 {
			naturals[i] = min(naturals[i], max(c.Max, floors[i]))
		}
		naturals[i] = max(naturals[i], floors[i])
	}
	return floors, naturals, nil
}

// spread raises widths so that they add up to at least want, sharing the
// shortfall evenly with the remainder going to the lowest indexes
func spread(widths []int, want int) {
	short := want - sum(widths)
	if short <= 0 {
		return
	}
	each, extra := short/len(widths), short%len(widths)
	for i := range widths {
		widths[i] += each
		if i < extra {
			widths[i]++
		}
	}
}

// grow hands out up to budget units to growable columns below their
// natural width and returns what is left. Each unit goes to the column
// with the highest demand/(2*granted+1).
func grow(cols []Column, widths, naturals []int, budget int) int {
	demand := make([]int, len(cols))
	granted := make([]int, len(cols))
	for i, c := range cols {
		if c.Grow && c.Fixed == 0 {
			demand[i] = max(0, naturals[i]-widths[i])
		}
	}

	for budget > 0 {
		best := -1
		for i, d := range demand {
			if granted[i] >= d {
				continue
			}
			// d/(2g+1) > bd/(2bg+1) without division
			if best < 0 || d*(2*granted[best]+1) > demand[best]*(2*granted[i]+1) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		granted[best]++
		widths[best]++
		budget--
	}
	return budget
}

// stretch deals budget round-robin to growable columns, skipping columns
// that have reached their Max
func stretch(cols []Column, widths, floors []int, budget int) {
	for budget > 0 {
		dealt := false
		for i, c := range cols {
			if budget == 0 {
				break
			}
			if !c.Grow || c.Fixed > 0 {
				continue
			}
			if c.Max > 0 && widths[i] >= max(c.Max, floors[i]) {
				continue
			}
			widths[i]++
			budget--
			dealt = true
		}
		if !dealt {
			return
		}
	}
}

// shrink takes up to excess units from the widest columns still above
// their floor
func shrink(widths, floors []int, excess int) {
	for excess > 0 {
		widest := -1
		for i, w := range widths {
			if w <= floors[i] {
				continue
			}
			if widest < 0 || w > widths[widest] {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		widths[widest]--
		excess--
	}
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
