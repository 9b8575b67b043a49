package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/young1lin/tabfit/internal/width"
	"github.com/young1lin/tabfit/internal/wrap"
)

func cell(text string, a Align) Cell {
	return Cell{Lines: []wrap.Line{{Text: text, Width: width.String(text)}}, Align: a}
}

func span(text string, n int, a Align) Cell {
	c := cell(text, a)
	c.Span = n
	return c
}

func TestAssembleSimple(t *testing.T) {
	g := Grid{
		Widths: []int{1, 3},
		Header: []Row{{cell("A", AlignCenter), cell("B", AlignCenter)}},
		Body: []Row{
			{cell("1", AlignDefault), cell("1", AlignDefault)},
			{cell("2", AlignDefault), cell("10", AlignDefault)},
			{cell("3", AlignDefault), cell("100", AlignDefault)},
		},
	}
	opts := Options{Style: Simple, Padding: 1, TopBorder: true, BottomBorder: true}

	got, err := Assemble(g, opts)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := []string{
		"+---+-----+",
		"| A |  B  |",
		"| 1 | 1   |",
		"| 2 | 10  |",
		"| 3 | 100 |",
		"+---+-----+",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleHeaderSeparator(t *testing.T) {
	g := Grid{
		Widths: []int{4, 2},
		Header: []Row{{cell("name", AlignLeft), cell("n", AlignRight)}},
		Body:   []Row{{cell("ab", AlignLeft), cell("7", AlignRight)}},
	}
	opts := Options{Style: Thin, Padding: 1, HeaderSeparator: true, TopBorder: true, BottomBorder: true}

	got, err := Assemble(g, opts)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := []string{
		"┌──────┬────┐",
		"│ name │  n │",
		"├──────┼────┤",
		"│ ab   │  7 │",
		"└──────┴────┘",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleSpanJunctions(t *testing.T) {
	g := Grid{
		Widths: []int{3, 3},
		Body: []Row{
			{span("wide", 2, AlignCenter)},
			{cell("ab", AlignLeft), cell("cd", AlignLeft)},
			{span("end", 2, AlignRight)},
		},
	}
	opts := Options{Style: Thin, Padding: 1, RowSeparators: true, TopBorder: true, BottomBorder: true}

	got, err := Assemble(g, opts)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := []string{
		"┌───────────┐",
		"│   wide    │",
		"├─────┬─────┤",
		"│ ab  │ cd  │",
		"├─────┴─────┤",
		"│       end │",
		"└───────────┘",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleMultiLineRows(t *testing.T) {
	tall := Cell{Lines: []wrap.Line{{Text: "one", Width: 3}, {Text: "two", Width: 3}, {Text: "six", Width: 3}}}
	g := Grid{
		Widths: []int{3, 1},
		Body:   []Row{{tall, cell("x", AlignDefault)}},
	}
	got, err := Assemble(g, Options{Style: Simple, Padding: 0})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := []string{"|one|x|", "|two| |", "|six| |"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleBlankStyle(t *testing.T) {
	g := Grid{
		Widths: []int{2, 2},
		Header: []Row{{cell("a", AlignDefault), cell("b", AlignDefault)}},
		Body:   []Row{{cell("cc", AlignDefault), cell("dd", AlignDefault)}},
	}
	opts := Options{Style: Blank, Padding: 1, HeaderSeparator: true, TopBorder: true, BottomBorder: true}
	got, err := Assemble(g, opts)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := []string{" a   b  ", " cc  dd "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleWidthConservation(t *testing.T) {
	g := Grid{
		Widths: []int{5, 1, 4},
		Header: []Row{{cell("日本", AlignCenter), cell("x", AlignLeft), cell("\x1b[1mhi\x1b[0m", AlignRight)}},
		Body: []Row{
			{span("spanning all", 3, AlignCenter)},
			{span("two", 2, AlignLeft), cell("é", AlignRight)},
			{cell("", AlignLeft), span("tail", 2, AlignCenter)},
		},
	}

	for _, style := range []Style{Simple, Extended, Thin, Rounded, Elegant, Empty} {
		for pad := 0; pad <= 2; pad++ {
			opts := Options{Style: style, Padding: pad, HeaderSeparator: true, RowSeparators: true, TopBorder: true, BottomBorder: true}
			lines, err := Assemble(g, opts)
			if err != nil {
				t.Fatalf("Assemble(%s) error = %v", style.Name, err)
			}
			want := opts.Overhead(3) + 10
			for _, l := range lines {
				if got := width.String(l); got != want {
					t.Errorf("Assemble(%s, pad %d): line %q is %d wide, want %d", style.Name, pad, l, got, want)
				}
			}
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	got, err := Assemble(Grid{Widths: []int{3}}, Options{Style: Simple, TopBorder: true})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Assemble() = %q, want no lines", got)
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		opts Options
		want error
	}{
		{
			name: "too few cells",
			grid: Grid{Widths: []int{2, 2}, Body: []Row{{cell("a", AlignLeft)}}},
			opts: Options{Style: Simple},
			want: ErrColumnMismatch,
		},
		{
			name: "span too wide",
			grid: Grid{Widths: []int{2, 2}, Body: []Row{{span("a", 3, AlignLeft)}}},
			opts: Options{Style: Simple},
			want: ErrColumnMismatch,
		},
		{
			name: "line wider than cell",
			grid: Grid{Widths: []int{2}, Body: []Row{{cell("abc", AlignLeft)}}},
			opts: Options{Style: Simple},
			want: ErrCellOverflow,
		},
		{
			name: "negative padding",
			grid: Grid{Widths: []int{2}, Body: []Row{{cell("a", AlignLeft)}}},
			opts: Options{Style: Simple, Padding: -1},
			want: ErrInvalidPadding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Assemble(tt.grid, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("Assemble() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOverheadAndGap(t *testing.T) {
	opts := Options{Style: Thin, Padding: 1}
	if got := opts.Overhead(3); got != 10 {
		t.Errorf("Overhead(3) = %d, want 10", got)
	}
	if got := opts.Gap(); got != 3 {
		t.Errorf("Gap() = %d, want 3", got)
	}
	blank := Options{Style: Blank, Padding: 1}
	if got := blank.Overhead(3); got != 6 {
		t.Errorf("blank Overhead(3) = %d, want 6", got)
	}
}
