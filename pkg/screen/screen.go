// Package screen provides the character grid that render tokens draw
// into, plus framed text output for terminals.
//
// A Screen is a fixed-size grid of runes addressed as (row, column).
// Writes outside the grid are dropped silently so that a placement
// running past the stage degrades to clipped output instead of a
// panic; the negotiation core never validates placements against the
// stage, so the grid is the last line of defense.
package screen

import (
	"fmt"
	"io"
	"strings"
)

// Screen is a rectangular character grid. Cells are indexed
// Cells[row][col] and initialized to spaces.
type Screen struct {
	Width  int
	Height int
	Cells  [][]rune
}

// New creates a screen of the given dimensions filled with spaces.
// Non-positive dimensions yield an empty grid.
func New(width, height int) *Screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for i := range cells {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &Screen{Width: width, Height: height, Cells: cells}
}

// Set writes r at (row, col). Writes outside the grid are ignored.
func (s *Screen) Set(row, col int, r rune) {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return
	}
	s.Cells[row][col] = r
}

// SetString writes text starting at (row, col), clipping at the grid
// edge.
func (s *Screen) SetString(row, col int, text string) {
	for i, r := range []rune(text) {
		s.Set(row, col+i, r)
	}
}

// Row returns the contents of one row as a string. Out-of-range rows
// return the empty string.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.Height {
		return ""
	}
	return string(s.Cells[row])
}

// WriteTo writes the framed screen: a column ruler across the top,
// each row wrapped in pipes, and dashed horizontal borders.
func (s *Screen) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	b.WriteString(strings.Repeat("-", s.Width+2))
	b.WriteString("\n|")
	for idx := 0; idx < s.Width; idx++ {
		if idx%2 == 0 {
			fmt.Fprintf(&b, "%d", idx%10)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("|\n|")
	b.WriteString(strings.Repeat("-", s.Width))
	b.WriteString("|\n")

	for _, row := range s.Cells {
		b.WriteByte('|')
		b.WriteString(string(row))
		b.WriteString("|\n")
	}

	b.WriteByte('|')
	b.WriteString(strings.Repeat("-", s.Width))
	b.WriteString("|\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the framed screen as a string.
func (s *Screen) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
