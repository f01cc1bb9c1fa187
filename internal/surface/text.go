package surface

import (
	"strings"

	"hangar/internal/hangar"
)

const (
	maxTextCols = 2000
	maxTextRows = 1000
)

// Text is a character frame covering a pixel area. Colors are dropped. The
// frame is capped at maxTextCols x maxTextRows cells; anything beyond is
// clipped.
type Text struct {
	painter
	cells [][]rune
}

func NewText(width, height int, scale Scale) *Text {
	scale = scale.normalized()
	cols := min(max(width/scale.X, 0), maxTextCols)
	rows := min(max(height/scale.Y, 0), maxTextRows)

	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}

	t := &Text{cells: cells}
	t.painter = painter{target: t, scale: scale}
	return t
}

func (t *Text) set(col, row int, r rune, _ hangar.Color) {
	t.cells[row][col] = r
}

func (t *Text) size() (int, int) {
	if len(t.cells) == 0 {
		return 0, 0
	}
	return len(t.cells[0]), len(t.cells)
}

// At returns the rune at a cell, or a space outside the frame.
func (t *Text) At(col, row int) rune {
	cols, rows := t.size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return ' '
	}
	return t.cells[row][col]
}

// String returns the frame with trailing spaces trimmed from every line.
func (t *Text) String() string {
	var b strings.Builder
	for _, row := range t.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
