// Package surface provides hangar.Surface implementations: an operation
// recorder, a text frame and a tcell screen.
package surface

import (
	"hangar/internal/hangar"
)

// Scale is the number of pixels covered by one character cell.
type Scale struct {
	X int
	Y int
}

var DefaultScale = Scale{X: 10, Y: 20}

func (s Scale) normalized() Scale {
	if s.X <= 0 {
		s.X = DefaultScale.X
	}
	if s.Y <= 0 {
		s.Y = DefaultScale.Y
	}
	return s
}

// cellTarget is a grid of character cells.
type cellTarget interface {
	set(col, row int, r rune, c hangar.Color)
	size() (cols, rows int)
}

// painter rasterizes pixel-space primitives onto a cellTarget.
type painter struct {
	target cellTarget
	scale  Scale
}

func (p painter) plot(col, row int, r rune, c hangar.Color) {
	cols, rows := p.target.size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	p.target.set(col, row, r, c)
}

func (p painter) DrawLine(pen hangar.Pen, x1, y1, x2, y2 int) {
	c1, r1 := x1/p.scale.X, y1/p.scale.Y
	c2, r2 := x2/p.scale.X, y2/p.scale.Y
	glyph := lineGlyph(c1, r1, c2, r2)
	bresenham(c1, r1, c2, r2, func(col, row int) {
		p.plot(col, row, glyph, pen.Color)
	})
}

func (p painter) DrawRectangle(pen hangar.Pen, x, y, width, height int) {
	p.DrawLine(pen, x, y, x+width, y)
	p.DrawLine(pen, x, y+height, x+width, y+height)
	p.DrawLine(pen, x, y, x, y+height)
	p.DrawLine(pen, x+width, y, x+width, y+height)
}

func (p painter) FillRectangle(c hangar.Color, x, y, width, height int) {
	c1, r1 := x/p.scale.X, y/p.scale.Y
	c2, r2 := (x+width)/p.scale.X, (y+height)/p.scale.Y
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			p.plot(col, row, '#', c)
		}
	}
}

func (p painter) DrawString(text string, c hangar.Color, x, y int) {
	col, row := x/p.scale.X, y/p.scale.Y
	for i, r := range []rune(text) {
		p.plot(col+i, row, r, c)
	}
}

func lineGlyph(c1, r1, c2, r2 int) rune {
	switch {
	case r1 == r2:
		return '-'
	case c1 == c2:
		return '|'
	case (c2-c1 > 0) == (r2-r1 > 0):
		return '\\'
	default:
		return '/'
	}
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
