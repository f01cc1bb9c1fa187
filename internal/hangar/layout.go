package hangar

import "math"

const (
	PlaceWidth  = 210
	PlaceHeight = 80

	// Columns is the number of places per row when vehicles are drawn.
	Columns = 3

	// MaxSide bounds the width and height accepted by the shell and the API.
	MaxSide = 10000

	rowGap      = 9
	markLength  = PlaceWidth/2 + 50
	markPenSize = 3
)

// PlacePosition returns the pixel position assigned to the vehicle at index.
func PlacePosition(index int) (x, y int) {
	column := index % Columns
	row := index / Columns
	return 5 + column*PlaceWidth + 5, row*(PlaceHeight+rowGap) + 12
}

func maxPlaces(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	columns, rows := width/PlaceWidth, height/PlaceHeight
	if rows != 0 && columns > math.MaxInt/rows {
		return math.MaxInt
	}
	return columns * rows
}

// drawMarking strokes the place separators: a tick per row in every column and
// a vertical line down the left edge of each column.
func drawMarking(s Surface, width, height int) {
	pen := Pen{Color: ColorBlack, Width: markPenSize}
	columns := width / PlaceWidth
	rows := height / PlaceHeight

	for i := 0; i < columns; i++ {
		left := i * PlaceWidth
		for j := 0; j <= rows; j++ {
			y := j * (PlaceHeight + rowGap)
			s.DrawLine(pen, left, y, left+markLength, y)
		}
		s.DrawLine(pen, left, 0, left, rows*(PlaceHeight+rowGap))
	}
}
