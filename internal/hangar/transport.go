package hangar

import "strings"

// Color is an RGB color understood by every Surface.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorRed    = Color{255, 0, 0}
	ColorGreen  = Color{0, 128, 0}
	ColorBlue   = Color{0, 0, 255}
	ColorYellow = Color{255, 255, 0}
	ColorGray   = Color{128, 128, 128}
	ColorOrange = Color{255, 165, 0}
	ColorOlive  = Color{128, 128, 0}
	ColorBrown  = Color{139, 69, 19}
)

var namedColors = map[string]Color{
	"black":  ColorBlack,
	"white":  ColorWhite,
	"red":    ColorRed,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"yellow": ColorYellow,
	"gray":   ColorGray,
	"grey":   ColorGray,
	"orange": ColorOrange,
	"olive":  ColorOlive,
	"brown":  ColorBrown,
}

// ParseColor resolves a color name, case-insensitively.
func ParseColor(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

// Pen describes how a line is stroked.
type Pen struct {
	Color Color
	Width int
}

// Surface is the drawing target handed to Draw. Coordinates are pixels with the
// origin in the top-left corner.
type Surface interface {
	DrawLine(pen Pen, x1, y1, x2, y2 int)
	DrawRectangle(pen Pen, x, y, width, height int)
	FillRectangle(color Color, x, y, width, height int)
	DrawString(text string, color Color, x, y int)
}

// Transport is anything that can be parked: it accepts a position inside a
// drawing area and renders itself there.
type Transport interface {
	SetPosition(x, y, width, height int)
	DrawTransport(s Surface)
}

// Element is the constraint for hangar contents. Equal decides duplicates.
type Element[T any] interface {
	Transport
	Equal(other T) bool
}
