package surface

import "hangar/internal/hangar"

type OpKind string

const (
	OpLine      OpKind = "line"
	OpRectangle OpKind = "rectangle"
	OpFill      OpKind = "fill"
	OpText      OpKind = "text"
)

// Op is one recorded drawing primitive. Lines use X/Y and X2/Y2; rectangles
// and fills use X/Y with Width/Height.
type Op struct {
	Kind     OpKind       `json:"kind"`
	Color    hangar.Color `json:"color"`
	PenWidth int          `json:"pen_width,omitempty"`
	X        int          `json:"x"`
	Y        int          `json:"y"`
	X2       int          `json:"x2,omitempty"`
	Y2       int          `json:"y2,omitempty"`
	Width    int          `json:"width,omitempty"`
	Height   int          `json:"height,omitempty"`
	Text     string       `json:"text,omitempty"`
}

// Recorder keeps every primitive drawn on it, in order.
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawLine(pen hangar.Pen, x1, y1, x2, y2 int) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Color: pen.Color, PenWidth: pen.Width, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawRectangle(pen hangar.Pen, x, y, width, height int) {
	r.Ops = append(r.Ops, Op{Kind: OpRectangle, Color: pen.Color, PenWidth: pen.Width, X: x, Y: y, Width: width, Height: height})
}

func (r *Recorder) FillRectangle(c hangar.Color, x, y, width, height int) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c, X: x, Y: y, Width: width, Height: height})
}

func (r *Recorder) DrawString(text string, c hangar.Color, x, y int) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Color: c, X: x, Y: y, Text: text})
}

// Count returns how many recorded ops are of kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
