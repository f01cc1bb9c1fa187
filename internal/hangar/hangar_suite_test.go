package hangar

//go:generate mockgen -destination mock_surface_test.go -package $GOPACKAGE -write_package_comment=false hangar/internal/hangar Surface

// plate is a minimal Transport used to observe what the hangar does to its
// elements.
type plate struct {
	id            string
	x, y          int
	width, height int
	positioned    int
}

func newPlate(id string) *plate {
	return &plate{id: id}
}

func (p *plate) SetPosition(x, y, width, height int) {
	p.x, p.y = x, y
	p.width, p.height = width, height
	p.positioned++
}

func (p *plate) DrawTransport(s Surface) {
	s.DrawString(p.id, ColorBlack, p.x, p.y)
}

func (p *plate) Equal(other *plate) bool {
	return other != nil && p.id == other.id
}

func comparePlates(a, b *plate) int {
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	default:
		return 0
	}
}

// nopSurface discards everything drawn on it.
type nopSurface struct{}

func (nopSurface) DrawLine(Pen, int, int, int, int)        {}
func (nopSurface) DrawRectangle(Pen, int, int, int, int)   {}
func (nopSurface) FillRectangle(Color, int, int, int, int) {}
func (nopSurface) DrawString(string, Color, int, int)      {}
