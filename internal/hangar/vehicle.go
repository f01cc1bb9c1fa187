package hangar

import (
	"cmp"
	"fmt"
	"strings"
)

const (
	vehicleWidth  = 150
	vehicleHeight = 60
)

type Kind string

const (
	KindArmored Kind = "armored"
	KindTank    Kind = "tank"
)

// Vehicle is what the service parks: a Transport with an identity.
type Vehicle interface {
	Transport
	Equal(other Vehicle) bool
	Kind() Kind
	Registration() string
	MainColor() string
	MaxSpeed() int
	Weight() float64
	Position() (x, y int)
	String() string
}

type ArmoredVehicle struct {
	RegistrationNumber string
	Color              string
	Speed              int
	Mass               float64

	x, y          int
	width, height int
}

func NewArmoredVehicle(registrationNumber, color string, maxSpeed int, weight float64) *ArmoredVehicle {
	return &ArmoredVehicle{
		RegistrationNumber: registrationNumber,
		Color:              color,
		Speed:              maxSpeed,
		Mass:               weight,
	}
}

func (v *ArmoredVehicle) Kind() Kind           { return KindArmored }
func (v *ArmoredVehicle) Registration() string { return v.RegistrationNumber }
func (v *ArmoredVehicle) MainColor() string    { return v.Color }
func (v *ArmoredVehicle) MaxSpeed() int        { return v.Speed }
func (v *ArmoredVehicle) Weight() float64      { return v.Mass }
func (v *ArmoredVehicle) Position() (int, int) { return v.x, v.y }

func (v *ArmoredVehicle) SetPosition(x, y, width, height int) {
	v.x, v.y = x, y
	v.width, v.height = width, height
}

func (v *ArmoredVehicle) DrawTransport(s Surface) {
	v.drawBody(s)
}

func (v *ArmoredVehicle) drawBody(s Surface) {
	outline := Pen{Color: ColorBlack, Width: 1}
	body := resolveColor(v.Color)

	// hull
	s.FillRectangle(body, v.x+10, v.y+15, vehicleWidth-20, 30)
	s.DrawRectangle(outline, v.x+10, v.y+15, vehicleWidth-20, 30)

	// tracks
	s.DrawRectangle(outline, v.x, v.y+45, vehicleWidth, vehicleHeight-45)
	for wx := v.x + 15; wx < v.x+vehicleWidth; wx += 30 {
		s.DrawLine(outline, wx, v.y+45, wx, v.y+vehicleHeight)
	}

	s.DrawString(v.RegistrationNumber, ColorBlack, v.x+15, v.y+20)
}

// Equal reports whether other is an armored vehicle with the same
// characteristics. The parking position is not compared.
func (v *ArmoredVehicle) Equal(other Vehicle) bool {
	o, ok := other.(*ArmoredVehicle)
	if !ok || o == nil {
		return false
	}
	return v.sameBody(o)
}

func (v *ArmoredVehicle) sameBody(o *ArmoredVehicle) bool {
	return v.RegistrationNumber == o.RegistrationNumber &&
		strings.EqualFold(v.Color, o.Color) &&
		v.Speed == o.Speed &&
		v.Mass == o.Mass
}

func (v *ArmoredVehicle) String() string {
	return fmt.Sprintf("%s;%s;%d;%g", v.RegistrationNumber, v.Color, v.Speed, v.Mass)
}

// Tank is an armored vehicle carrying a turret and, optionally, a gun.
type Tank struct {
	ArmoredVehicle
	TurretColor string
	Gun         bool
}

func NewTank(registrationNumber, color string, maxSpeed int, weight float64, turretColor string, gun bool) *Tank {
	return &Tank{
		ArmoredVehicle: *NewArmoredVehicle(registrationNumber, color, maxSpeed, weight),
		TurretColor:    turretColor,
		Gun:            gun,
	}
}

func (t *Tank) Kind() Kind { return KindTank }

func (t *Tank) DrawTransport(s Surface) {
	t.drawBody(s)

	outline := Pen{Color: ColorBlack, Width: 1}
	s.FillRectangle(resolveColor(t.TurretColor), t.x+50, t.y, 50, 15)
	s.DrawRectangle(outline, t.x+50, t.y, 50, 15)
	if t.Gun {
		s.DrawLine(Pen{Color: ColorBlack, Width: 3}, t.x+100, t.y+7, t.x+vehicleWidth, t.y+7)
	}
}

func (t *Tank) Equal(other Vehicle) bool {
	o, ok := other.(*Tank)
	if !ok || o == nil {
		return false
	}
	return t.sameBody(&o.ArmoredVehicle) &&
		strings.EqualFold(t.TurretColor, o.TurretColor) &&
		t.Gun == o.Gun
}

func (t *Tank) String() string {
	return fmt.Sprintf("%s;%s;%t", t.ArmoredVehicle.String(), t.TurretColor, t.Gun)
}

// CompareVehicles orders armored vehicles before tanks, then by speed, weight,
// color and registration. Tanks are further ordered by turret color and gun.
func CompareVehicles(a, b Vehicle) int {
	if c := cmp.Compare(kindRank(a.Kind()), kindRank(b.Kind())); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MaxSpeed(), b.MaxSpeed()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Weight(), b.Weight()); c != 0 {
		return c
	}
	if c := cmp.Compare(strings.ToLower(a.MainColor()), strings.ToLower(b.MainColor())); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Registration(), b.Registration()); c != 0 {
		return c
	}

	ta, aok := a.(*Tank)
	tb, bok := b.(*Tank)
	if !aok || !bok {
		return 0
	}
	if c := cmp.Compare(strings.ToLower(ta.TurretColor), strings.ToLower(tb.TurretColor)); c != 0 {
		return c
	}
	switch {
	case ta.Gun == tb.Gun:
		return 0
	case !ta.Gun:
		return -1
	default:
		return 1
	}
}

func kindRank(k Kind) int {
	if k == KindTank {
		return 1
	}
	return 0
}

func resolveColor(name string) Color {
	if c, ok := ParseColor(name); ok {
		return c
	}
	return ColorGray
}
