package hangar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewArmoredVehicle(t *testing.T) {
	v := NewArmoredVehicle("KA01HH1234", "Olive", 60, 12.5)

	assert.Equal(t, "KA01HH1234", v.Registration())
	assert.Equal(t, "Olive", v.MainColor())
	assert.Equal(t, 60, v.MaxSpeed())
	assert.Equal(t, 12.5, v.Weight())
	assert.Equal(t, KindArmored, v.Kind())
}

func TestVehicleEquality(t *testing.T) {
	a := NewArmoredVehicle("KA01HH1234", "Olive", 60, 12.5)
	same := NewArmoredVehicle("KA01HH1234", "olive", 60, 12.5)
	faster := NewArmoredVehicle("KA01HH1234", "Olive", 70, 12.5)
	tank := NewTank("KA01HH1234", "Olive", 60, 12.5, "Green", true)

	same.SetPosition(220, 101, 640, 480)

	assert.True(t, a.Equal(same), "position and color case are ignored")
	assert.False(t, a.Equal(faster))
	assert.False(t, a.Equal(tank))
	assert.False(t, tank.Equal(a))
	assert.True(t, tank.Equal(NewTank("KA01HH1234", "Olive", 60, 12.5, "green", true)))
	assert.False(t, tank.Equal(NewTank("KA01HH1234", "Olive", 60, 12.5, "Green", false)))
}

func TestHangarOfVehiclesRejectsDuplicates(t *testing.T) {
	h := New[Vehicle](640, 480)

	_, err := h.Add(NewArmoredVehicle("KA01", "Olive", 60, 12))
	require.NoError(t, err)
	_, err = h.Add(NewTank("KA01", "Olive", 60, 12, "Green", true))
	require.NoError(t, err, "a tank never equals a plain armored vehicle")

	_, err = h.Add(NewArmoredVehicle("KA01", "Olive", 60, 12))
	assert.ErrorIs(t, err, ErrDuplicateElement)
}

func TestCompareVehicles(t *testing.T) {
	slow := NewArmoredVehicle("B", "Olive", 40, 10)
	fast := NewArmoredVehicle("A", "Olive", 80, 10)
	heavy := NewArmoredVehicle("C", "Olive", 40, 20)
	tank := NewTank("D", "Olive", 10, 5, "Green", false)
	gunTank := NewTank("D", "Olive", 10, 5, "Green", true)

	h := New[Vehicle](640, 480)
	for _, v := range []Vehicle{gunTank, fast, tank, heavy, slow} {
		_, err := h.Add(v)
		require.NoError(t, err)
	}

	h.Sort(CompareVehicles)

	var got []Vehicle
	for v := range h.All() {
		got = append(got, v)
	}
	assert.Equal(t, []Vehicle{slow, heavy, fast, tank, gunTank}, got)
	assert.Equal(t, 0, CompareVehicles(slow, NewArmoredVehicle("B", "olive", 40, 10)))
}

func TestArmoredVehicleDrawsAtItsPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewMockSurface(ctrl)

	v := NewArmoredVehicle("KA01", "Red", 60, 12)
	v.SetPosition(10, 12, 640, 480)

	s.EXPECT().FillRectangle(ColorRed, 20, 27, 130, 30)
	s.EXPECT().DrawString("KA01", ColorBlack, 25, 32)
	s.EXPECT().DrawRectangle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	s.EXPECT().DrawLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	v.DrawTransport(s)

	x, y := v.Position()
	assert.Equal(t, 10, x)
	assert.Equal(t, 12, y)
}

func TestTankDrawsTurretAndGun(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewMockSurface(ctrl)

	tank := NewTank("KA02", "Olive", 40, 30, "Yellow", true)
	tank.SetPosition(10, 12, 640, 480)

	s.EXPECT().FillRectangle(ColorYellow, 60, 12, 50, 15)
	s.EXPECT().DrawLine(Pen{Color: ColorBlack, Width: 3}, 110, 19, 160, 19)
	s.EXPECT().FillRectangle(ColorOlive, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.EXPECT().DrawRectangle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
	s.EXPECT().DrawLine(Pen{Color: ColorBlack, Width: 1}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().DrawString("KA02", ColorBlack, gomock.Any(), gomock.Any())

	tank.DrawTransport(s)
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("Olive")
	assert.True(t, ok)
	assert.Equal(t, ColorOlive, c)

	_, ok = ParseColor("chartreuse")
	assert.False(t, ok)
}

func TestVehicleString(t *testing.T) {
	assert.Equal(t, "KA01;Olive;60;12.5", NewArmoredVehicle("KA01", "Olive", 60, 12.5).String())
	assert.Equal(t, "KA02;Green;40;30;Yellow;true", NewTank("KA02", "Green", 40, 30, "Yellow", true).String())
}
