package surface

import (
	"github.com/gdamore/tcell/v2"

	"hangar/internal/hangar"
)

// Screen draws onto a tcell screen. The caller owns Init, Show and Fini.
type Screen struct {
	painter
	screen tcell.Screen
}

func NewScreen(screen tcell.Screen, scale Scale) *Screen {
	s := &Screen{screen: screen}
	s.painter = painter{target: s, scale: scale.normalized()}
	return s
}

func (s *Screen) set(col, row int, r rune, c hangar.Color) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	s.screen.SetContent(col, row, r, nil, style)
}

func (s *Screen) size() (int, int) {
	return s.screen.Size()
}
