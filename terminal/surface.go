package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrInsufficientScreenSpace reports a draw that landed entirely
// outside the live terminal surface, which means the window is too
// small for the configured board.
var ErrInsufficientScreenSpace = errors.New("insufficient screen space")

// ScreenSurface draws clipped strings onto a tcell screen. Writes that
// partially overlap the screen are clipped; writes that land entirely
// outside it return ErrInsufficientScreenSpace so the caller can
// decide whether that is fatal.
type ScreenSurface struct {
	Screen tcell.Screen
}

// AddStr draws text starting at (y, x), advancing by display width so
// emojis and full-width glyphs occupy two columns.
func (s *ScreenSurface) AddStr(y, x int, text string, style tcell.Style) error {
	if text == "" {
		return nil
	}
	w, h := s.Screen.Size()
	if y < 0 || y >= h || x >= w {
		return ErrInsufficientScreenSpace
	}
	drawn := false
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= w {
			break
		}
		if x >= 0 {
			s.Screen.SetContent(x, y, r, nil, style)
			drawn = true
		}
		x += rw
	}
	if !drawn {
		return ErrInsufficientScreenSpace
	}
	return nil
}

// Size returns the surface dimensions as (height, width).
func (s *ScreenSurface) Size() (height, width int) {
	w, h := s.Screen.Size()
	return h, w
}
