package terminal

import "github.com/gdamore/tcell/v2"

// MouseEvent is a bitmask of button edges and motion observed in one
// terminal event. Buttons 1-3 are left, middle, right.
type MouseEvent uint32

const (
	Button1Pressed MouseEvent = 1 << iota
	Button1Released
	Button2Pressed
	Button2Released
	Button3Pressed
	Button3Released
	Drag
)

// Has reports whether all bits of f are set.
func (m MouseEvent) Has(f MouseEvent) bool {
	return m&f == f
}

// buttonMasks indexes the tcell mask and our edge bits per button.
var buttonMasks = [3]struct {
	tcell             tcell.ButtonMask
	pressed, released MouseEvent
}{
	{tcell.Button1, Button1Pressed, Button1Released},
	{tcell.Button2, Button2Pressed, Button2Released},
	{tcell.Button3, Button3Pressed, Button3Released},
}

// MouseState derives press/release edges from the button mask stream
// and deduplicates them with a per-button latch. The all-motion
// tracking mode this game runs under makes the terminal repeat the
// last button state on every hover movement, so a press is only
// reported when the button is not already latched and a release only
// when it is; anything else is a repeat and gets suppressed.
type MouseState struct {
	prev tcell.ButtonMask
	held [3]bool
}

// Apply consumes one raw button mask and returns the deduplicated
// edge events. Motion with any button latched is reported as a drag.
func (s *MouseState) Apply(mask tcell.ButtonMask) MouseEvent {
	var m MouseEvent
	for i, b := range buttonMasks {
		cur := mask&b.tcell != 0
		was := s.prev&b.tcell != 0
		switch {
		case cur && !was:
			if !s.held[i] {
				s.held[i] = true
				m |= b.pressed
			}
		case !cur && was:
			if s.held[i] {
				s.held[i] = false
				m |= b.released
			}
		}
	}
	s.prev = mask
	if m == 0 && (s.held[0] || s.held[1] || s.held[2]) {
		m |= Drag
	}
	return m
}

// Held reports whether the given button (1-3) is currently latched.
func (s *MouseState) Held(button int) bool {
	if button < 1 || button > 3 {
		return false
	}
	return s.held[button-1]
}
