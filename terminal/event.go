package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// EventType classifies a polled terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventMouse
	EventKey
	EventResize
	EventQuit
	EventClosed
)

// Key names for non-rune keys. Rune keys are their lowercased rune.
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyLeft  = "left"
	KeyRight = "right"
	KeyEnter = "\n"
)

// Event is one typed input event. Mouse events carry the cursor
// position and the deduplicated button edges; key events carry the
// key name.
type Event struct {
	Type  EventType
	Y, X  int
	Mouse MouseEvent
	Key   string
}

// Translator converts tcell events into game events, maintaining the
// mouse button latch across calls. The latch state is shared with the
// consumer, which reads the held buttons between events.
type Translator struct {
	Mouse *MouseState
}

// Translate converts one tcell event. A nil event (closed screen)
// becomes EventClosed.
func (t *Translator) Translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Y: h, X: w}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{Type: EventMouse, Y: y, X: x, Mouse: t.Mouse.Apply(ev.Buttons())}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return Event{Type: EventKey, Key: KeyUp}
		case tcell.KeyDown:
			return Event{Type: EventKey, Key: KeyDown}
		case tcell.KeyLeft:
			return Event{Type: EventKey, Key: KeyLeft}
		case tcell.KeyRight:
			return Event{Type: EventKey, Key: KeyRight}
		case tcell.KeyEnter:
			return Event{Type: EventKey, Key: KeyEnter}
		case tcell.KeyEscape, tcell.KeyCtrlC:
			// raw mode swallows SIGINT, so Ctrl-C arrives as a key
			return Event{Type: EventQuit}
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: strings.ToLower(string(ev.Rune()))}
		}
	}
	return Event{Type: EventNone}
}
