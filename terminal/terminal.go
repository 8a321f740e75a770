// Package terminal owns the tcell screen lifecycle and the
// translation of raw terminal input into the game's typed events.
// Raw mode, mouse tracking and the hidden cursor are acquired in Init
// and must be released on every exit path; Fini handles the normal
// paths and EmergencyReset the panic paths, because leaving the
// terminal in raw mode corrupts the user's shell.
package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Init creates and initializes the screen: raw no-echo keyboard mode,
// all-motion mouse tracking and a hidden cursor.
func Init() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents, tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// Fini restores the terminal state.
func Fini(screen tcell.Screen) {
	screen.DisableMouse()
	screen.Fini()
}

// EmergencyReset writes the teardown escape sequences directly,
// bypassing tcell. Used from panic handlers where the screen object
// may no longer be trustworthy: disable mouse tracking, leave the
// alternate screen, restore the cursor and reset attributes.
func EmergencyReset(w io.Writer) {
	fmt.Fprint(w, "\x1b[?1003l\x1b[?1006l\x1b[?1049l\x1b[?25h\x1b[0m")
}
