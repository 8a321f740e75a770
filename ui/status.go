package ui

import "minesweeper/terminal"

// Status faces.
const (
	faceIdle      = "🙂"
	faceSurprised = "😲"
	faceDead      = "😵"
	faceCool      = "😎"
)

// StatusWidget shows the game face in the sidebar. Clicking it
// restarts the round, like the classic smiley button.
type StatusWidget struct {
	Base
	root *RootWidget
	face string
}

func NewStatusWidget(root *RootWidget, y, x int) *StatusWidget {
	return &StatusWidget{
		Base: NewBase(root, root.cfg, y, x),
		root: root,
		face: faceIdle,
	}
}

func (w *StatusWidget) SetFace(face string) {
	w.face = face
}

func (w *StatusWidget) Face() string {
	return w.face
}

// MouseEvent restarts on click. The widget is emoji-only, hence so is
// the restart button.
func (w *StatusWidget) MouseEvent(y, x int, m terminal.MouseEvent) {
	if y != 0 || x > 2 || !w.root.cfg.UseEmojis {
		return
	}
	if m.Has(terminal.Button1Pressed) {
		w.root.Restart()
	}
}

func (w *StatusWidget) Render() error {
	if !w.root.cfg.UseEmojis {
		return nil
	}
	return w.AddStr(0, 0, w.face, w.root.palette.Default)
}
