// Package ui implements the widget tree, the event dispatcher and the
// render loop of the game. Widgets compose fixed-size screen regions:
// each one is anchored relative to its parent, draws through its
// parent's surface with purely additive coordinate translation, and
// receives positional events translated into its own frame.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"minesweeper/config"
	"minesweeper/terminal"
)

// Surface is a drawing target accepting clipped text writes. Widgets
// are surfaces for their children; the root widget draws onto the
// terminal screen surface.
type Surface interface {
	AddStr(y, x int, text string, style tcell.Style) error
}

// Widget is a node in the UI tree.
type Widget interface {
	Surface

	// Anchor returns the widget position relative to its parent.
	Anchor() (y, x int)
	Children() []Widget

	// MouseEvent receives a positional event already translated into
	// the widget's local frame.
	MouseEvent(y, x int, m terminal.MouseEvent)
	// KeyboardEvent receives a key routed to the focused widget.
	KeyboardEvent(key string)

	Render() error

	// SetAnimationFrame sets the reveal-wipe frame counter, cascading
	// to all descendants.
	SetAnimationFrame(frame int)
}

// Base carries the shared widget mechanics: anchor, children, the
// animation frame and the clipped parent-relative write.
type Base struct {
	parent   Surface
	cfg      *config.Config
	Y, X     int
	children []Widget
	frame    int
}

// NewBase initializes the embedded widget state.
func NewBase(parent Surface, cfg *config.Config, y, x int) Base {
	return Base{parent: parent, cfg: cfg, Y: y, X: x}
}

func (b *Base) Anchor() (int, int) { return b.Y, b.X }
func (b *Base) Children() []Widget { return b.children }

// AddChild appends a child widget. Ownership is exclusive; the tree
// has no cycles.
func (b *Base) AddChild(w Widget) {
	b.children = append(b.children, w)
}

// MouseEvent is a no-op placeholder; concrete widgets override it.
func (b *Base) MouseEvent(y, x int, m terminal.MouseEvent) {}

// KeyboardEvent is a no-op placeholder; concrete widgets override it.
func (b *Base) KeyboardEvent(key string) {}

// Render is a no-op placeholder; concrete widgets override it.
func (b *Base) Render() error { return nil }

// AnimationFrame returns the current reveal-wipe frame.
func (b *Base) AnimationFrame() int { return b.frame }

// SetAnimationFrame overwrites the frame counter on this widget and
// every descendant.
func (b *Base) SetAnimationFrame(frame int) {
	b.frame = frame
	for _, c := range b.children {
		c.SetAnimationFrame(frame)
	}
}

// AddStr writes text at a widget-local coordinate, delegating to the
// parent after translation. While the reveal-wipe animation is active
// any line below the current frame is suppressed. Out-of-surface
// writes surface as errors unless failures are configured to be
// ignored.
func (b *Base) AddStr(y, x int, text string, style tcell.Style) error {
	if b.cfg.ShowAnimation && y > b.frame {
		return nil
	}
	if err := b.parent.AddStr(y+b.Y, x+b.X, text, style); err != nil {
		if b.cfg.IgnoreFailures {
			return nil
		}
		return err
	}
	return nil
}

// DispatchMouse routes a positional event through the tree: children
// whose anchor lies at or before the coordinate see it first, each in
// its own translated frame, then the widget itself. Children observing
// events before their parent lets overlapping regions react most
// specific first.
func DispatchMouse(w Widget, y, x int, m terminal.MouseEvent) {
	for _, c := range w.Children() {
		cy, cx := c.Anchor()
		if y >= cy && x >= cx {
			DispatchMouse(c, y-cy, x-cx, m)
		}
	}
	w.MouseEvent(y, x, m)
}
