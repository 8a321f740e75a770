package ui

import (
	"minesweeper/config"
	"minesweeper/game"
	"minesweeper/terminal"
)

// Cell glyphs, emoji and plain full-width variants.
const (
	glyphExploded      = "💥"
	glyphExplodedPlain = "＊"
	glyphFlaggedMine   = "🏁"
	glyphFlaggedPlain  = "Ｘ"
	glyphMine          = "💣"
	glyphMinePlain     = "Ｏ"
	glyphFlag          = "🚩"
	glyphFlagPlain     = "Ｆ"
	glyphBlank         = "　"
)

// cellGlyph picks the display string for a cell. numeric is true when
// the glyph is a revealed adjacency digit, which is colored by value
// rather than drawn in the window colors.
func cellGlyph(c *game.Cell, emoji bool) (glyph string, numeric bool) {
	pick := func(e, p string) string {
		if emoji {
			return e
		}
		return p
	}
	switch {
	case c.IsExploded:
		return pick(glyphExploded, glyphExplodedPlain), false
	case c.IsRevealed && c.IsMine:
		if c.IsFlagged {
			return pick(glyphFlaggedMine, glyphFlaggedPlain), false
		}
		return pick(glyphMine, glyphMinePlain), false
	case c.IsFlagged:
		return pick(glyphFlag, glyphFlagPlain), false
	case c.IsRevealed:
		if c.Value == 0 {
			return glyphBlank, false
		}
		// full-width digits keep the cells square-ish
		return string(rune(0xff10 + c.Value)), true
	default:
		return glyphBlank, false
	}
}

// CellWidget is the interactive 1x5 region of a single cell. It
// translates mouse and keyboard input into board mutations and draws
// the cell glyph with highlight framing.
type CellWidget struct {
	Base
	root  *RootWidget
	grid  *GridWidget
	cell  *game.Cell
	index int
}

// NewCellWidget places the widget inside the grid at the cell's
// interior position.
func NewCellWidget(grid *GridWidget, root *RootWidget, cell *game.Cell, index int) *CellWidget {
	return &CellWidget{
		Base:  NewBase(grid, root.cfg, cell.Y*config.CellHeight+1, cell.X*config.CellWidth+1),
		root:  root,
		grid:  grid,
		cell:  cell,
		index: index,
	}
}

// MouseEvent handles reveal, flag, chord and hover for this cell. The
// event was already translated into the cell frame; anything outside
// the 1x5 interior belongs to a neighbor and is ignored.
func (w *CellWidget) MouseEvent(y, x int, m terminal.MouseEvent) {
	if y != 0 || x > 4 {
		return
	}
	if w.root.gameOver && !w.root.gameStart {
		return
	}

	if m.Has(terminal.Button2Released) {
		w.areaReveal()
	}
	if m.Has(terminal.Button2Pressed) || (w.root.mouse.Held(2) && m.Has(terminal.Drag)) {
		w.areaHighlight()
	}
	if m.Has(terminal.Button1Released) {
		w.reveal()
	}
	if m.Has(terminal.Button3Released) {
		w.flag()
	}

	w.highlight(false)
	w.grid.selected = w.index
}

// KeyboardEvent handles the keyboard-cursor operations on the
// selected cell.
func (w *CellWidget) KeyboardEvent(key string) {
	switch key {
	case " ":
		w.areaReveal()
		w.areaHighlight()
	case "q":
		w.reveal()
	case "e":
		w.flag()
	}
}

// reveal uncovers the cell. The first reveal of a round starts the
// game and triggers the deferred mine placement centered here.
func (w *CellWidget) reveal() {
	w.root.debugf("%v: reveal", w.cell)
	if w.root.gameStart {
		w.root.startGame(w.cell)
	}
	if _, exploded := w.cell.Reveal(true, false); exploded != nil {
		w.root.lose(exploded)
		return
	}
	w.root.sound.Reveal()
}

// areaReveal chords the 3x3 area centered here, which only succeeds
// when the adjacent flags match the cell value.
func (w *CellWidget) areaReveal() {
	w.root.debugf("%v: area reveal", w.cell)
	w.grid.ClearHighlight()
	if _, exploded := w.cell.AreaReveal(true); exploded != nil {
		w.root.lose(exploded)
	}
}

// areaHighlight highlights the 3x3 area centered here while the
// middle button is held.
func (w *CellWidget) areaHighlight() {
	w.root.debugf("%v: area highlight", w.cell)
	w.grid.ClearHighlight()
	for _, c := range w.cell.Surroundings {
		w.grid.highlight(c, false)
	}
	w.grid.highlight(w.cell, false)
}

// flag toggles the flag, ignored before the first reveal and after
// the game ended.
func (w *CellWidget) flag() {
	w.root.debugf("%v: flag", w.cell)
	if !w.root.gameStart && !w.root.gameOver {
		w.cell.Flag()
		w.root.sound.Flag()
	}
}

// highlight marks this cell hovered/selected.
func (w *CellWidget) highlight(force bool) {
	w.grid.highlight(w.cell, force)
}

// Render draws the glyph. Numbered cells color by value and get their
// highlight painted beside the digit; everything else is drawn in the
// window colors with a highlight frame around the glyph.
func (w *CellWidget) Render() error {
	glyph, numeric := cellGlyph(w.cell, w.root.cfg.UseEmojis)
	if !numeric {
		if w.cell.IsHighlighted {
			return w.AddStr(0, 0, " "+glyph+" ", w.root.palette.Highlight)
		}
		return w.AddStr(0, 1, glyph, w.root.palette.Default)
	}
	if w.cell.IsHighlighted {
		if err := w.AddStr(0, 0, " ", w.root.palette.Highlight); err != nil {
			return err
		}
		if err := w.AddStr(0, 3, " ", w.root.palette.Highlight); err != nil {
			return err
		}
	}
	return w.AddStr(0, 1, glyph, w.root.palette.Cell(w.cell.Value, w.cell.IsHighlighted))
}
