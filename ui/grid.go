package ui

import (
	"strings"

	"minesweeper/box"
	"minesweeper/config"
	"minesweeper/game"
)

// GridWidget renders the minefield with box-drawing borders and owns
// the transient highlight set plus the keyboard cursor. Cells are
// drawn 5 columns by 2 rows so the board comes out approximately
// square with full-width glyphs.
type GridWidget struct {
	Base
	root  *RootWidget
	board *game.Board
	cells []*CellWidget

	// selected is the keyboard cursor, as a flat cell index.
	selected int

	// highlighted tracks the cells lit by hover or middle-drag so
	// they can be cleared in one sweep.
	highlighted map[*game.Cell]struct{}
	lastClear   int
}

// NewGridWidget builds the grid and one child widget per cell.
func NewGridWidget(root *RootWidget, board *game.Board) *GridWidget {
	g := &GridWidget{
		Base:        NewBase(root, root.cfg, config.GridY, config.GridX),
		root:        root,
		board:       board,
		highlighted: make(map[*game.Cell]struct{}),
	}
	for i, cell := range board.Cells {
		w := NewCellWidget(g, root, cell, i)
		g.cells = append(g.cells, w)
		g.AddChild(w)
	}
	return g
}

// highlight lights a cell and tracks it for the next sweep.
func (g *GridWidget) highlight(c *game.Cell, force bool) {
	if !c.IsHighlighted {
		c.Highlight(force)
		g.highlighted[c] = struct{}{}
	}
}

// ClearHighlight clears every tracked highlight. Cells that lost
// their highlight some other way (reveal force-clears it) are simply
// dropped.
func (g *GridWidget) ClearHighlight() {
	for c := range g.highlighted {
		if c.IsHighlighted {
			c.Highlight(false)
		}
		delete(g.highlighted, c)
	}
	g.lastClear = g.root.frameCount
}

// KeyboardEvent moves the keyboard cursor or forwards the key to the
// selected cell. Using the navigation keys puts the game in keyboard
// mode until the mouse moves again.
func (g *GridWidget) KeyboardEvent(key string) {
	switch key {
	case "up", "w":
		g.selected -= g.board.Width
	case "down", "s":
		g.selected += g.board.Width
	case "left", "a":
		g.selected--
	case "right", "d":
		g.selected++
	default:
		g.cells[g.selected].KeyboardEvent(key)
		return
	}
	g.root.keyboardMode = true
	g.selected = ((g.selected % len(g.cells)) + len(g.cells)) % len(g.cells)
}

// Render draws the border lattice and then the cells. The lattice is
// resolved per 2x2 cell cluster: sides facing unrevealed cells stay
// heavy, sides facing revealed cells drop to light, and the junction
// glyph between four cells follows from the four edge weights.
func (g *GridWidget) Render() error {
	width := g.board.Width*config.CellWidth + 1
	height := g.board.Height*config.CellHeight + 1
	style := g.root.palette.Default

	vert := func(up, down bool) string {
		return string(box.Rune(box.Weight(up), box.Weight(down), box.None, box.None))
	}
	horiz := func(left, right bool) string {
		return strings.Repeat(string(box.Rune(box.None, box.None, box.Weight(left), box.Weight(right))), 4)
	}

	for x := 0; x < g.board.Width-1; x++ {
		for y := 0; y < g.board.Height-1; y++ {
			tl := !g.board.At(y, x).IsRevealed
			tr := !g.board.At(y, x+1).IsRevealed
			bl := !g.board.At(y+1, x).IsRevealed
			br := !g.board.At(y+1, x+1).IsRevealed

			// left board edge
			if x == 0 {
				if err := g.AddStr(y*2+1, 0, vert(tl, tl), style); err != nil {
					return err
				}
				if err := g.AddStr(y*2+3, 0, vert(bl, bl), style); err != nil {
					return err
				}
				tee := box.Rune(box.Weight(tl), box.Weight(bl), box.None, box.Weight(tl || bl))
				if err := g.AddStr(y*2+2, 0, string(tee), style); err != nil {
					return err
				}
			}
			// right board edge
			if x == g.board.Width-2 {
				if err := g.AddStr(y*2+1, x*5+10, vert(tr, tr), style); err != nil {
					return err
				}
				if err := g.AddStr(y*2+3, x*5+10, vert(br, br), style); err != nil {
					return err
				}
				tee := box.Rune(box.Weight(tr), box.Weight(br), box.Weight(tr || br), box.None)
				if err := g.AddStr(y*2+2, x*5+10, string(tee), style); err != nil {
					return err
				}
			}
			// top board edge
			if y == 0 {
				if err := g.AddStr(0, x*5+1, horiz(tl, tl), style); err != nil {
					return err
				}
				if err := g.AddStr(0, x*5+6, horiz(tr, tr), style); err != nil {
					return err
				}
				tee := box.Rune(box.None, box.Weight(tl || tr), box.Weight(tl), box.Weight(tr))
				if err := g.AddStr(0, x*5+5, string(tee), style); err != nil {
					return err
				}
			}
			// bottom board edge
			if y == g.board.Height-2 {
				if err := g.AddStr(y*2+4, x*5+1, horiz(bl, bl), style); err != nil {
					return err
				}
				if err := g.AddStr(y*2+4, x*5+6, horiz(br, br), style); err != nil {
					return err
				}
				tee := box.Rune(box.Weight(bl || br), box.None, box.Weight(bl), box.Weight(br))
				if err := g.AddStr(y*2+4, x*5+5, string(tee), style); err != nil {
					return err
				}
			}

			// interior lines around the cluster
			if err := g.AddStr(y*2+2, x*5+1, horiz(tl || bl, tl || bl), style); err != nil {
				return err
			}
			if err := g.AddStr(y*2+2, x*5+6, horiz(tr || br, tr || br), style); err != nil {
				return err
			}
			if err := g.AddStr(y*2+1, x*5+5, vert(tl || tr, tl || tr), style); err != nil {
				return err
			}
			if err := g.AddStr(y*2+3, x*5+5, vert(bl || br, bl || br), style); err != nil {
				return err
			}

			// the junction at the cluster center
			center := box.Rune(
				box.Weight(tl || tr),
				box.Weight(bl || br),
				box.Weight(tl || bl),
				box.Weight(tr || br),
			)
			if err := g.AddStr(y*2+2, x*5+5, string(center), style); err != nil {
				return err
			}
		}
	}

	// board corners
	tl := !g.board.At(0, 0).IsRevealed
	tr := !g.board.At(0, g.board.Width-1).IsRevealed
	bl := !g.board.At(g.board.Height-1, 0).IsRevealed
	br := !g.board.At(g.board.Height-1, g.board.Width-1).IsRevealed

	corners := []struct {
		y, x  int
		glyph rune
	}{
		{0, 0, box.Rune(box.None, box.Weight(tl), box.None, box.Weight(tl))},
		{0, width - 1, box.Rune(box.None, box.Weight(tr), box.Weight(tr), box.None)},
		{height - 1, 0, box.Rune(box.Weight(bl), box.None, box.None, box.Weight(bl))},
		{height - 1, width - 1, box.Rune(box.Weight(br), box.None, box.Weight(br), box.None)},
	}
	for _, c := range corners {
		if err := g.AddStr(c.y, c.x, string(c.glyph), style); err != nil {
			return err
		}
	}

	if g.root.keyboardMode {
		g.cells[g.selected].highlight(true)
	}

	for _, w := range g.cells {
		if err := w.Render(); err != nil {
			return err
		}
	}

	// sweep stale hover highlights every ~50ms unless a middle-drag
	// highlight is being held
	if !g.root.mouse.Held(2) && g.root.frameCount > g.lastClear+int(g.root.monitor.FPS()/20) {
		g.ClearHighlight()
		if !g.root.gameOver {
			g.root.status.SetFace(faceIdle)
		}
	}
	return nil
}
