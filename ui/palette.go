package ui

import (
	"github.com/gdamore/tcell/v2"

	"minesweeper/config"
)

// 256-color palette indices for the two window themes.
const (
	lightFG          = 232
	lightBG          = 231
	lightHighlightBG = 250
	darkFG           = 255
	darkBG           = 237
	darkHighlightBG  = 242
)

// Palette resolves the window colors for the configured theme. Cell
// values 1-8 each get their own foreground on top of the shared
// window background.
type Palette struct {
	FG, BG    int // 256-color indices, exported for the ANSI intro frames
	Default   tcell.Style
	Highlight tcell.Style

	highlightBG int
	values      [9]int
}

// NewPalette builds the palette for the given configuration.
func NewPalette(cfg *config.Config) *Palette {
	p := &Palette{}
	if cfg.DarkMode {
		p.FG, p.BG, p.highlightBG = darkFG, darkBG, darkHighlightBG
	} else {
		p.FG, p.BG, p.highlightBG = lightFG, lightBG, lightHighlightBG
	}
	p.values = [9]int{p.FG, 12, 2, 9, 4, 1, 6, 0, 8}
	p.Default = tcell.StyleDefault.
		Foreground(tcell.PaletteColor(p.FG)).
		Background(tcell.PaletteColor(p.BG))
	p.Highlight = tcell.StyleDefault.
		Foreground(tcell.PaletteColor(p.FG)).
		Background(tcell.PaletteColor(p.highlightBG))
	return p
}

// Cell returns the style for a revealed cell value, bold like the
// classic number colors.
func (p *Palette) Cell(value int, highlighted bool) tcell.Style {
	if value < 0 || value > 8 {
		value = 0
	}
	bg := p.BG
	if highlighted {
		bg = p.highlightBG
	}
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(p.values[value])).
		Background(tcell.PaletteColor(bg)).
		Bold(true)
}
