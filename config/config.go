// Package config holds the process-wide game configuration. The value
// is built once at startup from the command line and passed by pointer
// into the components that need it; it is treated as read-only during
// play except for the in-game emoji toggle.
package config

import "fmt"

// Layout constants shared with the UI: a cell is drawn 5 columns wide
// and 2 rows tall (plus one closing grid line), the grid sits at
// (GridY, GridX) inside the window and the sidebar needs SidebarWidth
// columns next to it.
const (
	CellWidth    = 5
	CellHeight   = 2
	GridY        = 6
	GridX        = 5
	SidebarGap   = 4
	SidebarWidth = 31
)

// Config is the complete set of game options.
type Config struct {
	BoardWidth  int
	BoardHeight int
	MineCount   int
	Difficulty  string

	UseEmojis      bool
	DarkMode       bool
	Framerate      int // frames per second, 0 = uncapped
	ShowAnimation  bool
	SilentChecks   bool
	IgnoreFailures bool
	Sound          bool
	Debug          bool
}

// Default returns the intermediate-difficulty configuration.
func Default() *Config {
	c := &Config{
		UseEmojis:     true,
		ShowAnimation: true,
		Sound:         true,
	}
	c.SetDifficulty("intermediate")
	return c
}

// SetDifficulty applies one of the preset board layouts.
func (c *Config) SetDifficulty(name string) {
	switch name {
	case "easy":
		c.BoardWidth, c.BoardHeight, c.MineCount = 9, 9, 10
	case "hard":
		c.BoardWidth, c.BoardHeight, c.MineCount = 30, 16, 99
	default:
		name = "intermediate"
		c.BoardWidth, c.BoardHeight, c.MineCount = 16, 16, 40
	}
	c.Difficulty = name
}

// SetCustom applies a custom board layout.
func (c *Config) SetCustom(width, height, mines int) {
	c.BoardWidth, c.BoardHeight, c.MineCount = width, height, mines
	c.Difficulty = "custom"
}

// Validate rejects configurations the game cannot start with. A mine
// count exceeding the cell count is fatal here rather than deep inside
// mine placement.
func (c *Config) Validate() error {
	if c.BoardWidth < 1 || c.BoardHeight < 1 {
		return fmt.Errorf("board size %dx%d is not playable", c.BoardWidth, c.BoardHeight)
	}
	if c.MineCount < 0 {
		return fmt.Errorf("mine count %d is negative", c.MineCount)
	}
	if cells := c.BoardWidth * c.BoardHeight; c.MineCount > cells {
		return fmt.Errorf("%d mines do not fit on a board with %d cells", c.MineCount, cells)
	}
	if c.Framerate < 0 {
		return fmt.Errorf("framerate %d is negative", c.Framerate)
	}
	return nil
}

// GridSize returns the character dimensions of the rendered grid
// including its closing border line.
func (c *Config) GridSize() (width, height int) {
	return c.BoardWidth*CellWidth + 1, c.BoardHeight*CellHeight + 1
}

// MinSize returns the smallest terminal window the full layout fits
// in: grid, sidebar and the outer window frame.
func (c *Config) MinSize() (width, height int) {
	gridW, gridH := c.GridSize()
	width = GridX + gridW + SidebarGap + SidebarWidth + 2
	height = GridY + gridH + 1
	if h := 4 + 21 + 1; height < h { // sidebar legend extent
		height = h
	}
	return width, height
}
