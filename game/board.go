package game

import (
	"fmt"
	"math/rand"
	"time"
)

// neighborOffsets covers the 8-cell neighborhood.
var neighborOffsets = [8][2]int{
	{1, 1}, {1, 0}, {1, -1},
	{-1, 1}, {-1, 0}, {-1, -1},
	{0, 1}, {0, -1},
}

// Board owns every cell of the minefield. It is created once per game
// session; Reset reuses the same cell objects for a new round so that
// widgets holding cell references stay valid.
type Board struct {
	Width, Height int
	MineCount     int

	// Grid is the row-major 2D arrangement, Cells the flat iteration
	// order. Both reference the same cell objects.
	Grid  [][]*Cell
	Cells []*Cell

	rng *rand.Rand
}

// NewBoard allocates all cells eagerly and computes the neighbor
// lists. Mines are not placed yet; that happens on the first reveal
// via InitMines. A mine count exceeding the cell count cannot be
// sampled without replacement and is rejected outright.
func NewBoard(width, height, mineCount int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board size %dx%d is not playable", width, height)
	}
	if mineCount < 0 || mineCount > width*height {
		return nil, fmt.Errorf("cannot place %d mines on a board with %d cells", mineCount, width*height)
	}

	b := &Board{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	b.Grid = make([][]*Cell, height)
	b.Cells = make([]*Cell, 0, width*height)
	for y := 0; y < height; y++ {
		b.Grid[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			cell := &Cell{Y: y, X: x}
			b.Grid[y][x] = cell
			b.Cells = append(b.Cells, cell)
		}
	}
	b.calcValues()
	return b, nil
}

// At returns the cell at (y, x).
func (b *Board) At(y, x int) *Cell {
	return b.Grid[y][x]
}

// calcValues recomputes every cell's neighbor list and mine-adjacency
// count from scratch. Safe to call repeatedly; it never accumulates.
func (b *Board) calcValues() {
	for _, c := range b.Cells {
		c.Value = 0
		c.Surroundings = c.Surroundings[:0]
		for _, d := range neighborOffsets {
			y, x := c.Y+d[0], c.X+d[1]
			if y < 0 || y >= b.Height || x < 0 || x >= b.Width {
				continue
			}
			n := b.Grid[y][x]
			if n.IsMine {
				c.Value++
			}
			c.Surroundings = append(c.Surroundings, n)
		}
	}
}

// InitMines places the mines after the first reveal target is known,
// guaranteeing the clicked cell is never a mine and, when the board
// allows it, sits in an open area (value 0). Placements violating that
// are discarded and retried, up to one attempt per cell on the board;
// pathological configurations (mine count close to cell count) then
// keep the last placement instead of looping forever.
func (b *Board) InitMines(clicked *Cell) {
	for attempt := 0; ; attempt++ {
		for _, i := range b.rng.Perm(len(b.Cells))[:b.MineCount] {
			b.Cells[i].SetMine()
		}
		b.calcValues()
		if !clicked.IsMine && clicked.Value == 0 {
			return
		}
		if attempt >= len(b.Cells) {
			// give up, the player asked for an impossible layout
			// such as a 3x3 board with 8 mines
			return
		}
		b.Reset()
	}
}

// CheckWin reports whether every safe cell has been revealed, i.e.
// the only unrevealed cells left are exactly the mines.
func (b *Board) CheckWin() bool {
	for _, c := range b.Cells {
		if !c.IsRevealed && !c.IsMine {
			return false
		}
	}
	return true
}

// RevealAll force-reveals every cell, bypassing flag and mine gating.
// Used to show the full board when the game ends.
func (b *Board) RevealAll() {
	for _, c := range b.Cells {
		c.Reveal(false, true)
	}
}

// Reset clears all per-cell mutable state in place so the same cell
// objects can serve a new round. Neighbor lists are rebuilt by the
// next InitMines call.
func (b *Board) Reset() {
	for _, c := range b.Cells {
		c.IsRevealed = false
		c.IsFlagged = false
		c.IsHighlighted = false
		c.IsExploded = false
		c.IsMine = false
		c.Value = 0
		c.Surroundings = c.Surroundings[:0]
	}
}

// FlagCount returns the number of currently flagged cells.
func (b *Board) FlagCount() int {
	count := 0
	for _, c := range b.Cells {
		if c.IsFlagged {
			count++
		}
	}
	return count
}
