package game

import "fmt"

// Cell is a single square of the minefield. Cells are allocated once
// per board and reused across restarts, so widgets can hold references
// to them for the whole session.
type Cell struct {
	Y, X int

	IsRevealed    bool
	IsFlagged     bool
	IsHighlighted bool
	IsExploded    bool
	IsMine        bool

	// Value is the number of mines among Surroundings. It is only
	// meaningful once mines have been placed.
	Value int

	// Surroundings holds the in-bounds neighbors, at most 8. It is
	// populated by Board.calcValues.
	Surroundings []*Cell
}

// Flag toggles the flagged state. Flagging a revealed cell is a no-op.
func (c *Cell) Flag() {
	if !c.IsRevealed {
		c.IsFlagged = !c.IsFlagged
	}
}

// Explode marks the cell as the one that detonated.
func (c *Cell) Explode() {
	c.IsExploded = true
}

// SetMine marks the cell as a mine.
func (c *Cell) SetMine() {
	c.IsMine = true
}

// Highlight toggles the transient hover/selection highlight. Unless
// forced, revealed and flagged cells cannot be highlighted; the
// highlight is cleared instead. Force is used for the keyboard cursor,
// which must stay visible regardless of cell state.
func (c *Cell) Highlight(force bool) {
	switch {
	case force:
		c.IsHighlighted = !c.IsHighlighted
	case !c.IsRevealed && !c.IsFlagged:
		c.IsHighlighted = !c.IsHighlighted
	default:
		c.IsHighlighted = false
	}
}

// Reveal uncovers the cell. A flagged cell is left untouched unless
// force is set. If the cell is a mine and the reveal was not forced,
// the detonated cell is returned as exploded and the caller is
// expected to end the game.
//
// When the cell has no adjacent mines its unrevealed neighbors are the
// next reveal front: with chain set they are revealed recursively
// (flood fill), otherwise they are returned so the caller can batch or
// animate the reveal itself.
func (c *Cell) Reveal(chain, force bool) (next []*Cell, exploded *Cell) {
	if c.IsFlagged && !force {
		return nil, nil
	}
	c.IsRevealed = true
	c.IsHighlighted = false
	if c.IsMine && !force {
		return nil, c
	}
	if c.Value == 0 {
		for _, n := range c.Surroundings {
			if !n.IsRevealed {
				next = append(next, n)
			}
		}
		if chain {
			for _, n := range next {
				if _, ex := n.Reveal(chain, force); ex != nil {
					exploded = ex
				}
			}
			return nil, exploded
		}
		return next, nil
	}
	return nil, nil
}

// AreaReveal is the chorded reveal: if the cell is revealed and the
// number of flagged neighbors equals its value, every non-flagged
// neighbor is revealed. A flag count mismatch is a no-op.
func (c *Cell) AreaReveal(chain bool) (next []*Cell, exploded *Cell) {
	if !c.IsRevealed {
		return nil, nil
	}
	flags := 0
	for _, n := range c.Surroundings {
		if n.IsFlagged {
			flags++
		}
	}
	if flags != c.Value {
		return nil, nil
	}
	for _, n := range c.Surroundings {
		if n.IsFlagged {
			continue
		}
		more, ex := n.Reveal(chain, false)
		next = append(next, more...)
		if ex != nil {
			exploded = ex
		}
	}
	return next, exploded
}

func (c *Cell) String() string {
	return fmt.Sprintf("<Cell %d at (%d, %d)>", c.Value, c.Y, c.X)
}
