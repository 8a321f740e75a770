package game

import (
	"math/rand"
	"testing"
)

func newTestBoard(t *testing.T, w, h, mines int) *Board {
	t.Helper()
	b, err := NewBoard(w, h, mines)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d, %d) failed: %v", w, h, mines, err)
	}
	b.rng = rand.New(rand.NewSource(1))
	return b
}

func TestNewBoardAllocatesAllCells(t *testing.T) {
	b := newTestBoard(t, 4, 3, 2)

	if len(b.Cells) != 12 {
		t.Errorf("Expected 12 cells, got %d", len(b.Cells))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := b.At(y, x)
			if c.Y != y || c.X != x {
				t.Errorf("Expected cell at (%d, %d), got (%d, %d)", y, x, c.Y, c.X)
			}
		}
	}

	// Corner cells have 3 neighbors, edges 5, interior 8
	if got := len(b.At(0, 0).Surroundings); got != 3 {
		t.Errorf("Expected corner to have 3 neighbors, got %d", got)
	}
	if got := len(b.At(0, 1).Surroundings); got != 5 {
		t.Errorf("Expected edge to have 5 neighbors, got %d", got)
	}
	if got := len(b.At(1, 1).Surroundings); got != 8 {
		t.Errorf("Expected interior to have 8 neighbors, got %d", got)
	}
}

func TestNewBoardRejectsImpossibleMineCount(t *testing.T) {
	if _, err := NewBoard(3, 3, 10); err == nil {
		t.Error("Expected error for mine count exceeding cell count")
	}
	if _, err := NewBoard(3, 3, -1); err == nil {
		t.Error("Expected error for negative mine count")
	}
	if _, err := NewBoard(0, 3, 0); err == nil {
		t.Error("Expected error for zero-width board")
	}
}

func TestInitMinesFirstClickIsSafe(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := newTestBoard(t, 9, 9, 10)
		b.rng = rand.New(rand.NewSource(seed))
		clicked := b.At(4, 4)
		b.InitMines(clicked)

		if clicked.IsMine {
			t.Errorf("seed %d: first clicked cell is a mine", seed)
		}
		if clicked.Value != 0 {
			t.Errorf("seed %d: expected first clicked cell value 0, got %d", seed, clicked.Value)
		}

		mines := 0
		for _, c := range b.Cells {
			if c.IsMine {
				mines++
			}
		}
		if mines != 10 {
			t.Errorf("seed %d: expected 10 mines, got %d", seed, mines)
		}
	}
}

func TestInitMinesPathologicalBoardTerminates(t *testing.T) {
	// 3x3 with 8 mines: no placement can leave the clicked cell open,
	// so the retry budget must exhaust and the last placement sticks.
	b := newTestBoard(t, 3, 3, 8)
	clicked := b.At(0, 0)
	b.InitMines(clicked)

	mines := 0
	for _, c := range b.Cells {
		if c.IsMine {
			mines++
		}
	}
	if mines != 8 {
		t.Errorf("Expected 8 mines after exhausted retries, got %d", mines)
	}
}

func TestValuesMatchSurroundings(t *testing.T) {
	b := newTestBoard(t, 8, 8, 12)
	b.InitMines(b.At(0, 0))

	for _, c := range b.Cells {
		want := 0
		for _, n := range c.Surroundings {
			if n.IsMine {
				want++
			}
		}
		if c.Value != want {
			t.Errorf("%v: value %d does not match %d mine neighbors", c, c.Value, want)
		}
	}
}

func TestRevealFlaggedIsNoop(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	c := b.At(1, 1)
	c.Flag()

	next, exploded := c.Reveal(true, false)
	if len(next) != 0 || exploded != nil {
		t.Error("Expected empty result from revealing a flagged cell")
	}
	if c.IsRevealed {
		t.Error("Expected flagged cell to stay unrevealed")
	}
	if !c.IsFlagged {
		t.Error("Expected the flag to survive the reveal attempt")
	}
}

func TestRevealMineDetonates(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	c := b.At(2, 2)
	c.SetMine()
	b.calcValues()

	_, exploded := c.Reveal(true, false)
	if exploded != c {
		t.Errorf("Expected the revealed mine to be reported as exploded, got %v", exploded)
	}
	if !c.IsRevealed {
		t.Error("Expected detonated cell to be revealed")
	}
}

func TestRevealForcedMineDoesNotDetonate(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	c := b.At(0, 0)
	c.SetMine()
	b.calcValues()

	if _, exploded := c.Reveal(false, true); exploded != nil {
		t.Error("Expected forced reveal of a mine not to detonate")
	}
}

func TestChainRevealFloodsOpenArea(t *testing.T) {
	// Single mine at (2, 2): (0, 0) has value 0 and the flood fill
	// must reach everything except the mine.
	b := newTestBoard(t, 3, 3, 0)
	mine := b.At(2, 2)
	mine.SetMine()
	b.calcValues()

	_, exploded := b.At(0, 0).Reveal(true, false)
	if exploded != nil {
		t.Fatalf("Expected no detonation, got %v", exploded)
	}
	for _, c := range b.Cells {
		if c == mine {
			if c.IsRevealed {
				t.Error("Expected the mine to stay unrevealed")
			}
			continue
		}
		if !c.IsRevealed {
			t.Errorf("Expected %v to be revealed by the flood fill", c)
		}
	}
	if !b.CheckWin() {
		t.Error("Expected the board to be won after flooding all safe cells")
	}
}

func TestRevealWithoutChainReturnsFront(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	b.At(2, 2).SetMine()
	b.calcValues()

	next, exploded := b.At(0, 0).Reveal(false, false)
	if exploded != nil {
		t.Fatalf("Expected no detonation, got %v", exploded)
	}
	if len(next) != 3 {
		t.Errorf("Expected the 3 unrevealed neighbors back, got %d", len(next))
	}
	for _, n := range next {
		if n.IsRevealed {
			t.Errorf("Expected %v to be left unrevealed for the caller", n)
		}
	}
}

func TestAreaRevealRequiresExactFlagMatch(t *testing.T) {
	// Layout: mines at (0, 0) and (0, 2), so (1, 1) has value 2.
	setup := func(t *testing.T) *Board {
		b := newTestBoard(t, 3, 3, 0)
		b.At(0, 0).SetMine()
		b.At(0, 2).SetMine()
		b.calcValues()
		b.At(1, 1).Reveal(false, false)
		return b
	}

	countRevealed := func(b *Board) int {
		n := 0
		for _, c := range b.Cells {
			if c.IsRevealed {
				n++
			}
		}
		return n
	}

	t.Run("one flag short", func(t *testing.T) {
		b := setup(t)
		b.At(0, 0).Flag()
		before := countRevealed(b)
		if _, exploded := b.At(1, 1).AreaReveal(true); exploded != nil {
			t.Error("Expected no detonation on refused chord")
		}
		if countRevealed(b) != before {
			t.Error("Expected no new reveals with one flag short")
		}
	})

	t.Run("one flag over", func(t *testing.T) {
		b := setup(t)
		b.At(0, 0).Flag()
		b.At(0, 2).Flag()
		b.At(1, 0).Flag()
		before := countRevealed(b)
		b.At(1, 1).AreaReveal(true)
		if countRevealed(b) != before {
			t.Error("Expected no new reveals with one flag over")
		}
	})

	t.Run("exact match", func(t *testing.T) {
		b := setup(t)
		b.At(0, 0).Flag()
		b.At(0, 2).Flag()
		if _, exploded := b.At(1, 1).AreaReveal(true); exploded != nil {
			t.Errorf("Expected correct chord not to detonate, got %v", exploded)
		}
		for _, c := range b.Cells {
			if c.IsFlagged {
				if c.IsRevealed {
					t.Errorf("Expected flagged %v to stay unrevealed", c)
				}
				continue
			}
			if !c.IsRevealed {
				t.Errorf("Expected %v to be revealed by the chord", c)
			}
		}
	})

	t.Run("misflagged chord detonates", func(t *testing.T) {
		b := setup(t)
		b.At(0, 0).Flag()
		b.At(0, 1).Flag() // wrong, (0, 2) is the other mine
		_, exploded := b.At(1, 1).AreaReveal(true)
		if exploded != b.At(0, 2) {
			t.Errorf("Expected the unflagged mine to detonate, got %v", exploded)
		}
	})

	t.Run("unrevealed cell refuses chord", func(t *testing.T) {
		b := newTestBoard(t, 3, 3, 0)
		if next, exploded := b.At(1, 1).AreaReveal(true); next != nil || exploded != nil {
			t.Error("Expected chord on unrevealed cell to be a no-op")
		}
	})
}

func TestFlagOnRevealedCellIsNoop(t *testing.T) {
	b := newTestBoard(t, 2, 2, 0)
	c := b.At(0, 0)
	c.Reveal(false, false)
	c.Flag()
	if c.IsFlagged {
		t.Error("Expected flagging a revealed cell to be refused")
	}
}

func TestHighlightBlocking(t *testing.T) {
	b := newTestBoard(t, 2, 2, 0)

	c := b.At(0, 0)
	c.Highlight(false)
	if !c.IsHighlighted {
		t.Error("Expected unrevealed cell to accept highlight")
	}
	c.Highlight(false)
	if c.IsHighlighted {
		t.Error("Expected second toggle to clear highlight")
	}

	c.Flag()
	c.Highlight(false)
	if c.IsHighlighted {
		t.Error("Expected flagged cell to refuse highlight")
	}
	c.Highlight(true)
	if !c.IsHighlighted {
		t.Error("Expected forced highlight to bypass the flag block")
	}

	r := b.At(1, 1)
	r.Reveal(false, false)
	r.Highlight(false)
	if r.IsHighlighted {
		t.Error("Expected revealed cell to refuse highlight")
	}
}

func TestRevealClearsHighlight(t *testing.T) {
	b := newTestBoard(t, 2, 2, 1)
	c := b.At(0, 0)
	c.Highlight(false)
	c.Reveal(false, false)
	if c.IsHighlighted {
		t.Error("Expected reveal to force-clear the highlight")
	}
}

func TestCheckWin(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	b.At(1, 1).SetMine()
	b.calcValues()

	if b.CheckWin() {
		t.Error("Expected fresh board not to be won")
	}
	for _, c := range b.Cells {
		if !c.IsMine {
			c.Reveal(false, false)
		}
	}
	if !b.CheckWin() {
		t.Error("Expected board with only the mine unrevealed to be won")
	}
}

func TestRevealAllBypassesGating(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	b.At(0, 0).SetMine()
	b.calcValues()
	b.At(0, 0).Flag()
	b.At(2, 2).Flag()

	b.RevealAll()
	for _, c := range b.Cells {
		if !c.IsRevealed {
			t.Errorf("Expected %v to be revealed by RevealAll", c)
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	b := newTestBoard(t, 4, 4, 3)
	b.InitMines(b.At(0, 0))
	b.At(3, 3).Flag()
	b.At(2, 2).Highlight(false)
	b.At(1, 1).Explode()

	type state struct {
		revealed, flagged, highlighted, exploded, mine bool
		value, neighbors                               int
	}
	snapshot := func() []state {
		out := make([]state, len(b.Cells))
		for i, c := range b.Cells {
			out[i] = state{
				revealed:    c.IsRevealed,
				flagged:     c.IsFlagged,
				highlighted: c.IsHighlighted,
				exploded:    c.IsExploded,
				mine:        c.IsMine,
				value:       c.Value,
				neighbors:   len(c.Surroundings),
			}
		}
		return out
	}

	b.Reset()
	first := snapshot()
	b.Reset()
	second := snapshot()

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cell %d differs between single and double reset: %+v vs %+v", i, first[i], second[i])
		}
		if first[i] != (state{}) {
			t.Errorf("cell %d not back to defaults after reset: %+v", i, first[i])
		}
	}
}

func TestValuesRecomputedAfterReset(t *testing.T) {
	b := newTestBoard(t, 5, 5, 5)
	b.InitMines(b.At(0, 0))
	b.Reset()
	b.InitMines(b.At(4, 4))

	for _, c := range b.Cells {
		want := 0
		for _, n := range c.Surroundings {
			if n.IsMine {
				want++
			}
		}
		if c.Value != want {
			t.Errorf("%v: value %d does not match %d mine neighbors after reset", c, c.Value, want)
		}
	}
}

func TestFlagCount(t *testing.T) {
	b := newTestBoard(t, 3, 3, 0)
	if b.FlagCount() != 0 {
		t.Errorf("Expected 0 flags, got %d", b.FlagCount())
	}
	b.At(0, 0).Flag()
	b.At(1, 2).Flag()
	if b.FlagCount() != 2 {
		t.Errorf("Expected 2 flags, got %d", b.FlagCount())
	}
	b.At(0, 0).Flag() // toggle off
	if b.FlagCount() != 1 {
		t.Errorf("Expected 1 flag after toggle, got %d", b.FlagCount())
	}
}

func TestOneByOneBoardWithZeroMines(t *testing.T) {
	b := newTestBoard(t, 1, 1, 0)
	c := b.At(0, 0)
	b.InitMines(c)

	if c.IsMine {
		t.Error("Expected the only cell never to be a mine with zero mines")
	}
	if _, exploded := c.Reveal(true, false); exploded != nil {
		t.Error("Expected the single reveal not to detonate")
	}
	if !b.CheckWin() {
		t.Error("Expected 1x1 zero-mine board to be won after one reveal")
	}
}

func TestZeroMinesDegeneratesToInstantWin(t *testing.T) {
	b := newTestBoard(t, 4, 4, 0)
	b.InitMines(b.At(1, 1))
	b.At(1, 1).Reveal(true, false)
	if !b.CheckWin() {
		t.Error("Expected a zero-mine board to be won after the first flood fill")
	}
}
