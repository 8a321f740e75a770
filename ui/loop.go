package ui

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"minesweeper/audio"
	"minesweeper/config"
	"minesweeper/terminal"
)

// animationDelay paces the reveal and wipe animations.
const animationDelay = 20 * time.Millisecond

// Mainloop runs the game until quit. Events are polled on their own
// goroutine and consumed one per tick; ticks without an event still
// render so hover highlights and the clock stay live.
func Mainloop(screen tcell.Screen, cfg *config.Config, sound *audio.Manager) error {
	root, err := NewRoot(screen, cfg, sound)
	if err != nil {
		return err
	}

	// raw events cross the channel; translation stays here so the
	// mouse latch has a single owning goroutine
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()
	tr := &terminal.Translator{Mouse: root.mouse}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	height, _ := root.surface.Size()
	frame := height
	if cfg.ShowAnimation {
		frame = 0
	}
	root.SetAnimationFrame(frame)

	interrupted := false
	for !root.ShouldExit() {
		if frame < height {
			frame++
			root.SetAnimationFrame(frame)
		}

		ev := terminal.Event{Type: terminal.EventNone}
		select {
		case raw := <-events:
			ev = tr.Translate(raw)
		case <-signals:
			interrupted = true
			root.Exit()
		case <-time.After(5 * time.Millisecond):
		}
		if err := root.Tick(ev); err != nil {
			return err
		}
		if frame < height {
			time.Sleep(animationDelay)
		}
	}

	if cfg.ShowAnimation && !interrupted {
		return wipeOut(root, tr, events, signals, frame)
	}
	return nil
}

// wipeOut wipes the window back out, bottom line first. The screen is
// still in raw mode here, so an impatient Ctrl-C arrives as a key
// event rather than a signal; both skip straight to the end.
func wipeOut(root *RootWidget, tr *terminal.Translator, events chan tcell.Event, signals chan os.Signal, frame int) error {
	for frame > 0 {
		frame--
		root.SetAnimationFrame(frame)
		root.screen.Fill(' ', root.palette.Default)
		if err := root.Render(); err != nil {
			return err
		}
		select {
		case <-signals:
			frame = 0
		case raw := <-events:
			if t := tr.Translate(raw).Type; t == terminal.EventQuit || t == terminal.EventClosed {
				frame = 0
			}
		case <-time.After(animationDelay):
		}
	}
	return nil
}

// FirstFrame returns the window chrome as plain text lines, used by
// the slow-print intro before the screen takes over.
func FirstFrame(height, width int) []string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
		grid[y][0], grid[y][width-1] = '│', '│'
	}
	put := func(y, x int, s string) {
		for i, r := range []rune(s) {
			grid[y][x+i] = r
		}
	}
	put(0, 0, "╭"+strings.Repeat("─", width-2)+"╮")
	put(height-1, 0, "╰"+strings.Repeat("─", width-2)+"╯")
	title := " TERMINAL MINESWEEPER "
	put(0, (width-len(title))/2, title)
	put(0, 7, "┬")
	put(1, 7, "│")
	put(2, 0, "├──────┴")
	// the full-width close glyph covers two columns
	grid[1][2] = 'Ｘ'
	grid[1] = append(grid[1][:3], grid[1][4:]...)

	lines := make([]string, height)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return lines
}
