package main

import (
	"fmt"
	"os"
	"time"

	"minesweeper/config"
	"minesweeper/ui"
)

// intro slow-prints the window chrome in the theme colors before the
// real screen takes over, so the game appears to materialize in
// place.
func intro(cfg *config.Config) {
	if !cfg.ShowAnimation {
		return
	}
	palette := ui.NewPalette(cfg)
	width, height := cfg.MinSize()

	fmt.Printf("\x1b[38;5;%dm\x1b[48;5;%dm", palette.FG, palette.BG)
	for _, line := range ui.FirstFrame(height, width) {
		printSlow(os.Stdout, line, 200*time.Microsecond)
		fmt.Print("\x1b[0m\n")
		fmt.Printf("\x1b[38;5;%dm\x1b[48;5;%dm", palette.FG, palette.BG)
	}
	fmt.Print("\x1b[0m")
}
