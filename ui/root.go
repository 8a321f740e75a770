package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"minesweeper/audio"
	"minesweeper/config"
	"minesweeper/debug"
	"minesweeper/game"
	"minesweeper/terminal"
)

// RootWidget owns the whole window: the board, the grid and status
// widgets, the frame pacing and the game round state. It is the top
// of the widget tree and draws directly onto the screen surface.
type RootWidget struct {
	Base
	cfg     *config.Config
	screen  tcell.Screen
	surface *terminal.ScreenSurface
	palette *Palette

	board  *game.Board
	grid   *GridWidget
	status *StatusWidget
	sound  *audio.Manager

	monitor *FPSMonitor
	mouse   *terminal.MouseState

	mouseY, mouseX int
	keyboardMode   bool

	// gameStart is true while the round waits for the first reveal,
	// which triggers the deferred mine placement.
	gameStart  bool
	gameOver   bool
	shouldExit bool

	timeStarted time.Time
	timeTaken   string
	frameCount  int

	statusY, statusX int
}

// NewRoot builds the widget tree for the configured board.
func NewRoot(screen tcell.Screen, cfg *config.Config, sound *audio.Manager) (*RootWidget, error) {
	board, err := game.NewBoard(cfg.BoardWidth, cfg.BoardHeight, cfg.MineCount)
	if err != nil {
		return nil, err
	}
	surface := &terminal.ScreenSurface{Screen: screen}
	r := &RootWidget{
		cfg:       cfg,
		screen:    screen,
		surface:   surface,
		palette:   NewPalette(cfg),
		board:     board,
		sound:     sound,
		monitor:   NewFPSMonitor(cfg.Framerate),
		mouse:     &terminal.MouseState{},
		gameStart: true,
		timeTaken: "00:00.00",
		statusY:   4,
		statusX:   config.GridX + cfg.BoardWidth*config.CellWidth + config.SidebarGap,
	}
	r.Base = NewBase(surface, cfg, 0, 0)
	r.grid = NewGridWidget(r, board)
	r.status = NewStatusWidget(r, r.statusY+1, r.statusX+14)
	r.AddChild(r.grid)
	r.AddChild(r.status)
	return r, nil
}

// ShouldExit reports whether the main loop should wind down.
func (r *RootWidget) ShouldExit() bool { return r.shouldExit }

// Exit asks the main loop to wind down after the current frame.
func (r *RootWidget) Exit() { r.shouldExit = true }

// Tick processes one translated event and renders a frame. With a
// framerate cap configured, frames arriving too early still process
// their event but skip the render, so input never lags behind the
// cap.
func (r *RootWidget) Tick(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventQuit, terminal.EventClosed:
		r.Exit()
		return nil
	case terminal.EventResize:
		r.screen.Sync()
	case terminal.EventKey:
		// a held middle button owns the keyboard highlight
		if !r.mouse.Held(2) {
			r.KeyboardEvent(ev.Key)
		}
	case terminal.EventMouse:
		r.keyboardMode = false
		r.mouseY, r.mouseX = ev.Y, ev.X
		DispatchMouse(r, ev.Y, ev.X, ev.Mouse)
	case terminal.EventNone:
		// keep the hovered cell highlighted between real events
		if !r.keyboardMode {
			DispatchMouse(r, r.mouseY, r.mouseX, 0)
		}
	}

	if r.cfg.Framerate > 0 {
		interval := time.Second / time.Duration(r.cfg.Framerate)
		if time.Since(r.monitor.LastFrame()) < interval {
			return nil
		}
	}
	return r.Render()
}

// Render draws the full frame and flushes it to the terminal.
func (r *RootWidget) Render() error {
	r.frameCount++
	r.monitor.Tick()
	r.screen.Fill(' ', r.palette.Default)

	if !r.gameOver && !r.gameStart && r.board.CheckWin() {
		r.win()
	}

	if err := r.paintWindow(); err != nil {
		return err
	}
	if err := r.paintSidebar(); err != nil {
		return err
	}
	if err := r.grid.Render(); err != nil {
		return err
	}
	if err := r.status.Render(); err != nil {
		return err
	}

	// mouse position marker, allowed to fall off the window
	if !r.keyboardMode {
		_ = r.surface.AddStr(r.mouseY, r.mouseX, "◆", r.palette.Default)
	}

	r.screen.Show()
	return nil
}

// MouseEvent handles the window chrome: the close button and the
// surprised face while a chord is held anywhere.
func (r *RootWidget) MouseEvent(y, x int, m terminal.MouseEvent) {
	if y == 1 && x >= 2 && x <= 5 && m.Has(terminal.Button1Pressed) {
		r.Exit()
		return
	}
	if m.Has(terminal.Button2Pressed) && !r.gameOver {
		r.status.SetFace(faceSurprised)
	}
}

// KeyboardEvent handles the global keys and forwards the rest to the
// grid, which owns the keyboard cursor.
func (r *RootWidget) KeyboardEvent(key string) {
	switch key {
	case "t":
		r.cfg.UseEmojis = !r.cfg.UseEmojis
		return
	case "\n":
		r.Restart()
		return
	case " ":
		if !r.gameOver {
			r.status.SetFace(faceSurprised)
		}
	}
	r.grid.KeyboardEvent(key)
}

// startGame places the mines away from the first revealed cell and
// starts the clock.
func (r *RootWidget) startGame(first *game.Cell) {
	r.debugf("starting round at %v", first)
	r.board.InitMines(first)
	r.gameStart = false
	r.timeStarted = time.Now()
}

// lose ends the round on a detonated mine.
func (r *RootWidget) lose(exploded *game.Cell) {
	r.debugf("%v: detonated", exploded)
	r.gameOver = true
	exploded.Explode()
	r.board.RevealAll()
	r.status.SetFace(faceDead)
	r.sound.Explosion()
}

// win ends the round with every safe cell revealed.
func (r *RootWidget) win() {
	r.debugf("round won in %s", r.timeTaken)
	r.gameOver = true
	r.board.RevealAll()
	r.status.SetFace(faceCool)
	r.sound.Win()
}

// Restart resets the round without rebuilding the widget tree.
func (r *RootWidget) Restart() {
	r.debugf("restarting")
	r.board.Reset()
	r.grid.ClearHighlight()
	r.gameStart = true
	r.gameOver = false
	r.timeTaken = "00:00.00"
	r.status.SetFace(faceIdle)
}

// paintWindow draws the window frame, the title and the close button
// directly on the screen surface, bypassing the animation gate so the
// chrome is always intact.
func (r *RootWidget) paintWindow() error {
	width, height := r.cfg.MinSize()
	style := r.palette.Default

	horiz := strings.Repeat("─", width-2)
	if err := r.surface.AddStr(0, 0, "╭"+horiz+"╮", style); err != nil {
		return err
	}
	if err := r.surface.AddStr(height-1, 0, "╰"+horiz+"╯", style); err != nil {
		return err
	}
	for y := 1; y < height-1; y++ {
		if err := r.surface.AddStr(y, 0, "│", style); err != nil {
			return err
		}
		if err := r.surface.AddStr(y, width-1, "│", style); err != nil {
			return err
		}
	}

	title := " TERMINAL MINESWEEPER "
	if err := r.surface.AddStr(0, (width-len(title))/2, title, style); err != nil {
		return err
	}

	// close button box in the top-left corner
	if err := r.surface.AddStr(0, 7, "┬", style); err != nil {
		return err
	}
	if err := r.surface.AddStr(1, 7, "│", style); err != nil {
		return err
	}
	if err := r.surface.AddStr(2, 0, "├──────┴", style); err != nil {
		return err
	}
	closeStyle := style
	if !r.keyboardMode && r.mouseY == 1 && r.mouseX >= 2 && r.mouseX <= 5 {
		closeStyle = r.palette.Highlight
	}
	return r.surface.AddStr(1, 3, "Ｘ", closeStyle)
}

// paintSidebar draws the clock, the flag counter and the legends next
// to the grid.
func (r *RootWidget) paintSidebar() error {
	style := r.palette.Default

	if !r.gameStart && !r.gameOver {
		d := time.Since(r.timeStarted)
		r.timeTaken = fmt.Sprintf("%02d:%02d.%02d",
			int(d.Minutes()), int(d.Seconds())%60, int(d.Milliseconds()/10)%100)
	}
	if err := r.AddStr(r.statusY, r.statusX, "TIME  "+r.timeTaken, style); err != nil {
		return err
	}
	if err := r.AddStr(r.statusY, r.statusX+18, fmt.Sprintf("FPS %6.2f", r.monitor.FPS()), style); err != nil {
		return err
	}

	// mines left to flag, counting down; over-flagging goes negative
	remaining := r.cfg.MineCount - r.board.FlagCount()
	var counter string
	switch {
	case r.cfg.UseEmojis && remaining >= 0 && remaining <= 10:
		counter = strings.Repeat(glyphFlag, remaining)
	case r.cfg.UseEmojis:
		counter = fmt.Sprintf("%s × %d", glyphFlag, remaining)
	default:
		counter = fmt.Sprintf("%s × %d", glyphFlagPlain, remaining)
	}
	if err := r.AddStr(r.statusY+2, r.statusX, counter, style); err != nil {
		return err
	}

	flag, mine, boom := glyphFlag, glyphMine, glyphExploded
	if !r.cfg.UseEmojis {
		flag, mine, boom = glyphFlagPlain, glyphMinePlain, glyphExplodedPlain
	}
	legend := []string{
		"MOUSE",
		"  left    reveal",
		"  right   flag",
		"  middle  chord",
		"",
		"KEYBOARD",
		"  wasd / arrows  move",
		"  q reveal  e flag  space chord",
		"  enter restart  t glyphs",
		"  esc / ctrl-c quit",
		"",
		"SYMBOLS",
		"  " + flag + " flag   " + mine + " mine   " + boom + " boom",
	}
	for i, line := range legend {
		if err := r.AddStr(r.statusY+4+i, r.statusX, line, style); err != nil {
			return err
		}
	}
	return nil
}

// debugf logs a frame-stamped line to the debug pipe.
func (r *RootWidget) debugf(format string, args ...any) {
	debug.Printf("frame %d: "+format, append([]any{r.frameCount}, args...)...)
}
