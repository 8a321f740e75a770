package main

import (
	"fmt"
	"os"
	runtimedebug "runtime/debug"

	"github.com/spf13/cobra"

	"minesweeper/audio"
	"minesweeper/config"
	"minesweeper/debug"
	"minesweeper/terminal"
	"minesweeper/ui"
)

var cfg = config.Default()

var (
	flagEasy         bool
	flagIntermediate bool
	flagHard         bool
	flagCustom       []int
	flagQuick        bool
	flagNoAnimation  bool
	flagNoEmoji      bool
	flagNoSound      bool
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper for the terminal",
	Long: `Minesweeper for the terminal, played with the mouse or the keyboard.

Left click reveals, right click flags, middle click chords. The first
reveal is always safe. With the keyboard, move with wasd or the arrow
keys, reveal with q, flag with e and chord with space.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagEasy, "easy", "e", false, "9x9 board with 10 mines")
	f.BoolVarP(&flagIntermediate, "intermediate", "i", false, "16x16 board with 40 mines (default)")
	f.BoolVar(&flagHard, "hard", false, "30x16 board with 99 mines")
	f.IntSliceVarP(&flagCustom, "custom", "c", nil, "custom board as width,height,mines")
	f.BoolVarP(&cfg.DarkMode, "dark-mode", "d", false, "use the dark color theme")
	f.IntVarP(&cfg.Framerate, "framerate", "f", 0, "cap frames per second, 0 for uncapped")
	f.BoolVarP(&flagQuick, "quick", "q", false, "skip the startup checks and animations")
	f.BoolVar(&cfg.SilentChecks, "silent-checks", false, "run the startup checks without output")
	f.BoolVar(&cfg.IgnoreFailures, "ignore-failures", false, "keep going when checks or drawing fail")
	f.BoolVar(&flagNoAnimation, "no-animation", false, "disable the window reveal animations")
	f.BoolVar(&flagNoEmoji, "no-emoji", false, "use plain glyphs instead of emojis")
	f.BoolVar(&flagNoSound, "no-sound", false, "disable sound effects")
	f.BoolVar(&cfg.Debug, "debug", false, "log frames to the ./debug pipe")
	rootCmd.MarkFlagsMutuallyExclusive("easy", "intermediate", "hard", "custom")
}

func run(cmd *cobra.Command, args []string) error {
	switch {
	case flagEasy:
		cfg.SetDifficulty("easy")
	case flagHard:
		cfg.SetDifficulty("hard")
	case flagIntermediate:
		cfg.SetDifficulty("intermediate")
	case flagCustom != nil:
		if len(flagCustom) != 3 {
			return fmt.Errorf("--custom wants width,height,mines, got %d values", len(flagCustom))
		}
		cfg.SetCustom(flagCustom[0], flagCustom[1], flagCustom[2])
	}
	cfg.UseEmojis = !flagNoEmoji
	cfg.Sound = !flagNoSound
	cfg.ShowAnimation = !flagNoAnimation && !flagQuick
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Debug {
		fmt.Println("waiting for a reader on ./debug (run `cat debug` in another terminal)")
		if err := debug.Init("debug"); err != nil {
			return fmt.Errorf("debug pipe: %w", err)
		}
		defer debug.Close()
	}

	if err := runChecks(cfg, flagQuick); err != nil {
		return err
	}
	intro(cfg)

	sound := audio.NewManager(cfg.Sound)
	defer sound.Close()

	screen, err := terminal.Init()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	// size check needs the screen, so tear down before reporting
	width, height := screen.Size()
	minW, minH := cfg.MinSize()
	if (width < minW || height < minH) && !cfg.IgnoreFailures {
		terminal.Fini(screen)
		return fmt.Errorf("%w: this board wants %dx%d, the terminal is %dx%d",
			terminal.ErrInsufficientScreenSpace, minW, minH, width, height)
	}

	err = ui.Mainloop(screen, cfg, sound)
	terminal.Fini(screen)
	return err
}

func main() {
	// reset the terminal before the stack trace so it stays readable
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mMINESWEEPER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", runtimedebug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
