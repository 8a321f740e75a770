package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2/terminfo"

	"minesweeper/config"
)

// printSlow writes text one rune at a time, old-terminal style.
func printSlow(w io.Writer, text string, delay time.Duration) {
	for _, r := range text {
		fmt.Fprint(w, string(r))
		time.Sleep(delay)
	}
}

// runChecks verifies the terminal can actually display the game
// before the screen takes over and garbles any complaint.
func runChecks(cfg *config.Config, skip bool) error {
	if skip {
		return nil
	}
	out := io.Writer(os.Stdout)
	delay := 2 * time.Millisecond
	if cfg.SilentChecks {
		out = io.Discard
		delay = 0
	}

	checks := []struct {
		name string
		fn   func() error
	}{
		{"terminal type", checkTerm},
		{"color support", checkColors},
		{"unicode locale", checkLocale},
	}

	failed := false
	for _, c := range checks {
		printSlow(out, fmt.Sprintf("checking %s ... ", c.name), delay)
		if err := c.fn(); err != nil {
			failed = true
			fmt.Fprintf(out, "✗ %v\n", err)
		} else {
			fmt.Fprintln(out, "✓")
		}
	}

	if failed && !cfg.IgnoreFailures {
		return errors.New("startup checks failed, rerun with --ignore-failures to play anyway")
	}
	return nil
}

func checkTerm() error {
	if os.Getenv("TERM") == "" {
		return errors.New("TERM is not set")
	}
	return nil
}

func checkColors() error {
	term := os.Getenv("TERM")
	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		return fmt.Errorf("no terminfo for %q: %w", term, err)
	}
	if ti.Colors < 256 {
		return fmt.Errorf("%q supports %d colors, the palette wants 256", term, ti.Colors)
	}
	return nil
}

func checkLocale() error {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := os.Getenv(v)
		if val == "" {
			continue
		}
		lower := strings.ToLower(val)
		if strings.Contains(lower, "utf-8") || strings.Contains(lower, "utf8") {
			return nil
		}
		return fmt.Errorf("%s=%s is not a UTF-8 locale", v, val)
	}
	return errors.New("no locale variables set, cannot confirm UTF-8")
}
