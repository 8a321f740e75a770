// Package debug provides optional frame logging to a named pipe. The
// UI owns the terminal, so the log is read from a second terminal
// with `cat debug` while the game runs.
package debug

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.Mutex
	logger *log.Logger
	sink   io.Closer
)

// Init creates the pipe and attaches the logger. On platforms with
// fifos this blocks until a reader opens the other end. Without Init
// every Printf is a no-op.
func Init(path string) error {
	w, err := openPipe(path)
	if err != nil {
		return err
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
	})

	mu.Lock()
	defer mu.Unlock()
	logger = l
	sink = w
	return nil
}

// Printf logs one line to the pipe, if logging is initialized.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

// Close detaches the logger and closes the pipe.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
	}
	logger = nil
	sink = nil
}
