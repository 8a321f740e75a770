//go:build unix

package debug

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// openPipe creates the fifo if needed and opens it for writing, which
// blocks until a reader attaches.
func openPipe(path string) (io.WriteCloser, error) {
	if err := syscall.Mkfifo(path, 0o644); err != nil && !errors.Is(err, syscall.EEXIST) {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY, 0)
}
