//go:build !unix

package debug

import (
	"io"
	"os"
)

// openPipe falls back to a plain log file where fifos do not exist.
func openPipe(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}
