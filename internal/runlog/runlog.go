// Package runlog appends one line per finished batch to a flat log file
// in the user's data directory. Logging is opt-in and best-effort: a
// batch never fails because its record could not be written.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bondtoten/iconset/internal/paths"
)

// Log appends a single line summarizing a finished batch. Errors are
// printed to stderr but never returned.
func Log(op, dir string, written, failed int) {
	f, err := openLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
		return
	}
	defer f.Close()

	ts := time.Now().Format(time.RFC3339)
	fmt.Fprintf(f, "%s  op=%s  dir=%s  written=%d  failed=%d\n",
		ts, op, dir, written, failed)
}

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func openLog() (*os.File, error) {
	path := logPath()
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

// logPath returns the log file location:
//   - Windows: %APPDATA%\iconset\iconset.log
//   - Unix:    ~/.config/iconset/iconset.log
func logPath() string {
	return filepath.Join(paths.DataDir(), paths.LogFileName)
}
