package logstore

import (
	"fmt"
	"os"
)

// ErrorLog is an append-only text file. It is never rotated or trimmed.
type ErrorLog struct {
	path string
}

// NewErrorLog returns an error log backed by path.
func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{path: path}
}

// Path returns the backing file.
func (e *ErrorLog) Path() string { return e.path }

// Append writes line to the end of the file, creating it if needed.
func (e *ErrorLog) Append(line string) (err error) {
	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error log: open %s: %w", e.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error log: close %s: %w", e.path, cerr)
		}
	}()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("error log: write %s: %w", e.path, err)
	}
	return nil
}
