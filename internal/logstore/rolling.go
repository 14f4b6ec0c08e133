package logstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Rolling is a newest-first text log capped at a fixed number of lines. It
// keeps nothing in memory: every Prepend re-reads the file, so edits made by
// other processes between cycles survive, and concurrent writers are not
// coordinated.
type Rolling struct {
	path string
	max  int
}

// NewRolling returns a rolling log at path holding at most max lines.
func NewRolling(path string, max int) *Rolling {
	return &Rolling{path: path, max: max}
}

// Path returns the backing file.
func (r *Rolling) Path() string { return r.path }

// Lines returns the stored lines, newest first. A missing file is empty.
func (r *Rolling) Lines() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rolling log: read %s: %w", r.path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Prepend inserts line at the top and drops everything past the capacity.
func (r *Rolling) Prepend(line string) error {
	lines, err := r.Lines()
	if err != nil {
		return err
	}

	lines = append([]string{strings.TrimRight(line, "\n")}, lines...)
	if len(lines) > r.max {
		lines = lines[:r.max]
	}

	return r.write(lines)
}

// write replaces the file with lines via a temp file in the same directory so
// an interrupted rewrite leaves the previous contents in place.
func (r *Rolling) write(lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("rolling log: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("rolling log: chmod temp: %w", err)
	}

	if _, err := tmp.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("rolling log: write temp: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("rolling log: sync temp: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("rolling log: close temp: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("rolling log: replace %s: %w", r.path, err)
	}

	success = true
	return nil
}
