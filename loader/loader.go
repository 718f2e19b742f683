// Package loader handles reading and persisting configuration files.
//
// Saving is atomic: the new contents are written to a temporary file in the
// target's directory and renamed over the original, so a reader never
// observes a half-written file. The original file's permission bits are
// preserved.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads and writes configuration files.
type Loader struct {
	// DefaultMode is the permission mode used when the target file does not
	// exist yet.
	DefaultMode os.FileMode
}

// Option configures a Loader.
type Option func(*Loader)

// WithDefaultMode sets the permission mode for newly created files.
func WithDefaultMode(mode os.FileMode) Option {
	return func(l *Loader) {
		l.DefaultMode = mode
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		DefaultMode: 0o644,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the contents of a configuration file.
func (l *Loader) Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

// Save atomically replaces filename with data, keeping the existing
// permission mode when the file already exists.
func (l *Loader) Save(filename string, data []byte) error {
	mode := l.DefaultMode
	if info, err := os.Stat(filename); err == nil {
		mode = info.Mode()
	}

	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // cleanup on failure; no-op after rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
