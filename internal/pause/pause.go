// Package pause stores the "signups paused" message in a file next to the static pages.
// The file existing means signups are paused; its content is shown to visitors.
package pause

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/diegoclair/weekly-signup/internal/domain/contract"
)

const FilePermissions = 0644

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

var _ contract.PauseSource = (*FileSource)(nil)

// Path returns the pause file location
func (f *FileSource) Path() string {
	return f.path
}

// Message returns the pause message and whether signups are paused.
// A missing file is the normal "not paused" state, not an error.
func (f *FileSource) Message(ctx context.Context) (string, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read pause file: %w", err)
	}
	return string(data), true, nil
}

// Pause writes message to the pause file, replacing any previous message
func (f *FileSource) Pause(message string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create pause directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(message), FilePermissions); err != nil {
		return fmt.Errorf("failed to write pause file: %w", err)
	}
	return nil
}

// Resume removes the pause file. It reports false if signups were not paused.
func (f *FileSource) Resume() (bool, error) {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove pause file: %w", err)
	}
	return true, nil
}
