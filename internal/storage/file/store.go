package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/domain/entity"
	"github.com/diegoclair/weekly-signup/internal/storage"
)

const (
	FileExtension   = ".txt"
	FilePermissions = 0644
	DirPermissions  = 0755
)

// Store keeps one flat file per bucket: <dir>/<YYYYMMDD>.txt, one "name,status" line per signup
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a store rooted at it
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

var _ contract.SignupRepo = (*Store)(nil)

// Dir returns the data directory
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(bucketKey string) (string, error) {
	if !bucket.ValidKey(bucketKey) {
		return "", fmt.Errorf("invalid bucket key %q", bucketKey)
	}
	return filepath.Join(s.dir, bucketKey+FileExtension), nil
}

// Append writes the record with a single write on an O_APPEND descriptor
func (s *Store) Append(ctx context.Context, bucketKey string, signup entity.Signup) error {
	path, err := s.path(bucketKey)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open bucket file: %w", err)
	}

	if _, err := f.WriteString(storage.FormatRecord(signup)); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("Error closing bucket file %s: %v", path, closeErr)
		}
		return fmt.Errorf("failed to append signup: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close bucket file: %w", err)
	}
	return nil
}

func (s *Store) ReadAll(ctx context.Context, bucketKey string) (map[string]string, error) {
	path, err := s.path(bucketKey)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket file: %w", err)
	}

	return storage.ParseRecords(string(data)), nil
}

func (s *Store) Buckets(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	keys := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExtension) {
			continue
		}
		key := strings.TrimSuffix(e.Name(), FileExtension)
		if bucket.ValidKey(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys, nil
}
