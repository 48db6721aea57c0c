package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/domain/entity"
)

// Store keeps bucket logs in memory. Contents are lost on restart.
type Store struct {
	mu      sync.RWMutex
	buckets map[string][]entity.Signup
}

func New() *Store {
	return &Store{buckets: make(map[string][]entity.Signup)}
}

var _ contract.SignupRepo = (*Store)(nil)

func (s *Store) Append(ctx context.Context, bucketKey string, signup entity.Signup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets[bucketKey] = append(s.buckets[bucketKey], signup)
	return nil
}

func (s *Store) ReadAll(ctx context.Context, bucketKey string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	signups := make(map[string]string)
	for _, signup := range s.buckets[bucketKey] {
		signups[signup.Name] = signup.Status
	}
	return signups, nil
}

func (s *Store) Buckets(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.buckets))
	for key := range s.buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
