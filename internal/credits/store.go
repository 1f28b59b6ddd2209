package credits

import (
	"sync"
	"time"

	"fichahub/pkg/models"
)

// Store holds the current dataset. Loads replace the pointer
// wholesale; readers keep whatever snapshot they took. Nothing mutates
// a dataset after it is stored.
type Store struct {
	mu       sync.RWMutex
	ds       *models.Dataset
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{ds: models.EmptyDataset()}
}

// Replace swaps in a freshly classified dataset.
func (s *Store) Replace(ds *models.Dataset) {
	if ds == nil {
		ds = models.EmptyDataset()
	}
	s.mu.Lock()
	s.ds = ds
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()
}

// Snapshot returns the current dataset. Callers must treat it as
// read-only.
func (s *Store) Snapshot() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// LoadedAt reports when the current dataset was stored; zero before
// the first successful load.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// RowCount is used by the readiness endpoint.
func (s *Store) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ds.Rows)
}
