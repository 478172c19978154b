package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopbook/bookdesk/internal/catalog"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Books       []catalog.Book
	HasData     bool
	LastUpdated time.Time
	LastError   error
}

// Store coordinates updates to the catalog snapshot. Fetch commands complete
// on their own goroutines, so access is mutex-guarded.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(books []catalog.Book, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		return
	}

	s.snapshot.Books = cloneBooks(books)
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneBooks(books []catalog.Book) []catalog.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]catalog.Book, len(books))
	copy(dup, books)
	return dup
}
