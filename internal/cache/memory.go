package cache

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryStore keeps entries in process memory. Entries are lost on restart.
type MemoryStore struct {
	entries *xsync.MapOf[string, Entry]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: xsync.NewMapOf[string, Entry]()}
}

func (s *MemoryStore) Get(_ context.Context, slug string) (Entry, bool, error) {
	entry, ok := s.entries.Load(Key(slug))
	return entry, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, slug string, entry Entry) error {
	s.entries.Store(Key(slug), entry)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, slug string) error {
	s.entries.Delete(Key(slug))
	return nil
}

// Len reports the number of cached repositories.
func (s *MemoryStore) Len() int {
	return s.entries.Size()
}
