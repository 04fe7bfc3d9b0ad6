package presets

import (
	"sync/atomic"
)

// Store holds the current catalog behind an atomic pointer so a host
// application can reload the catalog without readers ever observing a
// partially updated one. Writers build a complete new Catalog and swap
// it in; readers always see either the old or the new catalog, never a
// mix. Single-writer/multiple-reader discipline.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding the given catalog.
func NewStore(cat *Catalog) *Store {
	s := &Store{}
	s.current.Store(cat)
	return s
}

// Current returns the catalog most recently stored. Never nil when the
// store was created through NewStore with a non-nil catalog.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Swap replaces the current catalog and returns the previous one.
func (s *Store) Swap(cat *Catalog) *Catalog {
	return s.current.Swap(cat)
}
