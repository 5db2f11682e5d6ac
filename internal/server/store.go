package server

import (
	"errors"
	"sync"

	"github.com/teepress/mockup-tools/internal/mockup"
)

// ErrNotFound reports a lookup for an upload that is not in the store.
var ErrNotFound = errors.New("upload not found")

// Store holds decoded uploads in memory for the lifetime of the process.
//
// Upload order is preserved: batch ranges address designs by their position
// in the order they were uploaded, so listing must be stable. Re-uploading a
// file with the same name replaces it in place without changing its position.
//
// Store is safe for concurrent use by multiple goroutines. Accessors return
// copies of the stored assets (the decoded images themselves are immutable
// and shared), so a rename cannot race with a batch that is already running.
type Store struct {
	mu        sync.RWMutex
	designs   []*mockup.Asset
	templates []*mockup.Asset
}

// NewStore creates an empty upload store.
func NewStore() *Store {
	return &Store{}
}

// AddDesign stores a design, replacing any existing design with the same
// file name.
func (s *Store) AddDesign(a *mockup.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.designs = upsert(s.designs, a)
}

// AddTemplate stores a template, replacing any existing template with the
// same file name.
func (s *Store) AddTemplate(a *mockup.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = upsert(s.templates, a)
}

func upsert(assets []*mockup.Asset, a *mockup.Asset) []*mockup.Asset {
	for i, existing := range assets {
		if existing.Name == a.Name {
			// Keep the display name across re-uploads.
			if a.DisplayName == "" {
				a.DisplayName = existing.DisplayName
			}
			assets[i] = a
			return assets
		}
	}
	return append(assets, a)
}

// RenameDesign sets the display name used in output file names for the
// design with the given file name.
func (s *Store) RenameDesign(name, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.designs {
		if a.Name == name {
			a.DisplayName = displayName
			return nil
		}
	}
	return ErrNotFound
}

// Design returns a copy of the stored design with the given file name.
func (s *Store) Design(name string) (*mockup.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.designs, name)
}

// Template returns a copy of the stored template with the given file name.
func (s *Store) Template(name string) (*mockup.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.templates, name)
}

func lookup(assets []*mockup.Asset, name string) (*mockup.Asset, error) {
	for _, a := range assets {
		if a.Name == name {
			c := *a
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Designs returns copies of the stored designs in upload order.
func (s *Store) Designs() []*mockup.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.designs)
}

// Templates returns copies of the stored templates in upload order.
func (s *Store) Templates() []*mockup.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.templates)
}

func snapshot(assets []*mockup.Asset) []*mockup.Asset {
	out := make([]*mockup.Asset, len(assets))
	for i, a := range assets {
		c := *a
		out[i] = &c
	}
	return out
}

// Clear removes all stored uploads, freeing the associated memory.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.designs = nil
	s.templates = nil
}
