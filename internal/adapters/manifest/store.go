// Package manifest records which files were delivered to the compiler.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a flat JSON file keyed by resolved path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ManifestEntry
}

// NewStore creates a Store backed by the file at the given path.
// A missing file is an empty manifest.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ManifestEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", s.path)
	}

	return nil
}

// save writes the manifest. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", s.path)
	}

	return nil
}

// Get returns the entry recorded for a resolved path, or nil.
func (s *Store) Get(path string) (*domain.ManifestEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put records entries and saves the manifest once.
func (s *Store) Put(entries ...domain.ManifestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		s.cache[e.Path] = e
	}
	return s.save()
}

// Opener implements ports.ManifestOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the manifest at path.
func (o *Opener) Open(path string) (ports.ManifestStore, error) {
	return NewStore(path)
}
