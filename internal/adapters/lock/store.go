// Package lock implements lock file persistence and integrity verification.
package lock

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// lockDTO is the serialized lock file shape. encoding/json emits map keys in
// sorted order, which keeps the file stable and diff-friendly.
type lockDTO struct {
	Version int               `json:"version"`
	Modules map[string]string `json:"modules"`
}

// Store implements ports.LockStore using a flat JSON file. All mutations go
// through one mutex, so concurrent fetch results are recorded one at a time.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
	version int
}

// Open loads the lock file at the given path, starting empty if absent.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]string),
		version: domain.LockfileVersion,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read lock file")
	}
	if len(data) == 0 {
		return nil
	}

	var dto lockDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return zerr.Wrap(err, "failed to parse lock file")
	}
	if dto.Version != 0 {
		s.version = dto.Version
	}
	for spec, hash := range dto.Modules {
		s.entries[spec] = hash
	}
	return nil
}

// save persists the current state. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(lockDTO{Version: s.version, Modules: s.entries}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lock file")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for lock file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return zerr.Wrap(err, "failed to write lock file")
	}
	return nil
}

// Verify checks content against the recorded hash for the specifier.
func (s *Store) Verify(specifier string, content []byte, mode domain.LockMode) error {
	actual := domain.IntegrityHash(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	expected, tracked := s.entries[specifier]
	if tracked {
		if expected != actual {
			err := domain.Tag(domain.ErrIntegrityMismatch, "specifier", specifier)
			err = zerr.With(err, "expected", expected)
			return zerr.With(err, "actual", actual)
		}
		return nil
	}

	if mode == domain.LockFrozen {
		return domain.Tag(domain.ErrUntrackedDependency, "specifier", specifier)
	}

	s.entries[specifier] = actual
	return s.save()
}

// Write records the content hash for the specifier unconditionally.
func (s *Store) Write(specifier string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[specifier] = domain.IntegrityHash(content)
	return s.save()
}

// Snapshot returns a copy of the current lock file state.
func (s *Store) Snapshot() domain.Lockfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	modules := make(map[string]string, len(s.entries))
	for spec, hash := range s.entries {
		modules[spec] = hash
	}
	return domain.Lockfile{Version: s.version, Modules: modules}
}

var _ ports.LockStore = (*Store)(nil)

// Factory implements ports.LockFactory.
type Factory struct{}

// Open loads the lock file at path, creating an empty store if absent.
func (Factory) Open(path string) (ports.LockStore, error) {
	return Open(path)
}
