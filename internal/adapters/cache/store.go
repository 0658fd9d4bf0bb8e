// Package cache implements the content-addressable module cache on disk.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store implements ports.ModuleCache using one JSON file per entry, named by
// the xxhash digest of the resolved specifier string. Entries are published
// atomically: content is written to a temp file and renamed into place, so a
// partially written entry is never visible.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a ModuleCache rooted at the given directory.
func NewStore(dir string) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, dirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create module cache directory")
	}
	return &Store{dir: cleanDir}, nil
}

// entryPath derives the on-disk location for a resolved specifier.
func (s *Store) entryPath(key string) string {
	sum := xxhash.Sum64String(key)
	return filepath.Join(s.dir, hexDigest(sum)+".json")
}

const hexChars = "0123456789abcdef"

func hexDigest(sum uint64) string {
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexChars[sum&0xf]
		sum >>= 4
	}
	return string(buf)
}

// Get retrieves the cache entry for a resolved specifier.
// Returns nil, nil if not found.
func (s *Store) Get(key string) (*domain.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	//nolint:gosec // Path is derived from the cache dir and a hashed key
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache entry"), "specifier", key)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal cache entry"), "specifier", key)
	}

	// A hash-collision or hand-edited entry must not masquerade as the key.
	if entry.Specifier != key {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the entry, replacing any previous content for the key.
func (s *Store) Put(entry domain.CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache entry")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.entryPath(entry.Specifier)

	tmp, err := os.CreateTemp(s.dir, ".entry-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write cache entry")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close temp cache file")
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to chmod cache entry")
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to publish cache entry")
	}
	return nil
}

var _ ports.ModuleCache = (*Store)(nil)
