package ports

import "go.trai.ch/lode/internal/core/domain"

// ModuleCache stores fetched module content keyed by the fully resolved
// specifier string.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ModuleCache interface {
	// Get retrieves the cache entry for a resolved specifier.
	// Returns nil, nil if not found.
	Get(key string) (*domain.CacheEntry, error)

	// Put stores the entry, replacing any previous content for the key.
	// The write is atomic: a partially written entry is never visible.
	Put(entry domain.CacheEntry) error
}
