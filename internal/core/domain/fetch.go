package domain

import "time"

// FetchMode controls how the fetcher consults the local module cache.
type FetchMode int

const (
	// FetchNormal returns cached content when present, otherwise retrieves it.
	FetchNormal FetchMode = iota
	// FetchReload bypasses cache reads and always retrieves fresh content.
	FetchReload
	// FetchReloadSpecific reloads only entries matching a target specifier;
	// everything else behaves like FetchNormal.
	FetchReloadSpecific
	// FetchCachedOnly forbids network access entirely.
	FetchCachedOnly
)

// FetchStatus is the terminal outcome of one specifier's fetch. Failed
// fetches surface as errors instead of resolutions.
type FetchStatus string

const (
	// FetchStatusCompleted indicates the module was retrieved and verified.
	FetchStatusCompleted FetchStatus = "completed"
	// FetchStatusCached indicates the module was served from the local cache.
	FetchStatusCached FetchStatus = "cached"
)

// CacheEntry is one module stored in the local cache, keyed by its fully
// resolved specifier string. Entries are created on first successful fetch,
// replaced on explicit reload and never mutated in place.
type CacheEntry struct {
	// Specifier is the fully resolved specifier string.
	Specifier string `json:"specifier"`

	// Integrity is the sha256 hex digest of Content.
	Integrity string `json:"integrity"`

	// Content is the fetched module bytes.
	Content []byte `json:"content"`

	// FetchedAt records when the content was retrieved.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
}

// Resolution is the outcome of resolving and fetching one root specifier.
type Resolution struct {
	// Raw is the import string as given.
	Raw string

	// Specifier is the parsed form, after any import map redirect.
	Specifier Specifier

	// Key is the fully resolved specifier string keying cache and lock file.
	Key string

	// Content is the module bytes.
	Content []byte

	// Integrity is the sha256 hex digest of Content.
	Integrity string

	// Status is the terminal fetch status, FetchStatusCached when the
	// content was served from the local cache.
	Status FetchStatus
}

// Cached reports whether the content was served from the local cache.
func (r *Resolution) Cached() bool {
	return r.Status == FetchStatusCached
}
