package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolvedSpecifier is returned when a local specifier does not name an exact file,
	// for example when the file extension is missing or the file does not exist.
	ErrUnresolvedSpecifier = zerr.New("unresolved specifier")

	// ErrUnmappedSpecifier is returned when a bare name has no entry in the import map
	// or any matching scope.
	ErrUnmappedSpecifier = zerr.New("unmapped specifier")

	// ErrInvalidSpecifier is returned when an import string cannot be parsed at all.
	ErrInvalidSpecifier = zerr.New("invalid specifier")

	// ErrInvalidVersion is returned when a version or version range fails to parse.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrVersionNotFound is returned when no published version satisfies a range.
	ErrVersionNotFound = zerr.New("no version satisfies range")

	// ErrNotCached is returned in cached-only mode when a module is absent from the local cache.
	ErrNotCached = zerr.New("module not cached")

	// ErrIntegrityMismatch is returned when fetched content does not hash to the value
	// recorded in the lock file. It is fatal for the run.
	ErrIntegrityMismatch = zerr.New("integrity mismatch")

	// ErrUntrackedDependency is returned in frozen lock mode when a specifier is not
	// present in the lock file.
	ErrUntrackedDependency = zerr.New("untracked dependency")

	// ErrFetchTimeout is returned when a network retrieval exceeds the configured timeout.
	ErrFetchTimeout = zerr.New("fetch timed out")

	// ErrFetchFailed is returned when a network retrieval fails after retries.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrRegistryUnknown is returned when a specifier names a registry kind with no
	// configured client.
	ErrRegistryUnknown = zerr.New("unknown registry")

	// ErrScriptNotFound is returned when a run target is not declared in the project scripts.
	ErrScriptNotFound = zerr.New("script not found")

	// ErrNoEntries is returned when neither the command line nor the project
	// configuration names any root specifiers.
	ErrNoEntries = zerr.New("no entry specifiers")
)

// Tag attaches a key-value pair to a sentinel error. The sentinel is wrapped
// first so that it stays in the unwrap chain and errors.Is still matches it;
// attaching metadata to the sentinel directly would copy it out of the chain.
func Tag(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
