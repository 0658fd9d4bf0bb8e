package ports

import "go.trai.ch/lode/internal/core/domain"

// LockStore verifies and records content integrity hashes for resolved
// specifiers. Implementations must serialize mutations: concurrent fetches
// funnel their results through a single writer.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type LockStore interface {
	// Verify checks content against the recorded hash for the specifier.
	// A mismatch returns domain.ErrIntegrityMismatch and is fatal for the run.
	// An absent entry is appended in additive mode and returns
	// domain.ErrUntrackedDependency in frozen mode.
	Verify(specifier string, content []byte, mode domain.LockMode) error

	// Write records the content hash for the specifier unconditionally.
	Write(specifier string, content []byte) error

	// Snapshot returns a copy of the current lock file state.
	Snapshot() domain.Lockfile
}

// LockFactory opens lock stores. The lock file path is only known after the
// project configuration is loaded, so stores are opened per run.
type LockFactory interface {
	// Open loads the lock file at path, creating an empty store if absent.
	Open(path string) (LockStore, error)
}
