package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// LockfileVersion is the current lock file format version.
const LockfileVersion = 1

// Lockfile is the persisted mapping from resolved specifier strings to
// content integrity hashes. It detects dependency content drift between runs.
type Lockfile struct {
	// Version is the lock file format version, kept for schema migrations.
	Version int

	// Modules maps resolved specifier strings to sha256 hex digests of the
	// module content.
	Modules map[string]string
}

// LockMode selects how unseen specifiers are treated during verification.
type LockMode int

const (
	// LockAdditive appends entries for specifiers not yet in the lock file.
	LockAdditive LockMode = iota
	// LockFrozen fails verification on any specifier missing from the lock file.
	LockFrozen
)

// IntegrityHash computes the integrity hash recorded in the lock file.
func IntegrityHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
