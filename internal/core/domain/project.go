package domain

import (
	"os"
	"path/filepath"
)

// DefaultLockfileName is the lock file path used when the configuration
// enables locking without naming a path.
const DefaultLockfileName = "lode.lock"

// ProjectConfig is the loaded project configuration. It is built once by the
// config loader and passed by reference through the resolution call chain.
type ProjectConfig struct {
	// BaseDir is the directory local specifiers resolve against, normally
	// the directory holding the configuration file.
	BaseDir string

	// Entries are the project's root module specifiers.
	Entries []string

	// Imports is the project import map, or nil when none is configured.
	Imports *ImportMap

	// Vendor materializes fetched modules into the vendor directory.
	Vendor bool

	// LockEnabled reports whether lock verification runs. Locking is on by
	// default whenever a project configuration is present.
	LockEnabled bool

	// LockPath is the lock file location.
	LockPath string

	// Scripts maps run targets to their command lines.
	Scripts map[string][]string

	// RegistryURLs overrides registry base URLs, keyed by registry kind.
	RegistryURLs map[RegistryKind]string
}

// DefaultCacheDir returns the on-disk location of the global module cache.
// LODE_DIR overrides the per-user default.
func DefaultCacheDir() string {
	if dir := os.Getenv("LODE_DIR"); dir != "" {
		return filepath.Join(dir, "modules")
	}
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "lode", "modules")
}
