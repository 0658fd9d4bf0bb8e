// Package fs provides the local module loader.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LocalLoader = (*Loader)(nil)

// Loader reads local module files. Paths must name an exact existing file;
// directories and missing files fail resolution.
type Loader struct{}

// NewLoader creates a local module loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the module content at path.
func (l *Loader) Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Tag(domain.ErrUnresolvedSpecifier, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat module"), "path", path)
	}
	if info.IsDir() {
		err := domain.Tag(domain.ErrUnresolvedSpecifier, "path", path)
		return nil, zerr.With(err, "reason", "path is a directory")
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read module"), "path", path)
	}
	return data, nil
}
