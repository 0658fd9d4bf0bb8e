// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/lode/internal/core/domain"
)

// Registry is the capability surface of one package registry kind.
// Concrete wire protocols (JSR, npm) live behind this interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// ListVersions returns the published versions of a package, unordered.
	ListVersions(ctx context.Context, name string) ([]domain.Version, error)

	// FetchContent retrieves the module content for a concrete version.
	FetchContent(ctx context.Context, name string, version domain.Version) ([]byte, error)
}

// RegistryProvider selects the Registry client for a specifier's registry kind.
type RegistryProvider interface {
	// For returns the client for the given kind, or domain.ErrRegistryUnknown.
	For(kind domain.RegistryKind) (Registry, error)

	// SetBaseURL overrides a registry's base URL, e.g. from project configuration.
	SetBaseURL(kind domain.RegistryKind, baseURL string)
}

// RemoteLoader retrieves module content addressed by an absolute URL.
type RemoteLoader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// LocalLoader reads module content for local path specifiers. Paths must name
// an exact file; there is no index-file or extension probing.
type LocalLoader interface {
	Load(path string) ([]byte, error)
}
