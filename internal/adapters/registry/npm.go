package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// NPM implements ports.Registry against an npm-compatible registry.
// The packument at {base}/{name} lists versions and per-version tarball
// locations; content is the tarball bytes.
type NPM struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

// NewNPM creates an npm registry client with the public registry base URL.
func NewNPM(proxy ports.ProxyProvider) *NPM {
	return &NPM{
		baseURL:    defaultNPMBase,
		httpClient: newHTTPClient(proxy),
	}
}

func (r *NPM) base() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.baseURL
}

func (r *NPM) setBaseURL(u string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseURL = u
}

func (r *NPM) packument(ctx context.Context, name string) (*npmPackument, error) {
	data, err := getBytes(ctx, r.httpClient, r.base()+"/"+name)
	if err != nil {
		return nil, zerr.With(err, "package", name)
	}

	var doc npmPackument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse npm packument"), "package", name)
	}
	return &doc, nil
}

// ListVersions returns the published versions of a package.
func (r *NPM) ListVersions(ctx context.Context, name string) ([]domain.Version, error) {
	doc, err := r.packument(ctx, name)
	if err != nil {
		return nil, err
	}

	versions := make([]domain.Version, 0, len(doc.Versions))
	for raw := range doc.Versions {
		v, err := domain.ParseVersion(raw)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// FetchContent retrieves the distribution tarball for a concrete version.
func (r *NPM) FetchContent(ctx context.Context, name string, version domain.Version) ([]byte, error) {
	doc, err := r.packument(ctx, name)
	if err != nil {
		return nil, err
	}

	info, ok := doc.Versions[version.String()]
	if !ok || info.Dist.Tarball == "" {
		err := domain.Tag(domain.ErrVersionNotFound, "package", name)
		return nil, zerr.With(err, "version", version.String())
	}

	data, err := getBytes(ctx, r.httpClient, info.Dist.Tarball)
	if err != nil {
		err = zerr.With(err, "package", name)
		return nil, zerr.With(err, "version", version.String())
	}
	return data, nil
}

var _ ports.Registry = (*NPM)(nil)
