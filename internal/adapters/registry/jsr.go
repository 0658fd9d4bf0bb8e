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

// JSR implements ports.Registry against a JSR-compatible registry.
// Package metadata lives at {base}/{name}/meta.json; module content is
// served at {base}/{name}/{version}/mod.ts.
type JSR struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

// NewJSR creates a JSR registry client with the public registry base URL.
func NewJSR(proxy ports.ProxyProvider) *JSR {
	return &JSR{
		baseURL:    defaultJSRBase,
		httpClient: newHTTPClient(proxy),
	}
}

func (r *JSR) base() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.baseURL
}

func (r *JSR) setBaseURL(u string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseURL = u
}

// ListVersions returns the published, non-yanked versions of a package.
func (r *JSR) ListVersions(ctx context.Context, name string) ([]domain.Version, error) {
	data, err := getBytes(ctx, r.httpClient, r.base()+"/"+name+"/meta.json")
	if err != nil {
		return nil, zerr.With(err, "package", name)
	}

	var meta jsrMetaResponse
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse jsr metadata"), "package", name)
	}

	versions := make([]domain.Version, 0, len(meta.Versions))
	for raw, info := range meta.Versions {
		if info.Yanked {
			continue
		}
		v, err := domain.ParseVersion(raw)
		if err != nil {
			// A malformed published version is the registry's problem, not ours.
			continue
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// FetchContent retrieves the module content for a concrete version.
func (r *JSR) FetchContent(ctx context.Context, name string, version domain.Version) ([]byte, error) {
	data, err := getBytes(ctx, r.httpClient, r.base()+"/"+name+"/"+version.String()+"/mod.ts")
	if err != nil {
		err = zerr.With(err, "package", name)
		return nil, zerr.With(err, "version", version.String())
	}
	return data, nil
}

var _ ports.Registry = (*JSR)(nil)
