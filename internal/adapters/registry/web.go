package registry

import (
	"context"
	"net/http"

	"go.trai.ch/lode/internal/core/ports"
)

// WebLoader implements ports.RemoteLoader for absolute URL specifiers.
type WebLoader struct {
	httpClient *http.Client
}

// NewWebLoader creates a RemoteLoader sharing the registry HTTP settings.
func NewWebLoader(proxy ports.ProxyProvider) *WebLoader {
	return &WebLoader{httpClient: newHTTPClient(proxy)}
}

// Fetch retrieves the content at an absolute URL.
func (l *WebLoader) Fetch(ctx context.Context, url string) ([]byte, error) {
	return getBytes(ctx, l.httpClient, url)
}

var _ ports.RemoteLoader = (*WebLoader)(nil)
