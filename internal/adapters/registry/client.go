// Package registry implements the Registry port for the JSR and npm
// registries, plus plain URL module retrieval.
package registry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultJSRBase = "https://jsr.io"
	defaultNPMBase = "https://registry.npmjs.org"

	httpClientTimeout = 30 * time.Second
	maxAttempts       = 3
	retryBaseDelay    = 250 * time.Millisecond
)

// EnvProxy implements ports.ProxyProvider from the process environment:
// HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
type EnvProxy struct{}

// ProxyFunc returns the environment-based proxy selector.
func (EnvProxy) ProxyFunc() func(*http.Request) (*url.URL, error) {
	return http.ProxyFromEnvironment
}

var _ ports.ProxyProvider = EnvProxy{}

// newHTTPClient builds the shared client for registry and URL fetches.
func newHTTPClient(proxy ports.ProxyProvider) *http.Client {
	transport := http.DefaultTransport
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		cloned := t.Clone()
		cloned.Proxy = proxy.ProxyFunc()
		transport = cloned
	}
	return &http.Client{
		Timeout:   httpClientTimeout,
		Transport: transport,
	}
}

// getBytes performs a GET with bounded retries. Server errors and transport
// failures are retried; client errors are not.
func getBytes(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, classifyFetchError(ctx.Err(), rawURL)
			case <-time.After(retryBaseDelay * time.Duration(attempt-1)):
			}
		}

		body, retryable, err := getOnce(ctx, client, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func getOnce(ctx context.Context, client *http.Client, rawURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, "failed to build request"), "url", rawURL)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, true, classifyFetchError(err, rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := domain.Tag(domain.ErrFetchFailed, "url", rawURL)
		err = zerr.With(err, "status", resp.StatusCode)
		return nil, resp.StatusCode >= http.StatusInternalServerError, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, classifyFetchError(err, rawURL)
	}
	return data, false, nil
}

// classifyFetchError maps transport failures onto the domain error kinds.
func classifyFetchError(err error, rawURL string) error {
	var netErr interface{ Timeout() bool }
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())

	kind := domain.ErrFetchFailed
	if timedOut {
		kind = domain.ErrFetchTimeout
	}
	wrapped := domain.Tag(kind, "url", rawURL)
	return zerr.With(wrapped, "cause", err.Error())
}
