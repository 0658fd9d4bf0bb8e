package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.trai.ch/lode/internal/core/domain"
)

func TestGetBytes_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	data, err := getBytes(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("getBytes failed after retries: %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("unexpected body %q", data)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestGetBytes_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := getBytes(context.Background(), server.Client(), server.URL)
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single attempt for 404, got %d", got)
	}
}

func TestGetBytes_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := getBytes(ctx, server.Client(), server.URL)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestClassifyFetchError_Timeout(t *testing.T) {
	err := classifyFetchError(context.DeadlineExceeded, "https://jsr.io/@x/y/meta.json")
	if !errors.Is(err, domain.ErrFetchTimeout) {
		t.Fatalf("expected ErrFetchTimeout, got %v", err)
	}
}

func TestWebLoader_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/mod.ts" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("export {};\n"))
	}))
	defer server.Close()

	loader := NewWebLoader(EnvProxy{})
	content, err := loader.Fetch(context.Background(), server.URL+"/mod.ts")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(content) != "export {};\n" {
		t.Errorf("unexpected content %q", content)
	}
}
