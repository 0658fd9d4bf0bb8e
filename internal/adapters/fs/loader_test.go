package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/lode/internal/adapters/fs"
	"go.trai.ch/lode/internal/core/domain"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ts")
	if err := os.WriteFile(path, []byte("export {};\n"), 0o600); err != nil {
		t.Fatalf("failed to write module: %v", err)
	}

	content, err := fs.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "export {};\n" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := fs.NewLoader().Load(filepath.Join(t.TempDir(), "absent.ts"))
	if !errors.Is(err, domain.ErrUnresolvedSpecifier) {
		t.Fatalf("expected ErrUnresolvedSpecifier, got %v", err)
	}
}

func TestLoader_Directory(t *testing.T) {
	_, err := fs.NewLoader().Load(t.TempDir())
	if !errors.Is(err, domain.ErrUnresolvedSpecifier) {
		t.Fatalf("expected ErrUnresolvedSpecifier for directory, got %v", err)
	}
}
