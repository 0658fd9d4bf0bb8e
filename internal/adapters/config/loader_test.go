package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/lode/internal/adapters/config"
	"go.trai.ch/lode/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
entries:
  - ./main.ts
imports:
  "@std/path": "jsr:@std/path@^1.0.0"
  "preact": "npm:preact@10.5.0"
scopes:
  "jsr:@std/":
    "@std/path": "jsr:@std/path@1.0.8"
vendor: true
scripts:
  check: ["lode", "cache", "./main.ts"]
`
	path := writeConfig(t, content)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Entries) != 1 || cfg.Entries[0] != "./main.ts" {
		t.Errorf("unexpected entries %v", cfg.Entries)
	}
	if !cfg.Vendor {
		t.Error("expected vendor to be enabled")
	}
	if !cfg.LockEnabled {
		t.Error("lock should default to enabled")
	}
	if cfg.LockPath != filepath.Join(filepath.Dir(path), domain.DefaultLockfileName) {
		t.Errorf("unexpected lock path %s", cfg.LockPath)
	}
	if len(cfg.Scripts["check"]) != 3 {
		t.Errorf("unexpected script %v", cfg.Scripts["check"])
	}

	if cfg.Imports == nil {
		t.Fatal("expected an import map")
	}
	spec, err := cfg.Imports.Resolve("preact", "")
	if err != nil {
		t.Fatalf("resolve preact: %v", err)
	}
	if spec.Registry != domain.RegistryNPM || spec.Name.String() != "preact" {
		t.Errorf("unexpected mapped specifier %+v", spec)
	}

	// The scoped override pins @std/path for requesters under jsr:@std/.
	spec, err = cfg.Imports.Resolve("@std/path", "jsr:@std/fs@1.0.0")
	if err != nil {
		t.Fatalf("resolve scoped @std/path: %v", err)
	}
	if spec.Range.Kind != domain.RangeExact {
		t.Errorf("expected scoped override to pin an exact version, got %v", spec.Range.Kind)
	}
}

func TestLoad_LockDisabled(t *testing.T) {
	path := writeConfig(t, "entries: [./main.ts]\nlock: false\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LockEnabled {
		t.Error("expected lock to be disabled")
	}
}

func TestLoad_LockCustomPath(t *testing.T) {
	path := writeConfig(t, "entries: [./main.ts]\nlock: deps.lock\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.LockEnabled {
		t.Error("expected lock to be enabled")
	}
	if cfg.LockPath != filepath.Join(filepath.Dir(path), "deps.lock") {
		t.Errorf("unexpected lock path %s", cfg.LockPath)
	}
}

func TestLoad_RegistryOverrides(t *testing.T) {
	path := writeConfig(t, `
entries: [./main.ts]
registries:
  jsr: https://jsr.example.com
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RegistryURLs[domain.RegistryJSR] != "https://jsr.example.com" {
		t.Errorf("unexpected registry overrides %v", cfg.RegistryURLs)
	}
}

func TestLoad_UnknownRegistry(t *testing.T) {
	path := writeConfig(t, "registries:\n  cargo: https://crates.example.com\n")

	_, err := config.Load(path)
	if !errors.Is(err, domain.ErrRegistryUnknown) {
		t.Fatalf("expected ErrRegistryUnknown, got %v", err)
	}
}

func TestLoad_BareImportValue(t *testing.T) {
	path := writeConfig(t, "imports:\n  \"preact\": \"preact\"\n")

	_, err := config.Load(path)
	if !errors.Is(err, domain.ErrUnresolvedSpecifier) {
		t.Fatalf("expected ErrUnresolvedSpecifier for bare mapped value, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "entries: [unclosed\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestFileConfigLoader_Load(t *testing.T) {
	path := writeConfig(t, "entries: [./main.ts]\n")
	loader := &config.FileConfigLoader{Filename: config.DefaultFilename}

	cfg, err := loader.Load(filepath.Dir(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Entries) != 1 {
		t.Errorf("unexpected entries %v", cfg.Entries)
	}
}
