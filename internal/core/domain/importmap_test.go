package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/lode/internal/core/domain"
)

func TestImportMap_RootResolve(t *testing.T) {
	im := domain.NewImportMap(map[string]domain.Specifier{
		"@x/y":   mustParse(t, "jsr:@x/y@^1.2.0"),
		"assert": mustParse(t, "jsr:@std/assert@^1.0.0"),
	}, nil)

	spec, err := im.Resolve("@x/y", "main.ts")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.String() != "jsr:@x/y@^1.2.0" {
		t.Errorf("expected jsr:@x/y@^1.2.0, got %s", spec.String())
	}
}

func TestImportMap_ScopeOverridesRoot(t *testing.T) {
	im := domain.NewImportMap(
		map[string]domain.Specifier{
			"@x/y": mustParse(t, "jsr:@x/y@^1.2.0"),
		},
		map[string]map[string]domain.Specifier{
			"vendor/": {
				"@x/y": mustParse(t, "jsr:@x/y@1.0.0"),
			},
		},
	)

	// A requester inside the scope gets the override.
	spec, err := im.Resolve("@x/y", "vendor/legacy/main.ts")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.String() != "jsr:@x/y@1.0.0" {
		t.Errorf("expected scoped override, got %s", spec.String())
	}

	// Outside the scope the root mapping applies.
	spec, err = im.Resolve("@x/y", "src/main.ts")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.String() != "jsr:@x/y@^1.2.0" {
		t.Errorf("expected root mapping, got %s", spec.String())
	}
}

func TestImportMap_LongestPrefixWins(t *testing.T) {
	im := domain.NewImportMap(
		map[string]domain.Specifier{
			"dep": mustParse(t, "jsr:@a/dep@^3.0.0"),
		},
		map[string]map[string]domain.Specifier{
			"vendor/": {
				"dep": mustParse(t, "jsr:@a/dep@1.0.0"),
			},
			"vendor/special/": {
				"dep": mustParse(t, "jsr:@a/dep@2.0.0"),
			},
		},
	)

	spec, err := im.Resolve("dep", "vendor/special/mod.ts")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.String() != "jsr:@a/dep@2.0.0" {
		t.Errorf("expected longest-prefix scope, got %s", spec.String())
	}
}

func TestImportMap_ScopeFallsBackToRoot(t *testing.T) {
	im := domain.NewImportMap(
		map[string]domain.Specifier{
			"other": mustParse(t, "npm:other@^2.0.0"),
		},
		map[string]map[string]domain.Specifier{
			"vendor/": {
				"dep": mustParse(t, "jsr:@a/dep@1.0.0"),
			},
		},
	)

	// The matching scope does not define "other"; the root mapping applies.
	spec, err := im.Resolve("other", "vendor/mod.ts")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.String() != "npm:other@^2.0.0" {
		t.Errorf("expected root mapping, got %s", spec.String())
	}
}

func TestImportMap_Unmapped(t *testing.T) {
	im := domain.NewImportMap(map[string]domain.Specifier{
		"@x/y": mustParse(t, "jsr:@x/y@^1.2.0"),
	}, nil)

	_, err := im.Resolve("missing", "main.ts")
	if !errors.Is(err, domain.ErrUnmappedSpecifier) {
		t.Fatalf("expected ErrUnmappedSpecifier, got %v", err)
	}
}

func TestImportMap_Contains(t *testing.T) {
	im := domain.NewImportMap(
		map[string]domain.Specifier{
			"root-only": mustParse(t, "npm:root-only@1.0.0"),
		},
		map[string]map[string]domain.Specifier{
			"test/": {
				"scope-only": mustParse(t, "npm:scope-only@1.0.0"),
			},
		},
	)

	for _, name := range []string{"root-only", "scope-only"} {
		if !im.Contains(name) {
			t.Errorf("expected Contains(%q) to be true", name)
		}
	}
	if im.Contains("absent") {
		t.Error("expected Contains(\"absent\") to be false")
	}
}

func TestIntegrityHash_Deterministic(t *testing.T) {
	content := []byte("export const x = 1;\n")

	h1 := domain.IntegrityHash(content)
	h2 := domain.IntegrityHash(content)
	if h1 != h2 {
		t.Errorf("hash not deterministic: %s vs %s", h1, h2)
	}
	if h1 == domain.IntegrityHash([]byte("export const x = 2;\n")) {
		t.Error("different content produced identical hashes")
	}
	if len(h1) != 64 {
		t.Errorf("expected sha256 hex digest, got %d chars", len(h1))
	}
}
