// Package domain contains the core domain models for module resolution:
// specifiers, version ranges, import maps and the lock file.
package domain

import (
	"net/url"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// SpecifierKind classifies a parsed import string.
type SpecifierKind int

const (
	// KindLocal is a relative or absolute file path.
	KindLocal SpecifierKind = iota
	// KindBare is a bare name that must be resolved through the import map.
	KindBare
	// KindRegistry is a registry-backed package reference (jsr: or npm:).
	KindRegistry
	// KindURL is an absolute http(s) URL.
	KindURL
)

// RegistryKind identifies the registry a specifier is served from.
type RegistryKind string

const (
	// RegistryJSR is the jsr: registry.
	RegistryJSR RegistryKind = "jsr"
	// RegistryNPM is the npm: registry.
	RegistryNPM RegistryKind = "npm"
)

// moduleExtensions lists the file extensions a local specifier may name.
// Anything else fails resolution; there is no index-file defaulting.
var moduleExtensions = map[string]struct{}{
	".ts": {}, ".tsx": {}, ".mts": {}, ".cts": {},
	".js": {}, ".jsx": {}, ".mjs": {}, ".cjs": {},
	".json": {}, ".wasm": {},
}

// Specifier is a parsed import string. It is immutable once parsed;
// only the fields relevant to its Kind are populated.
type Specifier struct {
	Kind SpecifierKind

	// Path is the cleaned file path (KindLocal).
	Path InternedString

	// Name is the bare name (KindBare) or package name (KindRegistry).
	Name InternedString

	// Registry and Range describe a registry reference (KindRegistry).
	Registry RegistryKind
	Range    VersionRange

	// URL is the absolute URL (KindURL).
	URL InternedString
}

// ParseSpecifier parses a raw import string against a resolution base.
// The import map is consulted only to classify bare names; resolving them
// to a concrete specifier is the map's job.
func ParseSpecifier(raw, base string, imports *ImportMap) (Specifier, error) {
	if raw == "" {
		return Specifier{}, Tag(ErrInvalidSpecifier, "specifier", raw)
	}

	if rest, ok := strings.CutPrefix(raw, "jsr:"); ok {
		return parseRegistrySpecifier(RegistryJSR, rest, raw)
	}
	if rest, ok := strings.CutPrefix(raw, "npm:"); ok {
		return parseRegistrySpecifier(RegistryNPM, rest, raw)
	}

	if imports != nil && imports.Contains(raw) {
		return Specifier{Kind: KindBare, Name: NewInternedString(raw)}, nil
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return Specifier{}, Tag(ErrInvalidSpecifier, "specifier", raw)
		}
		return Specifier{Kind: KindURL, URL: NewInternedString(u.String())}, nil
	}

	return parseLocalSpecifier(raw, base)
}

func parseLocalSpecifier(raw, base string) (Specifier, error) {
	ext := filepath.Ext(raw)
	if _, ok := moduleExtensions[ext]; !ok {
		err := Tag(ErrUnresolvedSpecifier, "specifier", raw)
		return Specifier{}, zerr.With(err, "reason", "missing file extension")
	}

	p := raw
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return Specifier{Kind: KindLocal, Path: NewInternedString(filepath.Clean(p))}, nil
}

// parseRegistrySpecifier splits "name[@range]" after the registry prefix.
// JSR package names are always scoped (@scope/name); npm scopes are optional.
func parseRegistrySpecifier(kind RegistryKind, rest, raw string) (Specifier, error) {
	name := rest
	rangeStr := ""
	if idx := strings.LastIndex(rest, "@"); idx > 0 {
		name, rangeStr = rest[:idx], rest[idx+1:]
	}

	if name == "" {
		return Specifier{}, Tag(ErrInvalidSpecifier, "specifier", raw)
	}
	if kind == RegistryJSR && (!strings.HasPrefix(name, "@") || !strings.Contains(name, "/")) {
		err := Tag(ErrInvalidSpecifier, "specifier", raw)
		return Specifier{}, zerr.With(err, "reason", "jsr packages must be scoped (@scope/name)")
	}

	vr, err := ParseRange(rangeStr)
	if err != nil {
		return Specifier{}, zerr.With(err, "specifier", raw)
	}

	return Specifier{
		Kind:     KindRegistry,
		Name:     NewInternedString(name),
		Registry: kind,
		Range:    vr,
	}, nil
}

// String returns the canonical textual form of the specifier.
func (s Specifier) String() string {
	switch s.Kind {
	case KindLocal:
		return s.Path.String()
	case KindBare:
		return s.Name.String()
	case KindURL:
		return s.URL.String()
	case KindRegistry:
		if s.Range.Kind == RangeLatest {
			return string(s.Registry) + ":" + s.Name.String()
		}
		return string(s.Registry) + ":" + s.Name.String() + "@" + s.Range.String()
	}
	return ""
}

// Resolved returns the fully resolved specifier string for a registry
// reference: the concrete version substituted for the range. This string
// keys the module cache and the lock file.
func (s Specifier) Resolved(v Version) string {
	return string(s.Registry) + ":" + s.Name.String() + "@" + v.String()
}
