package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// ImportMap maps bare names to concrete specifiers, with optional scoped
// overrides. It is loaded once from the root project configuration and is
// immutable for the run; import maps found inside fetched module content are
// never consulted.
type ImportMap struct {
	imports map[string]Specifier
	scopes  []scopeEntry
}

// scopeEntry holds the override mapping for one scope prefix.
// Entries are kept sorted by descending prefix length so that the first
// matching prefix is the longest one.
type scopeEntry struct {
	prefix  string
	imports map[string]Specifier
}

// NewImportMap builds an import map from a root mapping and scoped overrides.
func NewImportMap(imports map[string]Specifier, scopes map[string]map[string]Specifier) *ImportMap {
	m := &ImportMap{imports: make(map[string]Specifier, len(imports))}
	for name, spec := range imports {
		m.imports[name] = spec
	}

	for prefix, overrides := range scopes {
		entry := scopeEntry{prefix: prefix, imports: make(map[string]Specifier, len(overrides))}
		for name, spec := range overrides {
			entry.imports[name] = spec
		}
		m.scopes = append(m.scopes, entry)
	}
	sort.Slice(m.scopes, func(i, j int) bool {
		a, b := m.scopes[i].prefix, m.scopes[j].prefix
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return m
}

// Contains reports whether the name is mapped in the root mapping or any scope.
func (m *ImportMap) Contains(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.imports[name]; ok {
		return true
	}
	for _, s := range m.scopes {
		if _, ok := s.imports[name]; ok {
			return true
		}
	}
	return false
}

// Resolve maps a bare name to its concrete specifier. The requesting module's
// specifier selects at most one scope by longest prefix match; that scope's
// mapping is consulted before the root mapping.
func (m *ImportMap) Resolve(name, requester string) (Specifier, error) {
	if m != nil {
		if scope, ok := m.matchScope(requester); ok {
			if spec, ok := scope.imports[name]; ok {
				return spec, nil
			}
		}
		if spec, ok := m.imports[name]; ok {
			return spec, nil
		}
	}
	err := Tag(ErrUnmappedSpecifier, "specifier", name)
	return Specifier{}, zerr.With(err, "requester", requester)
}

func (m *ImportMap) matchScope(requester string) (scopeEntry, bool) {
	for _, s := range m.scopes {
		if strings.HasPrefix(requester, s.prefix) {
			return s, true
		}
	}
	return scopeEntry{}, false
}
