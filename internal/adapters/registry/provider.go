package registry

import (
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
)

// Set implements ports.RegistryProvider over the known registry kinds.
type Set struct {
	jsr *JSR
	npm *NPM
}

// NewSet creates clients for every known registry kind.
func NewSet(proxy ports.ProxyProvider) *Set {
	return &Set{
		jsr: NewJSR(proxy),
		npm: NewNPM(proxy),
	}
}

// For returns the client for the given registry kind.
func (s *Set) For(kind domain.RegistryKind) (ports.Registry, error) {
	switch kind {
	case domain.RegistryJSR:
		return s.jsr, nil
	case domain.RegistryNPM:
		return s.npm, nil
	}
	return nil, domain.Tag(domain.ErrRegistryUnknown, "registry", string(kind))
}

// SetBaseURL overrides a registry's base URL, e.g. from project configuration.
// Unknown kinds are ignored; the specifier parser never produces them.
func (s *Set) SetBaseURL(kind domain.RegistryKind, baseURL string) {
	switch kind {
	case domain.RegistryJSR:
		s.jsr.setBaseURL(baseURL)
	case domain.RegistryNPM:
		s.npm.setBaseURL(baseURL)
	}
}

var _ ports.RegistryProvider = (*Set)(nil)
