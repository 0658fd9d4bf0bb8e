// Package config provides the project configuration loader for lode.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFilename = "lode.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.ProjectConfig, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a configuration file from the given path and returns the
// project configuration.
func Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var lodefile Lodefile
	if err := yaml.Unmarshal(data, &lodefile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	dir := filepath.Dir(path)

	imports, err := buildImportMap(lodefile, dir)
	if err != nil {
		return nil, err
	}

	registries, err := buildRegistryURLs(lodefile.Registries)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ProjectConfig{
		BaseDir:      dir,
		Entries:      lodefile.Entries,
		Imports:      imports,
		Vendor:       lodefile.Vendor,
		LockEnabled:  true,
		LockPath:     filepath.Join(dir, domain.DefaultLockfileName),
		Scripts:      lodefile.Scripts,
		RegistryURLs: registries,
	}

	if lodefile.Lock.set {
		cfg.LockEnabled = lodefile.Lock.enabled
		if lodefile.Lock.path != "" {
			cfg.LockPath = filepath.Join(dir, lodefile.Lock.path)
		}
	}

	return cfg, nil
}

// buildImportMap parses the mapped specifier strings. Mapped values must be
// concrete specifiers; a value that is itself a bare name is rejected.
func buildImportMap(lodefile Lodefile, dir string) (*domain.ImportMap, error) {
	if len(lodefile.Imports) == 0 && len(lodefile.Scopes) == 0 {
		return nil, nil
	}

	root, err := parseMapping(lodefile.Imports, dir)
	if err != nil {
		return nil, err
	}

	scopes := make(map[string]map[string]domain.Specifier, len(lodefile.Scopes))
	for prefix, raw := range lodefile.Scopes {
		mapped, err := parseMapping(raw, dir)
		if err != nil {
			return nil, zerr.With(err, "scope", prefix)
		}
		scopes[prefix] = mapped
	}

	return domain.NewImportMap(root, scopes), nil
}

func parseMapping(raw map[string]string, dir string) (map[string]domain.Specifier, error) {
	mapped := make(map[string]domain.Specifier, len(raw))
	for name, value := range raw {
		spec, err := domain.ParseSpecifier(value, dir, nil)
		if err != nil {
			return nil, zerr.With(err, "import", name)
		}
		mapped[name] = spec
	}
	return mapped, nil
}

func buildRegistryURLs(raw map[string]string) (map[domain.RegistryKind]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	urls := make(map[domain.RegistryKind]string, len(raw))
	for name, base := range raw {
		kind := domain.RegistryKind(name)
		switch kind {
		case domain.RegistryJSR, domain.RegistryNPM:
			urls[kind] = base
		default:
			return nil, domain.Tag(domain.ErrRegistryUnknown, "registry", name)
		}
	}
	return urls, nil
}
