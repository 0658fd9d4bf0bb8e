package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Lodefile represents the structure of the lode.yaml configuration file.
type Lodefile struct {
	Entries    []string                     `yaml:"entries"`
	Imports    map[string]string            `yaml:"imports"`
	Scopes     map[string]map[string]string `yaml:"scopes"`
	Vendor     bool                         `yaml:"vendor"`
	Lock       lockSetting                  `yaml:"lock"`
	Scripts    map[string][]string          `yaml:"scripts"`
	Registries map[string]string            `yaml:"registries"`
}

// lockSetting accepts either a boolean or a lock file path. Absent means
// enabled at the standard path.
type lockSetting struct {
	set     bool
	enabled bool
	path    string
}

func (l *lockSetting) UnmarshalYAML(value *yaml.Node) error {
	l.set = true

	var enabled bool
	if err := value.Decode(&enabled); err == nil {
		l.enabled = enabled
		return nil
	}

	var path string
	if err := value.Decode(&path); err == nil {
		l.enabled = true
		l.path = path
		return nil
	}

	return fmt.Errorf("lock must be a boolean or a file path, got %q", value.Value)
}
