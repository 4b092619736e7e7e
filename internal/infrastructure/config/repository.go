package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/core/appconfig"
	"codex.dev/cli/internal/core/envinfo"
)

// Repository produces the resolved application configuration: the located
// config file decoded over the built-in defaults.
type Repository struct {
	locator ports.ConfigFileLocator
}

// NewRepository creates a configuration repository
func NewRepository(locator ports.ConfigFileLocator) *Repository {
	return &Repository{locator: locator}
}

// Load retrieves the current configuration. Keys absent from the file keep
// their default values.
func (r *Repository) Load() (appconfig.AppConfig, error) {
	cfg := r.LoadDefault()

	path := r.GetConfigPath()
	if path == envinfo.NotFound {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	merged := cfg
	if isYAML(path) {
		err = yaml.Unmarshal(data, &merged)
	} else {
		err = json.Unmarshal(data, &merged)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return merged, nil
}

// LoadDefault returns the default configuration
func (r *Repository) LoadDefault() appconfig.AppConfig {
	return appconfig.Default()
}

// GetConfigPath returns the path of the config file in use, or envinfo.NotFound
func (r *Repository) GetConfigPath() string {
	return r.locator.Locate()
}

var _ ports.ConfigurationRepository = (*Repository)(nil)
