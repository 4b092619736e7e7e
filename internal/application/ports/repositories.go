package ports

import (
	"codex.dev/cli/internal/core/appconfig"
	"codex.dev/cli/internal/core/envinfo"
)

// ConfigurationRepository loads the resolved application configuration
type ConfigurationRepository interface {
	// Load returns the file configuration merged over the defaults. On a
	// read or parse failure the defaults are returned together with the error.
	Load() (appconfig.AppConfig, error)

	// LoadDefault returns the built-in configuration
	LoadDefault() appconfig.AppConfig
}

// ConfigFileLocator finds the config file in use
type ConfigFileLocator interface {
	// Locate returns the first candidate path that exists, or envinfo.NotFound.
	Locate() string
}

// RawConfigLoader re-reads a config file for key presence tests
type RawConfigLoader interface {
	// LoadRaw never fails; unreadable or malformed files yield an empty mapping.
	LoadRaw(path string) envinfo.RawConfig
}
