package testfixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"codex.dev/cli/internal/core/appconfig"
	"codex.dev/cli/internal/core/envinfo"
)

// ConfigFileBuilder provides a builder pattern for writing test config files
type ConfigFileBuilder struct {
	name   string
	values map[string]any
	raw    []byte
}

// NewConfigFileBuilder creates a builder for an empty config.json
func NewConfigFileBuilder() *ConfigFileBuilder {
	return &ConfigFileBuilder{
		name:   "config.json",
		values: map[string]any{},
	}
}

// WithName sets the file name; .yaml and .yml names are encoded as YAML
func (b *ConfigFileBuilder) WithName(name string) *ConfigFileBuilder {
	b.name = name
	return b
}

// WithYAML switches the file to config.yaml
func (b *ConfigFileBuilder) WithYAML() *ConfigFileBuilder {
	return b.WithName("config.yaml")
}

// With sets a top-level key
func (b *ConfigFileBuilder) With(key string, value any) *ConfigFileBuilder {
	b.values[key] = value
	return b
}

// WithModel sets the model key
func (b *ConfigFileBuilder) WithModel(model string) *ConfigFileBuilder {
	return b.With(envinfo.KeyModel, model)
}

// WithAPIKey sets the stored API key
func (b *ConfigFileBuilder) WithAPIKey(key string) *ConfigFileBuilder {
	return b.With(envinfo.KeyAPIKey, key)
}

// WithDebug sets the debug flag
func (b *ConfigFileBuilder) WithDebug(debug bool) *ConfigFileBuilder {
	return b.With(envinfo.KeyDebug, debug)
}

// WithMemory sets the nested memory.enabled flag
func (b *ConfigFileBuilder) WithMemory(enabled bool) *ConfigFileBuilder {
	return b.With("memory", map[string]any{"enabled": enabled})
}

// WithRawContent replaces the encoded body, e.g. to produce a malformed file
func (b *ConfigFileBuilder) WithRawContent(content string) *ConfigFileBuilder {
	b.raw = []byte(content)
	return b
}

// Content returns the encoded file body
func (b *ConfigFileBuilder) Content(t testing.TB) []byte {
	t.Helper()
	if b.raw != nil {
		return b.raw
	}

	var (
		data []byte
		err  error
	)
	switch filepath.Ext(b.name) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(b.values)
	default:
		data, err = json.Marshal(b.values)
	}
	if err != nil {
		t.Fatalf("failed to encode config fixture: %v", err)
	}
	return data
}

// WriteTo writes the file into dir and returns its path
func (b *ConfigFileBuilder) WriteTo(t testing.TB, dir string) string {
	t.Helper()
	path := filepath.Join(dir, b.name)
	if err := os.WriteFile(path, b.Content(t), 0o600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

// Build writes the file into a fresh temp dir and returns the dir and file path
func (b *ConfigFileBuilder) Build(t testing.TB) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return dir, b.WriteTo(t, dir)
}

// AppConfigBuilder builds resolved configuration objects for tests
type AppConfigBuilder struct {
	cfg appconfig.AppConfig
}

// NewAppConfigBuilder starts from the built-in defaults
func NewAppConfigBuilder() *AppConfigBuilder {
	return &AppConfigBuilder{cfg: appconfig.Default()}
}

// WithModel sets the model
func (b *AppConfigBuilder) WithModel(model string) *AppConfigBuilder {
	b.cfg.Model = model
	return b
}

// WithAPIKey sets the stored API key
func (b *AppConfigBuilder) WithAPIKey(key string) *AppConfigBuilder {
	b.cfg.APIKey = key
	return b
}

// WithDebug sets the debug flag
func (b *AppConfigBuilder) WithDebug(debug bool) *AppConfigBuilder {
	b.cfg.Debug = appconfig.Bool(debug)
	return b
}

// Build returns the configuration
func (b *AppConfigBuilder) Build() appconfig.AppConfig {
	return b.cfg
}
