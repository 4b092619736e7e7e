package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/core/envinfo"
)

// RawLoader re-reads the config file to learn which keys it sets explicitly
type RawLoader struct {
	logger ports.LoggingGateway
}

// NewRawLoader creates a raw loader. logger may be nil.
func NewRawLoader(logger ports.LoggingGateway) *RawLoader {
	return &RawLoader{logger: logger}
}

// LoadRaw returns the file's top-level mapping. A missing, unreadable or
// malformed file yields an empty mapping.
func (l *RawLoader) LoadRaw(path string) envinfo.RawConfig {
	if path == "" || path == envinfo.NotFound {
		return envinfo.RawConfig{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.debug("config file unreadable, ignoring for provenance", path, err)
		return envinfo.RawConfig{}
	}

	raw, err := decodeRaw(path, data)
	if err != nil {
		l.debug("config file unparsable, ignoring for provenance", path, err)
		return envinfo.RawConfig{}
	}
	return raw
}

func (l *RawLoader) debug(message, path string, err error) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ports.LogLevelDebug, message, map[string]interface{}{
		"path":  path,
		"error": err.Error(),
	})
}

// isYAML reports whether path should be parsed as YAML; everything else is JSON.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decodeRaw(path string, data []byte) (envinfo.RawConfig, error) {
	var raw map[string]any
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return envinfo.RawConfig(raw), nil
}

var _ ports.RawConfigLoader = (*RawLoader)(nil)
