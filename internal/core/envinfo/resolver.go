package envinfo

import (
	"fmt"

	"codex.dev/cli/internal/core/appconfig"
	"codex.dev/cli/internal/core/fallback"
)

// keyResolution is the outcome of the API key's three-way lookup
type keyResolution struct {
	value       string
	source      Source
	description string
}

// Resolve determines the effective value and source tier of every known field.
// cfg must already have defaults applied; raw is only used to test whether a
// key was written in the config file. A nil raw or env behaves as empty.
func Resolve(cfg appconfig.AppConfig, raw RawConfig, env Environment, usedConfigPath string) ResolvedConfigInfo {
	if env == nil {
		env = emptyEnvironment{}
	}

	key := resolveKey(cfg, env, usedConfigPath)
	redacted := Redact(key.value)

	fields := make([]Field, 0, len(policies))
	for _, p := range policies {
		if p.Secret {
			fields = append(fields, Field{Key: p.Key, Value: redacted, Source: key.source})
			continue
		}
		fields = append(fields, resolveField(p, cfg, raw, env))
	}

	return ResolvedConfigInfo{
		UsedConfigPath: usedConfigPath,
		RedactedKey:    redacted,
		KeySource:      key.description,
		Fields:         fields,
	}
}

func resolveKey(cfg appconfig.AppConfig, env Environment, usedConfigPath string) keyResolution {
	fromConfig := func() (keyResolution, bool) {
		if cfg.APIKey == "" {
			return keyResolution{}, false
		}
		return keyResolution{
			value:       cfg.APIKey,
			source:      SourceConfigFile,
			description: fmt.Sprintf("config (%s)", usedConfigPath),
		}, true
	}
	fromEnv := func() (keyResolution, bool) {
		v, ok := env.Lookup(EnvAPIKey)
		if !ok || v == "" {
			return keyResolution{}, false
		}
		return keyResolution{
			value:       v,
			source:      SourceEnvironment,
			description: fmt.Sprintf("environment (%s)", EnvAPIKey),
		}, true
	}

	return fallback.Or(
		keyResolution{source: SourceDefault, description: "not set"},
		fromConfig, fromEnv,
	)
}

func resolveField(p fieldPolicy, cfg appconfig.AppConfig, raw RawConfig, env Environment) Field {
	attempts := []fallback.Attempt[Field]{
		func() (Field, bool) {
			if !raw.Has(p.Key) || (p.unset != nil && p.unset(cfg)) {
				return Field{}, false
			}
			return Field{Key: p.Key, Value: p.value(cfg), Source: SourceConfigFile}, true
		},
	}

	if p.ChecksEnvironment && p.fromEnv != nil {
		attempts = append(attempts, func() (Field, bool) {
			envValue, ok := env.Lookup(p.EnvVar)
			if !ok {
				return Field{}, false
			}
			v, ok := p.fromEnv(cfg, envValue)
			if !ok {
				return Field{}, false
			}
			return Field{Key: p.Key, Value: v, Source: SourceEnvironment}, true
		})
	}

	return fallback.Or(Field{Key: p.Key, Value: p.value(cfg), Source: SourceDefault}, attempts...)
}

type emptyEnvironment struct{}

func (emptyEnvironment) Lookup(string) (string, bool) { return "", false }
