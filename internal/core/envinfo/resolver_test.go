package envinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"codex.dev/cli/internal/core/appconfig"
)

const testConfigPath = "/home/test/.codex/config.yaml"

type mapEnv map[string]string

func (m mapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func requireField(t *testing.T, info ResolvedConfigInfo, key string) Field {
	t.Helper()
	f, ok := info.Field(key)
	require.True(t, ok, "field %q missing", key)
	return f
}

func TestResolve_FieldOrderFollowsEnumeration(t *testing.T) {
	info := Resolve(appconfig.Default(), nil, nil, NotFound)

	keys := make([]string, len(info.Fields))
	for i, f := range info.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{
		"model", "provider", "approvalMode", "fullAutoErrorMode", "memory.enabled",
		"reasoningEffort", "notify", "disableResponseStorage", "flexMode",
		"fileOpener", "debug", "apiKey",
	}, keys)
	assert.Equal(t, Keys(), keys)
}

func TestResolve_DefaultWhenAbsentFromFile(t *testing.T) {
	cfg := appconfig.Default()
	cfg.Model = "o3"

	info := Resolve(cfg, RawConfig{}, mapEnv{}, testConfigPath)

	assert.Equal(t, Field{Key: "model", Value: "o3", Source: SourceDefault}, requireField(t, info, "model"))
	assert.Equal(t, Field{Key: "fileOpener", Value: "", Source: SourceDefault}, requireField(t, info, "fileOpener"))
	assert.Equal(t, Field{Key: "notify", Value: "false", Source: SourceDefault}, requireField(t, info, "notify"))
}

func TestResolve_ConfigFileWhenPresentInFile(t *testing.T) {
	cfg := appconfig.Default()
	cfg.Model = "gpt-4.1"
	cfg.FlexMode = true
	cfg.Memory.Enabled = true
	raw := RawConfig{
		"model":    "gpt-4.1",
		"flexMode": true,
		"memory":   map[string]any{"enabled": true},
	}

	info := Resolve(cfg, raw, mapEnv{}, testConfigPath)

	assert.Equal(t, Field{Key: "model", Value: "gpt-4.1", Source: SourceConfigFile}, requireField(t, info, "model"))
	assert.Equal(t, Field{Key: "flexMode", Value: "true", Source: SourceConfigFile}, requireField(t, info, "flexMode"))
	assert.Equal(t, Field{Key: "memory.enabled", Value: "true", Source: SourceConfigFile}, requireField(t, info, "memory.enabled"))
	assert.Equal(t, SourceDefault, requireField(t, info, "provider").Source)
}

func TestResolve_DisplayUsesResolvedValueNotRaw(t *testing.T) {
	cfg := appconfig.Default()
	cfg.ReasoningEffort = "medium"

	info := Resolve(cfg, RawConfig{"reasoningEffort": 42}, nil, testConfigPath)

	assert.Equal(t, "medium", requireField(t, info, "reasoningEffort").Value)
	assert.Equal(t, SourceConfigFile, requireField(t, info, "reasoningEffort").Source)
}

func TestResolve_NonEnvironmentFieldsIgnoreEnvironment(t *testing.T) {
	env := mapEnv{"model": "from-env", "MODEL": "from-env", "OPENAI_MODEL": "from-env"}

	info := Resolve(appconfig.Default(), nil, env, NotFound)

	assert.Equal(t, appconfig.DefaultModel, requireField(t, info, "model").Value)
	assert.Equal(t, SourceDefault, requireField(t, info, "model").Source)
}

func TestResolve_APIKeyPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		configKey  string
		env        mapEnv
		wantValue  string
		wantSource Source
		wantDesc   string
	}{
		{
			name:       "config_wins_over_environment",
			configKey:  "sk-config-0123456789",
			env:        mapEnv{"OPENAI_API_KEY": "sk-env-0123456789"},
			wantValue:  "sk-config-…6789",
			wantSource: SourceConfigFile,
			wantDesc:   "config (" + testConfigPath + ")",
		},
		{
			name:       "environment_when_config_empty",
			env:        mapEnv{"OPENAI_API_KEY": "sk-ABCDEFGHIJKLMNOP"},
			wantValue:  "sk-ABCDEFG…MNOP",
			wantSource: SourceEnvironment,
			wantDesc:   "environment (OPENAI_API_KEY)",
		},
		{
			name:       "empty_environment_is_unset",
			env:        mapEnv{"OPENAI_API_KEY": ""},
			wantValue:  NotSet,
			wantSource: SourceDefault,
			wantDesc:   "not set",
		},
		{
			name:       "absent_everywhere",
			env:        mapEnv{},
			wantValue:  NotSet,
			wantSource: SourceDefault,
			wantDesc:   "not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := appconfig.Default()
			cfg.APIKey = tt.configKey

			info := Resolve(cfg, nil, tt.env, testConfigPath)

			assert.Equal(t, Field{Key: "apiKey", Value: tt.wantValue, Source: tt.wantSource}, requireField(t, info, "apiKey"))
			assert.Equal(t, tt.wantValue, info.RedactedKey)
			assert.Equal(t, tt.wantDesc, info.KeySource)
		})
	}
}

func TestResolve_APIKeyIgnoresRawPresence(t *testing.T) {
	// An empty apiKey written in the file does not make it a file-sourced key.
	info := Resolve(appconfig.Default(), RawConfig{"apiKey": ""}, mapEnv{"OPENAI_API_KEY": "sk-env"}, testConfigPath)

	assert.Equal(t, Field{Key: "apiKey", Value: "sk-env", Source: SourceEnvironment}, requireField(t, info, "apiKey"))
}

func TestResolve_DebugField(t *testing.T) {
	tests := []struct {
		name       string
		debug      *bool
		raw        RawConfig
		env        mapEnv
		wantValue  string
		wantSource Source
	}{
		{
			name:       "file_value_wins",
			debug:      appconfig.Bool(false),
			raw:        RawConfig{"debug": false},
			env:        mapEnv{"DEBUG": "true"},
			wantValue:  "false",
			wantSource: SourceConfigFile,
		},
		{
			name:       "environment_when_unset",
			env:        mapEnv{"DEBUG": "1"},
			wantValue:  "true",
			wantSource: SourceEnvironment,
		},
		{
			name:       "environment_false_is_default",
			env:        mapEnv{"DEBUG": "false"},
			wantValue:  "false",
			wantSource: SourceDefault,
		},
		{
			name:       "unparsable_environment_is_default",
			env:        mapEnv{"DEBUG": "verbose"},
			wantValue:  "false",
			wantSource: SourceDefault,
		},
		{
			name:       "explicit_resolved_value_blocks_environment",
			debug:      appconfig.Bool(true),
			env:        mapEnv{"DEBUG": "true"},
			wantValue:  "true",
			wantSource: SourceDefault,
		},
		{
			name:       "null_in_file_defers_to_environment",
			raw:        RawConfig{"debug": nil},
			env:        mapEnv{"DEBUG": "1"},
			wantValue:  "true",
			wantSource: SourceEnvironment,
		},
		{
			name:       "null_in_file_without_environment_is_default",
			raw:        RawConfig{"debug": nil},
			env:        mapEnv{},
			wantValue:  "false",
			wantSource: SourceDefault,
		},
		{
			name:       "unset_everywhere",
			env:        mapEnv{},
			wantValue:  "false",
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := appconfig.Default()
			cfg.Debug = tt.debug

			info := Resolve(cfg, tt.raw, tt.env, testConfigPath)

			assert.Equal(t, Field{Key: "debug", Value: tt.wantValue, Source: tt.wantSource}, requireField(t, info, "debug"))
		})
	}
}

func TestChecksEnvironment(t *testing.T) {
	for _, key := range Keys() {
		want := key == KeyAPIKey || key == KeyDebug
		assert.Equal(t, want, ChecksEnvironment(key), key)
	}
	assert.False(t, ChecksEnvironment("unknown"))
}

// TestResolve_PropertyBased_FilePresenceDecidesSource checks that fields which
// never consult the environment are file-sourced exactly when the raw mapping
// has their key.
func TestResolve_PropertyBased_FilePresenceDecidesSource(t *testing.T) {
	var plain []string
	for _, key := range Keys() {
		if !ChecksEnvironment(key) {
			plain = append(plain, key)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		present := rapid.SliceOfDistinct(rapid.SampledFrom(plain), rapid.ID[string]).Draw(t, "present")
		raw := RawConfig{}
		for _, key := range present {
			if key == KeyMemoryEnabled {
				raw["memory"] = map[string]any{"enabled": true}
				continue
			}
			raw[key] = "x"
		}
		env := mapEnv{"DEBUG": "true", "OPENAI_API_KEY": "sk-env-key-value"}

		info := Resolve(appconfig.Default(), raw, env, testConfigPath)

		for _, key := range plain {
			f, ok := info.Field(key)
			require.True(t, ok)
			if raw.Has(key) {
				assert.Equal(t, SourceConfigFile, f.Source, key)
			} else {
				assert.Equal(t, SourceDefault, f.Source, key)
			}
		}
	})
}
