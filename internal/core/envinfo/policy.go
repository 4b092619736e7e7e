package envinfo

import (
	"strconv"

	"codex.dev/cli/internal/core/appconfig"
)

// Field keys, in display enumeration order
const (
	KeyModel                  = "model"
	KeyProvider               = "provider"
	KeyApprovalMode           = "approvalMode"
	KeyFullAutoErrorMode      = "fullAutoErrorMode"
	KeyMemoryEnabled          = "memory.enabled"
	KeyReasoningEffort        = "reasoningEffort"
	KeyNotify                 = "notify"
	KeyDisableResponseStorage = "disableResponseStorage"
	KeyFlexMode               = "flexMode"
	KeyFileOpener             = "fileOpener"
	KeyDebug                  = "debug"
	KeyAPIKey                 = "apiKey"
)

// Environment variables consulted by the resolver
const (
	EnvAPIKey = "OPENAI_API_KEY"
	EnvDebug  = "DEBUG"
)

// fieldPolicy describes how one field is resolved. ChecksEnvironment is set
// per field rather than derived; most fields never look at the environment.
type fieldPolicy struct {
	Key               string
	ChecksEnvironment bool
	EnvVar            string

	// Secret fields take the three-way key resolution instead of the file
	// presence test.
	Secret bool

	value func(appconfig.AppConfig) string

	// fromEnv decides whether an environment value wins over the default.
	fromEnv func(cfg appconfig.AppConfig, envValue string) (string, bool)

	// unset reports that the resolved config carries no value for the field.
	// Such a field is never attributed to the file, even if the key is
	// written there (e.g. "debug": null).
	unset func(cfg appconfig.AppConfig) bool
}

var policies = []fieldPolicy{
	{Key: KeyModel, value: func(c appconfig.AppConfig) string { return c.Model }},
	{Key: KeyProvider, value: func(c appconfig.AppConfig) string { return c.Provider }},
	{Key: KeyApprovalMode, value: func(c appconfig.AppConfig) string { return c.ApprovalMode }},
	{Key: KeyFullAutoErrorMode, value: func(c appconfig.AppConfig) string { return c.FullAutoErrorMode }},
	{Key: KeyMemoryEnabled, value: func(c appconfig.AppConfig) string { return strconv.FormatBool(c.Memory.Enabled) }},
	{Key: KeyReasoningEffort, value: func(c appconfig.AppConfig) string { return c.ReasoningEffort }},
	{Key: KeyNotify, value: func(c appconfig.AppConfig) string { return strconv.FormatBool(c.Notify) }},
	{Key: KeyDisableResponseStorage, value: func(c appconfig.AppConfig) string { return strconv.FormatBool(c.DisableResponseStorage) }},
	{Key: KeyFlexMode, value: func(c appconfig.AppConfig) string { return strconv.FormatBool(c.FlexMode) }},
	{Key: KeyFileOpener, value: func(c appconfig.AppConfig) string { return c.FileOpener }},
	{
		Key:               KeyDebug,
		ChecksEnvironment: true,
		EnvVar:            EnvDebug,
		value:             appconfig.AppConfig.DebugString,
		fromEnv:           debugFromEnv,
		unset:             func(c appconfig.AppConfig) bool { return c.Debug == nil },
	},
	{
		Key:               KeyAPIKey,
		ChecksEnvironment: true,
		EnvVar:            EnvAPIKey,
		Secret:            true,
	},
}

// debugFromEnv only applies when the resolved config left debug unset; an
// explicit value, even false, is never overridden by the environment.
func debugFromEnv(cfg appconfig.AppConfig, envValue string) (string, bool) {
	if cfg.Debug != nil {
		return "", false
	}
	on, err := strconv.ParseBool(envValue)
	if err != nil || !on {
		return "", false
	}
	return "true", true
}

// Keys returns every field key in enumeration order.
func Keys() []string {
	keys := make([]string, len(policies))
	for i, p := range policies {
		keys[i] = p.Key
	}
	return keys
}

// ChecksEnvironment reports whether the field with the given key consults the
// environment at all.
func ChecksEnvironment(key string) bool {
	for _, p := range policies {
		if p.Key == key {
			return p.ChecksEnvironment
		}
	}
	return false
}
