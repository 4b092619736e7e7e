package appconfig

import "strconv"

// Built-in defaults applied by the config repository before provenance analysis.
const (
	DefaultModel             = "o4-mini"
	DefaultProvider          = "openai"
	DefaultApprovalMode      = "suggest"
	DefaultFullAutoErrorMode = "ask-user"
	DefaultReasoningEffort   = "high"
)

// MemoryConfig holds the nested memory settings
type MemoryConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// AppConfig is the resolved configuration object: file values merged over
// the built-in defaults.
type AppConfig struct {
	Model                  string       `json:"model" yaml:"model"`
	Provider               string       `json:"provider" yaml:"provider"`
	ApprovalMode           string       `json:"approvalMode" yaml:"approvalMode"`
	FullAutoErrorMode      string       `json:"fullAutoErrorMode" yaml:"fullAutoErrorMode"`
	Memory                 MemoryConfig `json:"memory" yaml:"memory"`
	ReasoningEffort        string       `json:"reasoningEffort" yaml:"reasoningEffort"`
	Notify                 bool         `json:"notify" yaml:"notify"`
	DisableResponseStorage bool         `json:"disableResponseStorage" yaml:"disableResponseStorage"`
	FlexMode               bool         `json:"flexMode" yaml:"flexMode"`
	FileOpener             string       `json:"fileOpener,omitempty" yaml:"fileOpener,omitempty"`

	// Debug is nil when neither the file nor the defaults set it.
	Debug *bool `json:"debug,omitempty" yaml:"debug,omitempty"`

	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
}

// Default returns the built-in configuration
func Default() AppConfig {
	return AppConfig{
		Model:             DefaultModel,
		Provider:          DefaultProvider,
		ApprovalMode:      DefaultApprovalMode,
		FullAutoErrorMode: DefaultFullAutoErrorMode,
		ReasoningEffort:   DefaultReasoningEffort,
	}
}

// DebugString renders the debug flag, "false" when unset
func (c AppConfig) DebugString() string {
	if c.Debug == nil {
		return "false"
	}
	return strconv.FormatBool(*c.Debug)
}

// Bool returns a pointer to b, for building configs with an explicit debug flag.
func Bool(b bool) *bool {
	return &b
}
