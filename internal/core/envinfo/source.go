package envinfo

import "fmt"

// Sentinels used in place of missing values
const (
	NotFound = "<not found>"
	NotSet   = "<not set>"
)

// Source is the provenance tier that supplied a field's value
type Source string

const (
	SourceConfigFile  Source = "config"
	SourceEnvironment Source = "environment"
	SourceDefault     Source = "default"
)

// sourceOrder is the display order of the tiers, highest precedence first.
var sourceOrder = []Source{SourceConfigFile, SourceEnvironment, SourceDefault}

// Label returns the bucket label used when grouping fields for display.
func (s Source) Label(configPath string) string {
	if s == SourceConfigFile {
		return fmt.Sprintf("config (%s)", configPath)
	}
	return string(s)
}

// Field is a single resolved configuration value and its provenance
type Field struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source Source `json:"source"`
}

// ResolvedConfigInfo is the per-invocation snapshot of the effective configuration.
type ResolvedConfigInfo struct {
	UsedConfigPath string
	RedactedKey    string
	KeySource      string
	Fields         []Field
}

// Field returns the field with the given key.
func (i ResolvedConfigInfo) Field(key string) (Field, bool) {
	for _, f := range i.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
