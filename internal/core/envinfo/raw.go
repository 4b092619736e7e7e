package envinfo

import "strings"

// RawConfig is the config file's literal content as parsed, before defaults.
// It is only consulted for key presence.
type RawConfig map[string]any

// Has reports whether key is explicitly present. Dotted keys address nested
// mappings, so "memory.enabled" looks for "enabled" inside "memory".
func (r RawConfig) Has(key string) bool {
	var node any = map[string]any(r)
	for _, part := range strings.Split(key, ".") {
		m, ok := asMap(node)
		if !ok {
			return false
		}
		next, ok := m[part]
		if !ok {
			return false
		}
		node = next
	}
	return true
}

func asMap(node any) (map[string]any, bool) {
	switch m := node.(type) {
	case map[string]any:
		return m, true
	case RawConfig:
		return m, true
	}
	return nil, false
}

// Environment is a read-only view of environment variables.
type Environment interface {
	Lookup(key string) (string, bool)
}
