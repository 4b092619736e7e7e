// Package environment provides read-only views of environment variables.
package environment

import (
	"os"
	"strings"

	"codex.dev/cli/internal/core/envinfo"
)

// Map is a fixed set of variables, used for tests and snapshots
type Map map[string]string

// Lookup implements envinfo.Environment
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Snapshot captures the process environment at call time
func Snapshot() Map {
	return FromPairs(os.Environ())
}

// FromPairs builds a Map from KEY=VALUE pairs as returned by os.Environ.
// Entries without "=" are ignored; later duplicates win.
func FromPairs(pairs []string) Map {
	m := make(Map, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		m[key] = value
	}
	return m
}

var _ envinfo.Environment = Map{}
