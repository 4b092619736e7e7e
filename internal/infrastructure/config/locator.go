package config

import (
	"os"
	"path/filepath"

	"codex.dev/cli/internal/application/ports"
	"codex.dev/cli/internal/core/envinfo"
)

// ConfigDirName is the directory under $HOME holding the config file
const ConfigDirName = ".codex"

// candidateNames are checked in priority order
var candidateNames = []string{"config.json", "config.yaml", "config.yml"}

// Locator finds which config file, if any, is in use
type Locator struct {
	dir string
}

// NewLocator creates a locator for dir. An empty dir means DefaultConfigDir.
func NewLocator(dir string) *Locator {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Locator{dir: dir}
}

// DefaultConfigDir returns ~/.codex
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ConfigDirName)
}

// Dir returns the directory searched by the locator
func (l *Locator) Dir() string {
	return l.dir
}

// Candidates returns the candidate paths in priority order
func (l *Locator) Candidates() []string {
	paths := make([]string, len(candidateNames))
	for i, name := range candidateNames {
		paths[i] = filepath.Join(l.dir, name)
	}
	return paths
}

// Locate returns the first existing candidate, or envinfo.NotFound
func (l *Locator) Locate() string {
	for _, path := range l.Candidates() {
		if exists(path) {
			return path
		}
	}
	return envinfo.NotFound
}

func exists(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !stat.IsDir()
}

var _ ports.ConfigFileLocator = (*Locator)(nil)
