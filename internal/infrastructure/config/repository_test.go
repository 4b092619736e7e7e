package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codex.dev/cli/internal/core/appconfig"
)

func TestRepository_NoFileReturnsDefaults(t *testing.T) {
	repo := NewRepository(NewLocator(t.TempDir()))

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, appconfig.Default(), cfg)
	assert.Nil(t, cfg.Debug)
}

func TestRepository_FileMergedOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "model: o3\ndebug: false\nmemory:\n  enabled: true\napiKey: sk-file-key\n")
	repo := NewRepository(NewLocator(dir))

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, "o3", cfg.Model)
	assert.Equal(t, appconfig.DefaultProvider, cfg.Provider)
	assert.Equal(t, appconfig.DefaultApprovalMode, cfg.ApprovalMode)
	assert.True(t, cfg.Memory.Enabled)
	require.NotNil(t, cfg.Debug)
	assert.False(t, *cfg.Debug)
	assert.Equal(t, "sk-file-key", cfg.APIKey)
}

func TestRepository_JSONFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"provider": "ollama", "notify": true, "fileOpener": "cursor"}`)
	repo := NewRepository(NewLocator(dir))

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.True(t, cfg.Notify)
	assert.Equal(t, "cursor", cfg.FileOpener)
	assert.Equal(t, appconfig.DefaultModel, cfg.Model)
}

func TestRepository_MalformedFileReturnsDefaultsAndError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"model": 12`)
	repo := NewRepository(NewLocator(dir))

	cfg, err := repo.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
	assert.Equal(t, appconfig.Default(), cfg)
}
