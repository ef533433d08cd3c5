package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	svc := NewConfigService()
	cfg := DefaultConfig()
	cfg.NarrowWidth = 70
	cfg.Sound = false
	cfg.UISettings.ShowProgress = false

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 70, loaded.NarrowWidth)
	assert.False(t, loaded.Sound)
	assert.False(t, loaded.UISettings.ShowProgress)
	assert.Equal(t, cfg.PageWidth, loaded.PageWidth)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromPathBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestZeroGeometryFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("page_width = 0\npage_lines = -3\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.PageWidth, cfg.PageWidth)
	assert.Equal(t, def.PageLines, cfg.PageLines)
	assert.Equal(t, def.NarrowWidth, cfg.NarrowWidth)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.True(t, cfg.Sound)
	assert.True(t, cfg.UISettings.ResumeLastPage)
	assert.Positive(t, cfg.PageWidth)
	assert.Positive(t, cfg.PageLines)
}
