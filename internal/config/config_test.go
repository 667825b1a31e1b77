package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_TemplateMatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(Template), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "editor:\n  char_limit: 40\n  allow_empty_submit: true\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Editor.CharLimit)
	assert.True(t, cfg.Editor.AllowEmptySubmit)
	assert.True(t, cfg.Editor.BellOnLimit, "unset fields keep their defaults")
	assert.Equal(t, "TuDu", cfg.UI.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "editor: [\n"},
		{"negative limit", "editor:\n  char_limit: -1\n"},
		{"popup too wide", "ui:\n  popup_width_percent: 150\n"},
		{"popup zero height", "ui:\n  popup_height_percent: 0\n"},
		{"unknown level", "log:\n  level: trace\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0600))

			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.Title = "Groceries"

	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", loaded.UI.Title)
}

func TestConfigPath_HonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tudu", "config.yaml"), path)
}
