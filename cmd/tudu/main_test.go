package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/tudu/internal/config"
)

func TestCreateConfigTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tudu", "config.yaml")
	var out bytes.Buffer

	require.NoError(t, createConfigTemplate(path, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Config file created")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestCreateConfigTemplate_AskBeforeOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  title: Mine\n"), 0600))

	var out bytes.Buffer
	require.NoError(t, createConfigTemplate(path, strings.NewReader("n\n"), &out))
	assert.Contains(t, out.String(), "Aborted.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mine", "declined overwrite keeps the file")

	out.Reset()
	require.NoError(t, createConfigTemplate(path, strings.NewReader("y\n"), &out))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template, string(data))
}

func TestRootCmd_InitFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--init", "--config", path})

	require.NoError(t, cmd.Execute())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}

func TestRunApp_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  char_limit: -5\n"), 0600))

	err := runApp(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
