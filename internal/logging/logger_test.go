package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_EmptyLevelIsSilent(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel), "nop logger must not enable debug")
}

func TestNew_RequiresFile(t *testing.T) {
	_, err := New(Options{Level: "info"})
	assert.Error(t, err)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tudu.log")
	l, err := New(Options{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("item added")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "item added"))
	assert.False(t, strings.Contains(out, "hidden"), "debug is below the info level")
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	logger = nil
	assert.NotNil(t, GetLogger())
	Debug("dropped")
}

func TestInitialize_HelpersUseGlobalLogger(t *testing.T) {
	t.Cleanup(func() { logger = nil })

	path := filepath.Join(t.TempDir(), "tudu.log")
	require.NoError(t, Initialize(Options{Level: "debug", File: path, MaxSizeMB: 1}))

	Debug("config loaded")
	Info("starting")
	Error("program exited with error")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	for _, want := range []string{"config loaded", "starting", "program exited with error"} {
		assert.True(t, strings.Contains(out, want), "missing %q in %s", want, out)
	}
}
