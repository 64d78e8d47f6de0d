package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "logs", "game.log")
	require.NoError(t, Init(path, true))

	Log.Debugw("enemy spawned", "x", 12.5)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "enemy spawned")
	assert.Contains(t, string(data), "DEBUG")
}

func TestInitFiltersDebugWhenQuiet(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "game.log")
	require.NoError(t, Init(path, false))

	Log.Debug("hidden")
	Log.Info("shown")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
