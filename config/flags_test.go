package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlagsOverridesDefaults(t *testing.T) {
	savedDebug, savedSpawner := Debug, Spawner
	t.Cleanup(func() {
		Debug, Spawner = savedDebug, savedSpawner
	})

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "42", "-max-enemies", "3", "-knight", "-log", ""}))

	assert.Equal(t, int64(42), Debug.Seed)
	assert.Equal(t, 3, Spawner.MaxEnemies)
	assert.True(t, Debug.KnightDemo)
	assert.Empty(t, Debug.LogFile)
}

func TestBindFlagsKeepsDefaultsWhenUnset(t *testing.T) {
	savedDebug, savedSpawner := Debug, Spawner
	t.Cleanup(func() {
		Debug, Spawner = savedDebug, savedSpawner
	})

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, savedSpawner.MaxEnemies, Spawner.MaxEnemies)
	assert.Equal(t, savedSpawner.Interval, Spawner.Interval)
	assert.False(t, Debug.SkipMenu)
}

func TestAnimationFrameLayoutIsConsistent(t *testing.T) {
	assert.Equal(t, Animation.FramesPerAnimation-1, Animation.LastFrame)
	assert.Less(t, Animation.LastLoopedFrame, Animation.LastFrame)
	assert.Greater(t, Player.AttackFrame, 0, "hit frame must not be the first swing frame")
	assert.LessOrEqual(t, Player.AttackFrame, Animation.LastFrame)
}
