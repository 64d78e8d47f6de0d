package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSetupDungeon(t *testing.T) {
	useTestConfig(t)
	w := donburi.NewWorld()

	player := SetupDungeon(w, testWidth, testHeight, rand.New(rand.NewSource(7)))

	x, y := components.Object.Get(player).Center()
	assert.Equal(t, testWidth/2, x)
	assert.Equal(t, testHeight/2, y)
	assert.Equal(t, cfg.Spawner.InitialCount, EnemyCount(w))

	_, ok := components.Camera.First(w)
	assert.True(t, ok)
	require.NotNil(t, GetPause(w))
	assert.False(t, GetPause(w).IsPaused)

	for i := 0; i < 100; i++ {
		Step(w, 1.0/60)
	}
	assert.LessOrEqual(t, EnemyCount(w), cfg.Spawner.MaxEnemies)
}
