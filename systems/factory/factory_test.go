package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCreatePlayer(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, 640, 480, 32, 32)
	player := CreatePlayer(w, 320, 240)

	obj := components.Object.Get(player)
	x, y := obj.Center()
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 240.0, y)
	assert.Equal(t, cfg.Player.CollisionRadius*2, obj.W)
	assert.True(t, obj.HasTags(tags.ResolvPlayer))
	assert.Equal(t, player, obj.Data)
	require.NotNil(t, obj.Space)

	data := components.Player.Get(player)
	assert.Equal(t, components.Vector{X: 1, Y: 0}, data.Facing)
	assert.Equal(t, components.DirNone, data.LastDirection)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
	assert.Equal(t, components.AnimIdle, components.Animation.Get(player).State)
	assert.True(t, player.HasComponent(tags.Player))
}

func TestCreateEnemyStartsSpawning(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, 640, 480, 32, 32)
	enemy := CreateEnemy(w, 100, 120)

	life := components.Lifecycle.Get(enemy)
	assert.Equal(t, components.PhaseSpawning, life.Phase)
	assert.False(t, life.Collidable())
	assert.Equal(t, cfg.Enemy.SpawnDuration, life.Duration)

	health := components.Health.Get(enemy)
	assert.Equal(t, health.Max, health.Current)

	obj := components.Object.Get(enemy)
	assert.True(t, obj.HasTags(tags.ResolvEnemy))
	assert.NotNil(t, obj.Space)
}

func TestCreateWithoutSpace(t *testing.T) {
	w := donburi.NewWorld()
	enemy := CreateEnemy(w, 10, 10)
	assert.Nil(t, components.Object.Get(enemy).Space)
}

func TestCreateSession(t *testing.T) {
	w := donburi.NewWorld()
	rng := rand.New(rand.NewSource(3))
	entry := CreateSession(w, 800, 600, rng)

	session := components.Session.Get(entry)
	assert.Same(t, rng, session.Rand)
	cx, cy := session.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
	assert.True(t, entry.HasComponent(components.Input))
	assert.True(t, entry.HasComponent(components.Events))
}
