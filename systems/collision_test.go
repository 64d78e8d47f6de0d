package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactDamageRespectsInvulnerability(t *testing.T) {
	tw := newTestWorld(t)
	tw.activeEnemy(20, 0, 3)
	health := cfg.Player.Health

	tw.step(1)
	require.Equal(t, health-1, components.Health.Get(tw.player).Current)
	require.Equal(t, cfg.Player.InvulnTime, components.Player.Get(tw.player).InvulnTimer)
	assert.Equal(t, 1, tw.events().Count(components.EventPlayerHurt))

	prev := components.Player.Get(tw.player).InvulnTimer
	for i := 0; i < invulnTicks-1; i++ {
		tw.step(1)
		invuln := components.Player.Get(tw.player).InvulnTimer
		require.Less(t, invuln, prev)
		require.Greater(t, invuln, 0.0)
		require.Equal(t, health-1, components.Health.Get(tw.player).Current)
		prev = invuln
	}

	tw.step(1)
	assert.Equal(t, health-2, components.Health.Get(tw.player).Current)
}

func TestPlayerRespawnsAtCentreWhenHealthRunsOut(t *testing.T) {
	tw := newTestWorld(t)
	components.Object.Get(tw.player).SetCenter(400, 300)
	components.Health.Get(tw.player).Current = 1
	tw.activeEnemy(0, 20, 3)

	tw.step(1)

	health := components.Health.Get(tw.player)
	assert.Equal(t, health.Max, health.Current)
	x, y := tw.playerPos()
	assert.Equal(t, testWidth/2, x)
	assert.Equal(t, testHeight/2, y)
	assert.Equal(t, 1, tw.events().Count(components.EventPlayerHurt))
	assert.Equal(t, 1, tw.events().Count(components.EventPlayerRespawned))
}

func TestSpawningEnemyDealsNoContactDamage(t *testing.T) {
	tw := newTestWorld(t)
	px, py := tw.playerPos()
	factory.CreateEnemy(tw.w, px+10, py)

	tw.step(15)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(tw.player).Current)

	tw.step(1)
	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(tw.player).Current)
}

func TestContactOnCellLineDealsDamage(t *testing.T) {
	tw := newTestWorld(t)
	// right edge of the player half a pixel past a cell line
	edge := float64(spaceCellSize*26) + 0.5
	components.Object.Get(tw.player).SetCenter(edge-cfg.Player.CollisionRadius, testHeight/2)
	tw.activeEnemy(cfg.Player.CollisionRadius+cfg.Enemy.CollisionRadius-0.5, 0, 3)

	tw.step(1)
	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(tw.player).Current)
}

func TestDistantEnemyDealsNoContactDamage(t *testing.T) {
	tw := newTestWorld(t)
	tw.activeEnemy(35, 0, 3)

	tw.step(10)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(tw.player).Current)
}
