package systems

import (
	"math"
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyBecomesCollidableAfterSpawnDuration(t *testing.T) {
	tw := newTestWorld(t)
	e := factory.CreateEnemy(tw.w, 100, 100)

	for i := 0; i < 15; i++ {
		tw.step(1)
		life := components.Lifecycle.Get(e)
		require.False(t, life.Collidable(), "collidable after %d ticks", i+1)
		require.Equal(t, components.PhaseSpawning, life.Phase)
	}

	tw.step(1)
	life := components.Lifecycle.Get(e)
	assert.True(t, life.Collidable())
	assert.Equal(t, components.PhaseActive, life.Phase)
	assert.Equal(t, life.Duration, life.Timer)

	tw.step(10)
	assert.True(t, components.Lifecycle.Get(e).Collidable())
}

func TestLethalHitRemovesEnemyAfterSpawnDuration(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.activeEnemy(40, 0, 1)

	StartSwing(tw.player, components.DirRight)
	steps := 0
	for components.Lifecycle.Get(e).Phase != components.PhaseDying && steps < 20 {
		tw.step(1)
		steps++
	}
	require.Equal(t, components.PhaseDying, components.Lifecycle.Get(e).Phase)
	assert.Equal(t, 8, steps, "hit lands on the second swing frame")

	assert.Equal(t, 0, components.Health.Get(e).Current)
	assert.False(t, components.Lifecycle.Get(e).Collidable())
	assert.Equal(t, 1, tw.events().Count(components.EventEnemyKilled))

	// 0.5s of death fade at 1/32s per tick
	tw.step(15)
	require.True(t, tw.w.Valid(e.Entity()))
	tw.step(1)
	assert.False(t, tw.w.Valid(e.Entity()))
	assert.Equal(t, 1, tw.events().Count(components.EventEnemyRemoved))
	assert.Equal(t, 0, EnemyCount(tw.w))
}

func TestEnemyInvulnerabilityDecaysToZero(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.activeEnemy(300, 0, 3)
	components.Enemy.Get(e).InvulnTimer = 0.25

	tw.step(4)
	assert.Equal(t, 0.125, components.Enemy.Get(e).InvulnTimer)
	tw.step(10)
	assert.Equal(t, 0.0, components.Enemy.Get(e).InvulnTimer)
}

func TestFadeProgress(t *testing.T) {
	life := &components.LifecycleData{Phase: components.PhaseSpawning, Duration: 0.6}
	assert.InDelta(t, 0, FadeProgress(life), 1e-6)

	life.Timer = 0.3
	assert.InDelta(t, math.Sin(math.Pi/4), FadeProgress(life), 1e-5)

	life.Phase = components.PhaseActive
	assert.InDelta(t, 1, FadeProgress(life), 1e-6)

	life.Kill()
	assert.InDelta(t, 1, FadeProgress(life), 1e-6)
	life.Timer = 0
	assert.InDelta(t, 0, FadeProgress(life), 1e-6)
}
