package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// ticks from the start of a swing until the hit frame, and until it ends
const (
	ticksToHit  = 8
	ticksToEnd  = 24
	invulnTicks = 32
)

func TestRepeatedHitsKillEnemy(t *testing.T) {
	tw := newTestWorld(t)
	const n = 3
	e := tw.activeEnemy(40, 0, n)

	for i := 1; i <= n; i++ {
		StartSwing(tw.player, components.DirRight)
		tw.step(ticksToHit)
		require.Equal(t, n-i, components.Health.Get(e).Current, "after swing %d", i)
		if i == n {
			break
		}
		tw.step(ticksToEnd - ticksToHit + invulnTicks)
	}

	assert.Equal(t, components.PhaseDying, components.Lifecycle.Get(e).Phase)
	assert.Equal(t, n*cfg.Score.Hit+cfg.Score.Kill, PlayerScore(tw.w))
}

func TestSwingResolvesHitOnce(t *testing.T) {
	tw := newTestWorld(t)
	cfg.Enemy.InvulnTime = 0
	e := tw.activeEnemy(40, 0, 3)

	StartSwing(tw.player, components.DirRight)
	tw.step(ticksToEnd)

	assert.Equal(t, 2, components.Health.Get(e).Current)
	assert.Equal(t, cfg.Score.Hit, PlayerScore(tw.w))
}

func TestSwingEndsAndResetsAnimation(t *testing.T) {
	tw := newTestWorld(t)
	StartSwing(tw.player, components.DirLeft)

	anim := components.Animation.Get(tw.player)
	assert.Equal(t, components.AnimAttacking, anim.State)
	assert.Equal(t, components.ColumnAttackLeft, anim.Column)

	tw.step(ticksToEnd - 1)
	anim = components.Animation.Get(tw.player)
	require.Equal(t, components.AnimAttacking, anim.State)
	assert.Equal(t, cfg.Animation.LastFrame, anim.Frame)

	tw.step(1)
	anim = components.Animation.Get(tw.player)
	assert.Equal(t, components.AnimIdle, anim.State)
	assert.Equal(t, components.ColumnStatic, anim.Column)
	assert.Equal(t, 0, anim.Frame)
	assert.False(t, components.MeleeAttack.Get(tw.player).HitRegistered)
}

func TestSwingSkipsIneligibleEnemies(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tw *testWorld) *donburi.Entry
	}{
		{"spawning", func(tw *testWorld) *donburi.Entry {
			px, py := tw.playerPos()
			return factory.CreateEnemy(tw.w, px+40, py)
		}},
		{"invulnerable", func(tw *testWorld) *donburi.Entry {
			e := tw.activeEnemy(40, 0, 3)
			components.Enemy.Get(e).InvulnTimer = 5
			return e
		}},
		{"behind", func(tw *testWorld) *donburi.Entry {
			return tw.activeEnemy(-40, 0, 3)
		}},
		{"off axis", func(tw *testWorld) *donburi.Entry {
			return tw.activeEnemy(40, 30, 3)
		}},
		{"out of reach", func(tw *testWorld) *donburi.Entry {
			return tw.activeEnemy(90, 0, 3)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			e := tt.setup(tw)
			before := components.Health.Get(e).Current

			StartSwing(tw.player, components.DirRight)
			tw.step(ticksToHit)

			assert.Equal(t, before, components.Health.Get(e).Current)
			assert.Equal(t, 0, PlayerScore(tw.w))
			assert.True(t, components.MeleeAttack.Get(tw.player).HitRegistered)
		})
	}
}

func TestAttackInputStartsSwing(t *testing.T) {
	tw := newTestWorld(t)
	tw.hold(cfg.ActionAttack, cfg.ActionMoveUp)
	tw.step(1)

	anim := components.Animation.Get(tw.player)
	player := components.Player.Get(tw.player)
	assert.Equal(t, components.AnimAttacking, anim.State)
	assert.Equal(t, components.ColumnAttackRight, anim.Column)
	assert.Equal(t, components.Vector{X: 0, Y: -1}, player.Facing)
	assert.Equal(t, cfg.Player.AttackCooldown, components.MeleeAttack.Get(tw.player).Cooldown)
	assert.Equal(t, 1, tw.events().Count(components.EventSwingStarted))
}

func TestAttackInputRespectsCooldown(t *testing.T) {
	tw := newTestWorld(t)
	components.MeleeAttack.Get(tw.player).Cooldown = 0.5

	tw.hold(cfg.ActionAttack)
	tw.step(1)
	assert.Equal(t, components.AnimIdle, components.Animation.Get(tw.player).State)

	// cooldown runs out after 16 ticks in total
	tw.step(14)
	assert.Equal(t, components.AnimIdle, components.Animation.Get(tw.player).State)
	tw.step(2)
	assert.Equal(t, components.AnimAttacking, components.Animation.Get(tw.player).State)
}

func TestSwingDirectionPriority(t *testing.T) {
	tests := []struct {
		name   string
		held   components.Direction
		last   components.Direction
		facing components.Vector
		want   components.Direction
	}{
		{"held key wins", components.DirDown, components.DirLeft, components.Vector{X: 1}, components.DirDown},
		{"last key", components.DirNone, components.DirUp, components.Vector{X: 1}, components.DirUp},
		{"facing left", components.DirNone, components.DirNone, components.Vector{X: -1}, components.DirLeft},
		{"facing down", components.DirNone, components.DirNone, components.Vector{X: 0.2, Y: 0.9}, components.DirDown},
		{"tie favours horizontal", components.DirNone, components.DirNone, components.Vector{X: -0.5, Y: 0.5}, components.DirLeft},
		{"zero facing", components.DirNone, components.DirNone, components.Vector{}, components.DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &components.PlayerData{LastDirection: tt.last, Facing: tt.facing}
			assert.Equal(t, tt.want, SwingDirection(player, tt.held))
		})
	}
}

func TestInAttackCone(t *testing.T) {
	const reach, tol = 64.0, 18.0
	right := components.Vector{X: 1}
	left := components.Vector{X: -1}
	up := components.Vector{Y: -1}
	down := components.Vector{Y: 1}

	tests := []struct {
		name   string
		ex, ey float64
		facing components.Vector
		want   bool
	}{
		{"right in front", 50, 0, right, true},
		{"right at reach", 64, 0, right, true},
		{"right too far", 65, 0, right, false},
		{"right behind", -10, 0, right, false},
		{"right edge of tolerance", 30, 18, right, true},
		{"right past tolerance", 30, 19, right, false},
		{"left in front", -50, 5, left, true},
		{"left behind", 50, 0, left, false},
		{"up in front", 0, -40, up, true},
		{"up behind", 0, 40, up, false},
		{"down in front", -10, 40, down, true},
		{"down off axis", 20, 40, down, false},
		{"same spot", 0, 0, right, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InAttackCone(0, 0, tt.ex, tt.ey, tt.facing, reach, tol))
		})
	}
}
