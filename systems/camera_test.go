package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestCameraFollowsPlayerInsideWorld(t *testing.T) {
	tw := newTestWorld(t)
	entry := factory.CreateCamera(tw.w)

	UpdateCamera(tw.w)
	camera := components.Camera.Get(entry)
	assert.Equal(t, testWidth/2, camera.Position.X)
	assert.Equal(t, testHeight/2, camera.Position.Y)

	components.Object.Get(tw.player).SetCenter(30, testHeight-30)
	UpdateCamera(tw.w)
	assert.Equal(t, float64(cfg.Window.Width)/2, camera.Position.X)
	assert.Equal(t, testHeight-float64(cfg.Window.Height)/2, camera.Position.Y)
}

func TestScreenShakeFromEvents(t *testing.T) {
	tw := newTestWorld(t)
	entry := factory.CreateCamera(tw.w)

	tw.events().Push(components.GameEvent{Kind: components.EventPlayerHurt})
	UpdateCamera(tw.w)
	assert.True(t, entry.HasComponent(components.ScreenShake))

	x, y := ShakeOffset(tw.w)
	assert.NotZero(t, x+y)

	tw.events().Events = nil
	for i := 0; i < cfg.ScreenShake.HurtDuration; i++ {
		UpdateCamera(tw.w)
	}
	assert.False(t, entry.HasComponent(components.ScreenShake))
	x, y = ShakeOffset(tw.w)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestStrongerShakeWins(t *testing.T) {
	tw := newTestWorld(t)
	entry := factory.CreateCamera(tw.w)

	TriggerScreenShake(tw.w, 4, 8)
	TriggerScreenShake(tw.w, 2, 20)
	shake := components.ScreenShake.Get(entry)
	assert.Equal(t, 4.0, shake.Intensity)
	assert.Equal(t, 8, shake.Duration)
}
