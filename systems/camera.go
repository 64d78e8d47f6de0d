package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// UpdateCamera centres the view on the player, keeping it inside the world, and
// starts a shake for hits and player damage raised this frame.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if events := getEvents(w); events != nil {
		for _, ev := range events.Events {
			switch ev.Kind {
			case components.EventPlayerHurt:
				TriggerScreenShake(w, config.ScreenShake.HurtIntensity, config.ScreenShake.HurtDuration)
			case components.EventEnemyHit:
				TriggerScreenShake(w, config.ScreenShake.HitIntensity, config.ScreenShake.HitDuration)
			}
		}
	}

	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	session := getSession(w)
	if session == nil {
		return
	}
	targetX, targetY := components.Object.Get(playerEntry).Center()

	screenWidth := float64(config.Window.Width)
	screenHeight := float64(config.Window.Height)
	targetX = clamp(targetX, screenWidth/2, session.Width-screenWidth/2)
	targetY = clamp(targetY, screenHeight/2, session.Height-screenHeight/2)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry)
}

// ShakeOffset returns the current shake displacement of the view.
func ShakeOffset(w donburi.World) (float64, float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	shake := components.ScreenShake.Get(cameraEntry)

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// updateScreenShake advances the shake and removes it once finished
func updateScreenShake(cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake, replacing a running one only if stronger.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
