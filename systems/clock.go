package systems

import (
	"math"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// ClampDelta bounds a wall-clock frame delta to the largest step the simulation
// integrates. Negative and NaN deltas count as no time at all.
func ClampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > cfg.World.MaxDeltaTime {
		return cfg.World.MaxDeltaTime
	}
	return dt
}

// BeginFrame records the clamped delta on the session and clears last frame's
// events. It returns the delta the systems will integrate with.
func BeginFrame(w donburi.World, raw float64) float64 {
	dt := ClampDelta(raw)
	if session := getSession(w); session != nil {
		session.DeltaTime = dt
		session.Elapsed += dt
		session.Frame++
	}
	if events := getEvents(w); events != nil {
		events.Events = events.Events[:0]
	}
	return dt
}

// simulation is the fixed order the gameplay systems run in every frame.
var simulation = []func(donburi.World){
	UpdateAnimation,
	UpdateSpawner,
	UpdateEnemies,
	UpdateAttack,
	UpdateMovement,
	UpdateAttackInput,
	UpdateCollisions,
}

// Step advances the simulation by one frame of raw wall-clock seconds.
func Step(w donburi.World, raw float64) {
	BeginFrame(w, raw)
	for _, system := range simulation {
		system(w)
	}
}

func deltaTime(w donburi.World) float64 {
	if session := getSession(w); session != nil {
		return session.DeltaTime
	}
	return 0
}
