package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding per-run simulation state that is not
// owned by any entity.
type SessionData struct {
	Rand *rand.Rand

	// World bounds in pixels.
	Width  float64
	Height float64

	SpawnTimer float64

	// DeltaTime is the clamped step of the current frame in seconds.
	DeltaTime float64
	Elapsed   float64
	Frame     int
}

// Center returns the middle of the world.
func (s *SessionData) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

var Session = donburi.NewComponentType[SessionData]()
