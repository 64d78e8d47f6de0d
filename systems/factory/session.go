package factory

import (
	"math/rand"

	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the simulation singleton for a world of the given size.
// rng drives every random decision of the run.
func CreateSession(w donburi.World, width, height float64, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		Rand:   rng,
		Width:  width,
		Height: height,
	})
	return session
}
