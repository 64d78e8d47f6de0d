package systems

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the resolv cell edge in pixels.
const spaceCellSize = 32

// SetupDungeon populates w with a fresh run: the collision space, session,
// player at the centre of the world, camera, HUD and the initial enemies.
func SetupDungeon(w donburi.World, width, height float64, rng *rand.Rand) *donburi.Entry {
	factory.CreateSpace(w,
		int(math.Ceil(width)), int(math.Ceil(height)),
		spaceCellSize, spaceCellSize,
	)
	factory.CreateSession(w, width, height, rng)
	player := factory.CreatePlayer(w, width/2, height/2)
	factory.CreateCamera(w)
	factory.CreateHUD(w, cfg.Settings.ShowMinimap)

	spawned := SpawnInitialEnemies(w, cfg.Spawner.InitialCount)
	logging.Log.Infow("dungeon ready", "width", width, "height", height, "enemies", spawned)
	return player
}
