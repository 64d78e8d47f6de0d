package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateSpawner attempts a spawn every Spawner.Interval seconds.
func UpdateSpawner(w donburi.World) {
	session := getSession(w)
	if session == nil {
		return
	}
	session.SpawnTimer += session.DeltaTime
	if session.SpawnTimer < cfg.Spawner.Interval {
		return
	}
	session.SpawnTimer = 0
	SpawnEnemyAwayFromPlayer(w)
}

// SpawnEnemyAwayFromPlayer places one enemy at a random point inside the world
// margin that lies farther than Spawner.ExclusionSize from the player. It gives
// up silently when the enemy cap is reached or no candidate is found within
// Spawner.MaxTries, and reports whether an enemy was created.
func SpawnEnemyAwayFromPlayer(w donburi.World) bool {
	session := getSession(w)
	if session == nil || session.Rand == nil {
		return false
	}
	if EnemyCount(w) >= cfg.Spawner.MaxEnemies {
		return false
	}

	px, py := session.Center()
	if entry, ok := components.Player.First(w); ok {
		px, py = components.Object.Get(entry).Center()
	}

	margin := cfg.Spawner.Margin
	for i := 0; i < cfg.Spawner.MaxTries; i++ {
		x := session.Rand.Float64()*(session.Width-margin*2) + margin
		y := session.Rand.Float64()*(session.Height-margin*2) + margin
		if math.Hypot(x-px, y-py) <= cfg.Spawner.ExclusionSize {
			continue
		}
		factory.CreateEnemy(w, x, y)
		pushEvent(w, components.GameEvent{Kind: components.EventEnemySpawned, X: x, Y: y})
		return true
	}
	return false
}

// SpawnInitialEnemies fills the world with up to n enemies and returns how many
// were placed.
func SpawnInitialEnemies(w donburi.World, n int) int {
	spawned := 0
	for i := 0; i < n; i++ {
		if SpawnEnemyAwayFromPlayer(w) {
			spawned++
		}
	}
	return spawned
}
