package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// UpdateCollisions applies contact damage from active enemies touching the
// player. A player brought to zero health is restored and returned to the
// centre of the world.
func UpdateCollisions(w donburi.World) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.InvulnTimer > 0 {
		player.InvulnTimer = max(0, player.InvulnTimer-deltaTime(w))
	}

	obj := components.Object.Get(entry)
	px, py := obj.Center()
	for _, e := range candidateEnemies(w, obj.X, obj.Y, obj.W, obj.H) {
		if !components.Lifecycle.Get(e).Collidable() {
			continue
		}
		ex, ey := components.Object.Get(e).Center()
		if math.Hypot(ex-px, ey-py) > player.Radius+components.Enemy.Get(e).Radius {
			continue
		}
		if player.InvulnTimer > 0 {
			return
		}
		hurtPlayer(w, entry)
		return
	}
}

func hurtPlayer(w donburi.World, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	health := components.Health.Get(entry)
	obj := components.Object.Get(entry)
	x, y := obj.Center()

	dead := health.Damage(1)
	player.InvulnTimer = cfg.Player.InvulnTime
	pushEvent(w, components.GameEvent{Kind: components.EventPlayerHurt, X: x, Y: y, Value: health.Current})
	if !dead {
		return
	}

	health.Refill()
	if session := getSession(w); session != nil {
		x, y = session.Center()
		obj.SetCenter(x, y)
	}
	pushEvent(w, components.GameEvent{Kind: components.EventPlayerRespawned, X: x, Y: y, Value: health.Current})
}
