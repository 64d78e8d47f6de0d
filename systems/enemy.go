package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs the spawn-in and death timers of every enemy and removes
// the ones whose death countdown has run out.
func UpdateEnemies(w donburi.World) {
	dt := deltaTime(w)

	var expired []*donburi.Entry
	enemyQuery.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.InvulnTimer = max(0, enemy.InvulnTimer-dt)

		life := components.Lifecycle.Get(e)
		switch life.Phase {
		case components.PhaseSpawning:
			life.Timer += dt
			if life.Timer >= life.Duration {
				life.Timer = life.Duration
				life.Phase = components.PhaseActive
			}
		case components.PhaseActive:
		case components.PhaseDying:
			life.Timer = max(0, life.Timer-dt)
			if life.Timer <= 0 {
				expired = append(expired, e)
			}
		}
	})

	for _, e := range expired {
		removeEnemy(w, e)
	}
}

func removeEnemy(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e)
	x, y := obj.Center()
	if space := getSpace(w); space != nil {
		space.Remove(obj.Object)
	}
	w.Remove(e.Entity())
	pushEvent(w, components.GameEvent{Kind: components.EventEnemyRemoved, X: x, Y: y})
}

// FadeProgress returns the eased spawn-in or death fade of an enemy in [0, 1],
// used to scale and fade its sprite.
func FadeProgress(life *components.LifecycleData) float64 {
	p := float32(life.Progress())
	return float64(ease.OutSine(p, 0, 1, 1))
}
