package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// UpdateMovement moves the player along the single held movement direction.
// Nothing moves during a swing or while several movement keys are held.
func UpdateMovement(w donburi.World) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	if components.Animation.Get(entry).State == components.AnimAttacking {
		return
	}
	n, dir := heldDirection(GetInput(w))
	if n != 1 {
		return
	}

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	v := dir.Vector()
	player.Facing = v
	player.LastDirection = dir

	dt := deltaTime(w)
	x, y := obj.Center()
	x += v.X * player.Speed * dt
	y += v.Y * player.Speed * dt

	if session := getSession(w); session != nil {
		x, y = clampToWorld(session, x, y)
	}
	obj.SetCenter(x, y)
}

// clampToWorld keeps a centre point inside the world minus the border inset.
func clampToWorld(session *components.SessionData, x, y float64) (float64, float64) {
	inset := cfg.World.BorderInset
	return clamp(x, inset, session.Width-inset), clamp(y, inset, session.Height-inset)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return max(lo, min(hi, v))
}
