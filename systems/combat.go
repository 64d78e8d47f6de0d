package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// UpdateAttack ticks the swing cooldown and plays the active swing. The hit is
// resolved once, on the frame given by Player.AttackFrame.
func UpdateAttack(w donburi.World) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	dt := deltaTime(w)
	attack := components.MeleeAttack.Get(entry)
	anim := components.Animation.Get(entry)

	if attack.Cooldown > 0 {
		attack.Cooldown = max(0, attack.Cooldown-dt)
	}
	if anim.State != components.AnimAttacking {
		return
	}

	attack.Timer += dt
	if attack.Timer >= cfg.Animation.FrameDuration {
		attack.Timer -= cfg.Animation.FrameDuration
		anim.Frame++
		if anim.Frame > cfg.Animation.LastFrame {
			anim.Reset()
			attack.Timer = 0
			attack.HitRegistered = false
			return
		}
	}

	if !attack.HitRegistered && anim.Frame == cfg.Player.AttackFrame {
		resolveSwing(w, entry)
		attack.HitRegistered = true
	}
}

// UpdateAttackInput starts a swing when the attack action is held, the cooldown
// has expired and no swing is playing.
func UpdateAttackInput(w donburi.World) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	input := GetInput(w)
	attack := components.MeleeAttack.Get(entry)
	anim := components.Animation.Get(entry)

	if !GetAction(input, cfg.ActionAttack).Pressed || attack.Cooldown > 0 || anim.State == components.AnimAttacking {
		return
	}
	_, dir := heldDirection(input)
	StartSwing(entry, dir)
}

// StartSwing begins a swing toward dir. When dir is DirNone the last movement
// direction is used, then the dominant axis of the facing vector.
func StartSwing(entry *donburi.Entry, dir components.Direction) {
	player := components.Player.Get(entry)
	attack := components.MeleeAttack.Get(entry)
	anim := components.Animation.Get(entry)
	if anim.State == components.AnimAttacking {
		return
	}

	dir = SwingDirection(player, dir)
	player.Facing = dir.Vector()

	anim.Start(components.AnimAttacking, components.AttackColumn(dir))
	attack.Timer = 0
	attack.HitRegistered = false
	attack.Cooldown = cfg.Player.AttackCooldown

	x, y := components.Object.Get(entry).Center()
	pushEvent(entry.World, components.GameEvent{Kind: components.EventSwingStarted, X: x, Y: y, Value: int(dir)})
}

// SwingDirection picks the direction of a new swing: the held key, then the last
// movement key, then the facing vector projected onto its dominant axis.
func SwingDirection(player *components.PlayerData, held components.Direction) components.Direction {
	if held != components.DirNone {
		return held
	}
	if player.LastDirection != components.DirNone {
		return player.LastDirection
	}
	if d := components.CardinalFromFacing(player.Facing); d != components.DirNone {
		return d
	}
	return components.DirRight
}

// resolveSwing applies the swing to every eligible enemy in the attack cone.
func resolveSwing(w donburi.World, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	px, py := components.Object.Get(entry).Center()
	reach := cfg.Player.AttackRange
	tolerance := player.Radius

	sx, sy, sw, sh := AttackBounds(px, py, player.Facing, reach, tolerance)
	for _, e := range candidateEnemies(w, sx, sy, sw, sh) {
		life := components.Lifecycle.Get(e)
		enemy := components.Enemy.Get(e)
		if !life.Collidable() || enemy.InvulnTimer > 0 {
			continue
		}

		ex, ey := components.Object.Get(e).Center()
		if math.Hypot(ex-px, ey-py) > reach {
			continue
		}
		if !InAttackCone(px, py, ex, ey, player.Facing, reach, tolerance) {
			continue
		}

		health := components.Health.Get(e)
		killed := health.Damage(1)
		enemy.InvulnTimer = cfg.Enemy.InvulnTime
		player.Score += cfg.Score.Hit
		pushEvent(w, components.GameEvent{Kind: components.EventEnemyHit, X: ex, Y: ey, Value: cfg.Score.Hit})

		if killed {
			life.Kill()
			player.Score += cfg.Score.Kill
			pushEvent(w, components.GameEvent{Kind: components.EventEnemyKilled, X: ex, Y: ey, Value: cfg.Score.Kill})
		}
	}
}

// InAttackCone reports whether the point (ex, ey) lies in front of (px, py)
// along the dominant axis of facing, no farther than reach along it and no more
// than tolerance off it.
func InAttackCone(px, py, ex, ey float64, facing components.Vector, reach, tolerance float64) bool {
	switch components.CardinalFromFacing(facing) {
	case components.DirRight:
		return ex >= px && ex-px <= reach && math.Abs(ey-py) <= tolerance
	case components.DirLeft:
		return ex <= px && px-ex <= reach && math.Abs(ey-py) <= tolerance
	case components.DirDown:
		return ey >= py && ey-py <= reach && math.Abs(ex-px) <= tolerance
	case components.DirUp:
		return ey <= py && py-ey <= reach && math.Abs(ex-px) <= tolerance
	}
	return false
}

// AttackBounds returns the rectangle covering the attack cone.
func AttackBounds(px, py float64, facing components.Vector, reach, tolerance float64) (x, y, w, h float64) {
	switch components.CardinalFromFacing(facing) {
	case components.DirLeft:
		return px - reach, py - tolerance, reach, tolerance * 2
	case components.DirDown:
		return px - tolerance, py, tolerance * 2, reach
	case components.DirUp:
		return px - tolerance, py - reach, tolerance * 2, reach
	}
	return px, py - tolerance, reach, tolerance * 2
}
