package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimation advances the player's walk cycle. Swings drive their own
// frames in UpdateAttack.
func UpdateAnimation(w donburi.World) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	anim := components.Animation.Get(entry)
	if anim.State == components.AnimAttacking {
		return
	}

	n, dir := heldDirection(GetInput(w))
	AdvanceWalk(anim, n == 1, dir, deltaTime(w))
}

// AdvanceWalk steps a walk animation by dt. While moving it plays Startup once
// and then cycles Loop; when movement stops a playing cycle fast-forwards
// through the return frames before resting on the static pose.
func AdvanceWalk(anim *components.AnimationData, moving bool, dir components.Direction, dt float64) {
	if moving {
		column := components.MoveColumn(dir)
		if !anim.Playing() || anim.Column != column || anim.State == components.AnimFinishing {
			anim.Start(components.AnimStartup, column)
		}

		anim.FrameTimer += dt
		if anim.FrameTimer < cfg.Animation.FrameDuration {
			return
		}
		anim.FrameTimer -= cfg.Animation.FrameDuration

		switch anim.State {
		case components.AnimStartup:
			if anim.Frame < cfg.Animation.LastLoopedFrame {
				anim.Frame++
			} else {
				anim.State = components.AnimLoop
				anim.Frame = 1
			}
		case components.AnimLoop:
			if anim.Frame < cfg.Animation.LastLoopedFrame {
				anim.Frame++
			} else {
				anim.Frame = 1
			}
		default:
			anim.Frame = min(anim.Frame+1, cfg.Animation.LastFrame)
		}
		return
	}

	if anim.State == components.AnimStartup || anim.State == components.AnimLoop {
		anim.State = components.AnimFinishing
		anim.Frame = cfg.Animation.FirstReturnFrame
		anim.FrameTimer = 0
	}
	if anim.State != components.AnimFinishing {
		anim.Reset()
		return
	}

	fast := cfg.Animation.FrameDuration / cfg.Animation.FinishSpeedMultiplier
	anim.FrameTimer += dt
	if anim.FrameTimer < fast {
		return
	}
	anim.FrameTimer -= fast

	if anim.Frame == cfg.Animation.LastFrame {
		anim.Reset()
		return
	}
	anim.Frame = cfg.Animation.LastFrame
}
