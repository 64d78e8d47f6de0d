package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	hintSlideDuration = 0.25
	scorePopDuration  = 0.35
	scorePopScale     = 1.5
)

// UpdateHUD handles the hint panel and minimap toggles and plays the score pop
// when points were awarded this frame.
func UpdateHUD(w donburi.World) {
	entry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	input := GetInput(w)
	dt := float32(deltaTime(w))

	if GetAction(input, cfg.ActionToggleHint).JustPressed {
		hud.ShowHint = !hud.ShowHint
		target := float32(1)
		if hud.ShowHint {
			target = 0
		}
		hud.HintTween = gween.New(hud.HintOffset, target, hintSlideDuration, ease.OutSine)
	}
	if GetAction(input, cfg.ActionToggleMinimap).JustPressed {
		hud.ShowMinimap = !hud.ShowMinimap
		shown := 0
		if hud.ShowMinimap {
			shown = 1
		}
		pushEvent(w, components.GameEvent{Kind: components.EventMinimapToggled, Value: shown})
	}

	if hud.HintTween != nil {
		var done bool
		hud.HintOffset, done = hud.HintTween.Update(dt)
		if done {
			hud.HintTween = nil
		}
	}

	if events := getEvents(w); events != nil {
		if events.Count(components.EventEnemyHit)+events.Count(components.EventEnemyKilled) > 0 {
			hud.ScoreTween = gween.New(scorePopScale, 1, scorePopDuration, ease.OutBack)
		}
	}
	if hud.ScoreTween != nil {
		var done bool
		hud.ScoreScale, done = hud.ScoreTween.Update(dt)
		if done {
			hud.ScoreTween = nil
		}
	}
}
