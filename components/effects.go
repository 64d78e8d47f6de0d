package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// HUDData holds overlay state: the hint panel slide, minimap visibility and the
// score pop played when points are awarded.
type HUDData struct {
	ShowHint    bool
	ShowMinimap bool

	HintOffset float32 // 0 is fully shown, 1 fully tucked away
	HintTween  *gween.Tween

	ScoreScale float32
	ScoreTween *gween.Tween
}

var HUD = donburi.NewComponentType[HUDData]()
