package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// UpdateKnight feeds this frame's input edges to the sword-swing demo and
// advances it by one render frame.
func UpdateKnight(w donburi.World) {
	entry, ok := components.Knight.First(w)
	if !ok {
		return
	}
	swing := components.Knight.Get(entry)
	input := GetInput(w)

	if GetAction(input, cfg.ActionSecondary).JustPressed {
		swing.PressSecondary()
	}
	if GetAction(input, cfg.ActionSecondary).JustReleased {
		swing.ReleaseSecondary()
	}
	if GetAction(input, cfg.ActionPrimary).JustPressed {
		swing.PressPrimary()
	}
	if GetAction(input, cfg.ActionPrimary).JustReleased {
		swing.ReleasePrimary()
	}
	if GetAction(input, cfg.ActionSwing).JustPressed {
		swing.PressSpace()
	}
	swing.Tick()
}
