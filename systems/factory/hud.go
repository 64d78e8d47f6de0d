package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/yohamta/donburi"
)

// CreateHUD spawns the overlay singleton. The hint panel starts shown.
func CreateHUD(w donburi.World, showMinimap bool) *donburi.Entry {
	hud := archetypes.HUD.Spawn(w)
	components.HUD.SetValue(hud, components.HUDData{
		ShowHint:    true,
		ShowMinimap: showMinimap,
		ScoreScale:  1,
	})
	return hud
}
