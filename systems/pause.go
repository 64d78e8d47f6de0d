package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles the pause state.
// This system should run AFTER input polling but BEFORE the gameplay systems.
func UpdatePause(w donburi.World) {
	pause := GetPause(w)
	if pause == nil {
		return
	}
	if GetAction(GetInput(w), cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		logging.Log.Debugw("pause toggled", "paused", pause.IsPaused)
	}
}

// GetPause returns the Pause singleton, or nil when the world has none.
func GetPause(w donburi.World) *components.PauseData {
	entry, ok := components.Pause.First(w)
	if !ok {
		return nil
	}
	return components.Pause.Get(entry)
}

// WithGameplayChecks wraps a system so it is skipped while the game is paused.
func WithGameplayChecks(system func(donburi.World)) func(donburi.World) {
	return func(w donburi.World) {
		if pause := GetPause(w); pause != nil && pause.IsPaused {
			return
		}
		system(w)
	}
}
