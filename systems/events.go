package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/yohamta/donburi"
)

// LogEvents writes this frame's gameplay events to the debug log.
func LogEvents(w donburi.World) {
	events := getEvents(w)
	if events == nil {
		return
	}
	for _, ev := range events.Events {
		logging.Log.Debugw(ev.Kind.String(), "x", ev.X, "y", ev.Y, "value", ev.Value)
	}
}

// MinimapToggled reports whether the minimap was toggled this frame and
// whether it is now shown.
func MinimapToggled(w donburi.World) (shown, ok bool) {
	events := getEvents(w)
	if events == nil {
		return false, false
	}
	for _, ev := range events.Events {
		if ev.Kind == components.EventMinimapToggled {
			shown, ok = ev.Value == 1, true
		}
	}
	return shown, ok
}

// PlayerScore returns the score of the player, or 0 without one.
func PlayerScore(w donburi.World) int {
	entry, ok := components.Player.First(w)
	if !ok {
		return 0
	}
	return components.Player.Get(entry).Score
}
