// Package controls polls the keyboard and mouse into the Input singleton.
package controls

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type binding struct {
	keys  []ebiten.Key
	mouse []ebiten.MouseButton
}

// bindings is cfg.Input resolved to Ebiten keys, built on first use.
var bindings map[cfg.ActionID]binding

func resolveBindings() map[cfg.ActionID]binding {
	resolved := make(map[cfg.ActionID]binding, len(cfg.Input.Bindings))
	for action, b := range cfg.Input.Bindings {
		var rb binding
		for _, name := range b.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				logging.Log.Warnw("unknown key in binding", "action", action, "key", name, "err", err)
				continue
			}
			rb.keys = append(rb.keys, k)
		}
		for _, m := range b.Mouse {
			switch m {
			case cfg.MouseLeft:
				rb.mouse = append(rb.mouse, ebiten.MouseButtonLeft)
			case cfg.MouseRight:
				rb.mouse = append(rb.mouse, ebiten.MouseButtonRight)
			}
		}
		resolved[action] = rb
	}
	return resolved
}

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE any system that reads actions.
func UpdateInput(w donburi.World) {
	if bindings == nil {
		bindings = resolveBindings()
	}
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous, then zero out current
	input.Advance()
	input.Current = [cfg.ActionCount]bool{}

	for action, b := range bindings {
		held := false
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				held = true
			}
		}
		for _, m := range b.mouse {
			if ebiten.IsMouseButtonPressed(m) {
				held = true
			}
		}
		input.Press(action, held)
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}
