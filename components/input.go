package components

import (
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Press records the state of action for the current frame.
func (i *InputData) Press(action cfg.ActionID, held bool) {
	i.Current[action] = held
}

// Advance copies the current frame into the previous one.
func (i *InputData) Advance() {
	i.Previous = i.Current
}

var Input = donburi.NewComponentType[InputData]()
