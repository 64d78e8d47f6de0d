package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

// movementDirections pairs each movement action with its direction.
var movementDirections = [...]struct {
	action cfg.ActionID
	dir    components.Direction
}{
	{cfg.ActionMoveUp, components.DirUp},
	{cfg.ActionMoveLeft, components.DirLeft},
	{cfg.ActionMoveDown, components.DirDown},
	{cfg.ActionMoveRight, components.DirRight},
}

var noInput components.InputData

// GetInput returns the Input singleton, or an all-released state when the
// world has none.
func GetInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		noInput = components.InputData{}
		return &noInput
	}
	return components.Input.Get(entry)
}

func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// heldDirection returns how many movement actions are held and, when exactly
// one is, its direction. Otherwise the direction is DirNone.
func heldDirection(input *components.InputData) (int, components.Direction) {
	count := 0
	dir := components.DirNone
	for _, m := range movementDirections {
		if input.Current[m.action] {
			count++
			dir = m.dir
		}
	}
	if count != 1 {
		return count, components.DirNone
	}
	return count, dir
}
