package components

import "github.com/yohamta/donburi"

// Column is a column of the character sprite sheet.
type Column int

const (
	ColumnStatic Column = iota
	ColumnMoveLeft
	ColumnMoveUp
	ColumnMoveDown
	ColumnMoveRight
	ColumnAttackLeft
	ColumnAttackRight
)

// MoveColumn returns the walking column for a direction.
func MoveColumn(d Direction) Column {
	switch d {
	case DirUp:
		return ColumnMoveUp
	case DirLeft:
		return ColumnMoveLeft
	case DirDown:
		return ColumnMoveDown
	case DirRight:
		return ColumnMoveRight
	}
	return ColumnStatic
}

// AttackColumn returns the swing column for a direction. The sheet only has left
// and right swings; vertical swings use the right-hand variant.
func AttackColumn(d Direction) Column {
	switch d {
	case DirLeft:
		return ColumnAttackLeft
	case DirUp, DirDown, DirRight, DirNone:
		return ColumnAttackRight
	}
	return ColumnAttackRight
}

// AnimState is the animation state of a character.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimStartup
	AnimLoop
	AnimFinishing
	AnimAttacking
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimStartup:
		return "startup"
	case AnimLoop:
		return "loop"
	case AnimFinishing:
		return "finishing"
	case AnimAttacking:
		return "attacking"
	}
	return "unknown"
}

type AnimationData struct {
	State      AnimState
	Column     Column
	Frame      int
	FrameTimer float64
}

// Playing reports whether a walk or swing animation is running.
func (a *AnimationData) Playing() bool {
	return a.State != AnimIdle
}

// Reset returns the animation to the static pose.
func (a *AnimationData) Reset() {
	a.State = AnimIdle
	a.Column = ColumnStatic
	a.Frame = 0
	a.FrameTimer = 0
}

// Start enters state on column from the first frame.
func (a *AnimationData) Start(state AnimState, column Column) {
	a.State = state
	a.Column = column
	a.Frame = 0
	a.FrameTimer = 0
}

var Animation = donburi.NewComponentType[AnimationData]()
