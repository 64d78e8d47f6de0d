package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Speed       float64
	Radius      float64
	InvulnTimer float64 // seconds of contact-damage immunity left
	Score       int

	// Facing is a unit vector; it starts pointing right.
	Facing Vector

	// LastDirection is the most recent single movement key; DirNone until the
	// player first moves.
	LastDirection Direction
}

var Player = donburi.NewComponentType[PlayerData]()
