package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's body in the collision space. The resolv object is a
// square of side 2*radius; entity positions are the centre of that square.
type ObjectData struct {
	*resolv.Object
}

// Center returns the centre point of the object.
func (o *ObjectData) Center() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the object so its centre is at (x, y) and refreshes its cell
// membership in the space.
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space every body is registered in.
var Space = donburi.NewComponentType[resolv.Space]()
