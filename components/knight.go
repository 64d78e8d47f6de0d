package components

import (
	"github.com/automoto/dungeon-crawler/knight"
	"github.com/yohamta/donburi"
)

var Knight = donburi.NewComponentType[knight.Swing]()
