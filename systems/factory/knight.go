package factory

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/yohamta/donburi"
)

// CreateKnight spawns the sword-swing demo entity together with the input
// singleton it reads.
func CreateKnight(w donburi.World) *donburi.Entry {
	entry := w.Entry(w.Create(components.Knight, components.Input))
	return entry
}
