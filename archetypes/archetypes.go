package archetypes

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.MeleeAttack,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Lifecycle,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
		components.Events,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.HUD,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extra ones.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
