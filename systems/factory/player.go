package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	r := cfg.Player.CollisionRadius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	addToSpace(w, obj)

	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Radius: r,
		Facing: components.Vector{X: 1, Y: 0},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.MaxHealth,
	})
	components.Animation.SetValue(player, components.AnimationData{
		State:  components.AnimIdle,
		Column: components.ColumnStatic,
	})

	return player
}
