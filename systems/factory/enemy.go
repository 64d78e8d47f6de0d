package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy centred on (x, y). It starts fading in and cannot
// collide until the spawn duration has elapsed.
func CreateEnemy(w donburi.World, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	r := cfg.Enemy.CollisionRadius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(w, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:  cfg.Enemy.Speed,
		Radius: r,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.MaxHealth,
	})
	components.Lifecycle.SetValue(enemy, components.LifecycleData{
		Phase:    components.PhaseSpawning,
		Duration: cfg.Enemy.SpawnDuration,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		State:  components.AnimIdle,
		Column: components.ColumnStatic,
	})

	return enemy
}
