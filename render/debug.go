package render

import (
	"image/color"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/render/layout"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
	debugEnemyColor  = color.RGBA{255, 0, 0, 255}
	debugIdleColor   = color.RGBA{120, 120, 120, 255} // enemies that are not collidable
	debugAttackColor = color.RGBA{0, 255, 0, 255}
)

// DrawDebug outlines every body in the collision space and the player's attack
// reach. Enabled with the -boxes flag.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}
	ox, oy, ok := view(e.World, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := debugIdleColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = debugPlayerColor
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = debugEnemyColor
			if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(components.Lifecycle) {
				if !components.Lifecycle.Get(entry).Collidable() {
					c = debugIdleColor
				}
			}
		}
		strokeRect(screen, layout.Rect{X: obj.X + ox, Y: obj.Y + oy, W: obj.W, H: obj.H}, 1, c)
	}

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	px, py := components.Object.Get(playerEntry).Center()
	x, y, w, h := systems.AttackBounds(px, py, player.Facing, cfg.Player.AttackRange, player.Radius)
	strokeRect(screen, layout.Rect{X: x + ox, Y: y + oy, W: w, H: h}, 1, debugAttackColor)
	drawEllipse(screen, ring, px+ox, py+oy, cfg.Player.AttackRange*2, cfg.Player.AttackRange*2, debugAttackColor, 0.5)
}
