// Package render draws the dungeon, its characters and the HUD. Draw functions
// only read the world; the one piece of state they own is the torch flicker.
package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dungeon-crawler/assets"
	"github.com/automoto/dungeon-crawler/assets/animations"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	background *ebiten.Image
	torches    []assets.Tile
	hints      []assets.Hint

	playerSheet *Sheet
	enemySheet  *Sheet
)

var torchFlicker = animations.NewAnimation(0, 3, 1, 0.12)

var tileColors = map[assets.TileKind]color.RGBA{
	assets.TileFloor:    {R: 46, G: 40, B: 52, A: 255},
	assets.TileFloorAlt: {R: 52, G: 45, B: 58, A: 255},
	assets.TileCrack:    {R: 40, G: 34, B: 44, A: 255},
	assets.TileMoss:     {R: 44, G: 60, B: 46, A: 255},
	assets.TileBorder:   {R: 20, G: 18, B: 24, A: 255},
	assets.TileTorch:    {R: 20, G: 18, B: 24, A: 255},
}

// torchGlow is the glow alpha for each flicker frame.
var torchGlow = [...]float64{0.55, 0.7, 0.6, 0.8}

// Load prepares everything the dungeon renderers need: the background baked
// from the level tiles, the character sheets and the shaders.
func Load(level assets.Level) error {
	if level.Width <= 0 || level.Height <= 0 {
		return fmt.Errorf("level %q has no size", level.Name)
	}
	if err := LoadShaders(); err != nil {
		return err
	}
	buildShapes()
	playerSheet = buildSheet(playerPalette)
	enemySheet = buildSheet(enemyPalette)

	background = ebiten.NewImage(level.Width, level.Height)
	background.Fill(tileColors[assets.TileBorder])
	torches = torches[:0]
	for _, tile := range level.Tiles {
		clr, ok := tileColors[tile.Kind]
		if !ok {
			clr = tileColors[assets.TileFloor]
		}
		x, y := float32(tile.X), float32(tile.Y)
		w, h := float32(tile.Width), float32(tile.Height)
		vector.FillRect(background, x, y, w, h, clr, false)

		switch tile.Kind {
		case assets.TileCrack:
			vector.StrokeLine(background, x+w*0.2, y+h*0.3, x+w*0.6, y+h*0.7, 1, color.RGBA{A: 160}, false)
		case assets.TileFloor, assets.TileFloorAlt, assets.TileMoss:
			vector.StrokeRect(background, x, y, w, h, 1, color.RGBA{A: 40}, false)
		case assets.TileTorch:
			torches = append(torches, tile)
		}
	}
	hints = level.Hints
	torchFlicker.Restart()
	return nil
}

// UpdateTorches advances the torch flicker by the frame's delta.
func UpdateTorches(w donburi.World) {
	entry, ok := components.Session.First(w)
	if !ok {
		return
	}
	torchFlicker.Update(components.Session.Get(entry).DeltaTime)
}

// view returns the offset that maps world coordinates to the screen, shake
// included. ok is false before the camera exists.
func view(w donburi.World, screen *ebiten.Image) (ox, oy float64, ok bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	sx, sy := systems.ShakeOffset(w)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X + sx, float64(height)/2 - camera.Position.Y + sy, true
}

// DrawWorld renders the floor and the flickering torches.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	if background == nil {
		return
	}
	ox, oy, ok := view(e.World, screen)
	if !ok {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(ox, oy)
	screen.DrawImage(background, drawOp)

	glow := torchGlow[torchFlicker.Frame()%len(torchGlow)]
	for _, t := range torches {
		cx, cy := t.X+t.Width/2+ox, t.Y+t.Height/2+oy
		drawEllipse(screen, disc, cx, cy, t.Width*2.5, t.Height*2.5, color.RGBA{R: 255, G: 150, B: 50, A: 255}, glow*0.25)
		drawEllipse(screen, disc, cx, cy, t.Width*0.4, t.Height*0.6, color.RGBA{R: 255, G: 210, B: 90, A: 255}, glow)
	}
}
