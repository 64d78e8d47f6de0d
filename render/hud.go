package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/fonts"
	"github.com/automoto/dungeon-crawler/render/layout"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // face-based API matches the freetype faces
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const defaultHint = "WASD move   F attack\nH hint   M map   P pause\nN mute   Esc menu"

var hudPanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 170}

// DrawScore renders the framed score in the top-right corner. The label pops
// larger when points are awarded.
func DrawScore(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	label := fmt.Sprintf("Score: %d", systems.PlayerScore(e.World))
	textW := float64(font.MeasureString(face, label).Ceil())
	box := layout.ScoreBox(screen.Bounds().Dx(), textW)

	strokeRect(screen, box, 1, cfg.White)

	scale := 1.0
	if hudEntry, ok := components.HUD.First(e.World); ok {
		if s := components.HUD.Get(hudEntry).ScoreScale; s > 0 {
			scale = float64(s)
		}
	}
	ascent := float64(face.Metrics().Ascent.Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-textW/2, ascent/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(box.X+box.W/2, box.Y+box.H/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.DrawWithOptions(screen, label, face, op)
}

// DrawMinimap renders the whole world shrunk into the top-left corner. It draws
// nothing until the world size is known.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok || !components.HUD.Get(hudEntry).ShowMinimap {
		return
	}
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Width <= 0 || session.Height <= 0 {
		return
	}

	m := cfg.Minimap
	panel := layout.Minimap()
	fillRect(screen, panel, m.BgColor)
	strokeRect(screen, panel, 1, m.BorderColor)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		x, y := components.Object.Get(entry).Center()
		if mx, my, ok := layout.WorldToMinimap(x, y, session.Width, session.Height, panel); ok {
			drawEllipse(screen, disc, mx, my, m.EnemySize*2, m.EnemySize*2, m.EnemyColor, 1)
		}
	})

	if playerEntry, ok := components.Player.First(e.World); ok {
		x, y := components.Object.Get(playerEntry).Center()
		if mx, my, ok := layout.WorldToMinimap(x, y, session.Width, session.Height, panel); ok {
			drawEllipse(screen, disc, mx, my, m.PlayerSize*2, m.PlayerSize*2, m.PlayerColor, 1)
		}
	}
}

// DrawHint renders the controls panel, sliding it out of view when hidden.
func DrawHint(e *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	if !hud.ShowHint && hud.HintTween == nil {
		return
	}

	panel := layout.HintPanel(screen.Bounds().Dx(), screen.Bounds().Dy(), float64(hud.HintOffset))
	fillRect(screen, panel, hudPanelColor)
	strokeRect(screen, panel, 1, cfg.Silver)

	msg := defaultHint
	if len(hints) > 0 && hints[0].Text != "" {
		msg = hints[0].Text
	}
	face := fonts.Small.Get()
	lineH := face.Metrics().Height.Ceil()
	text.Draw(screen, msg, face, int(panel.X)+10, int(panel.Y)+10+lineH, cfg.White)
}

// DrawPause dims the screen while the game is paused.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := systems.GetPause(e.World)
	if pause == nil || !pause.IsPaused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	fillRect(screen, layout.Rect{W: float64(w), H: float64(h)}, cfg.BlackOverlay)

	face := fonts.Title.Get()
	title := "PAUSED"
	titleW := font.MeasureString(face, title).Ceil()
	text.Draw(screen, title, face, (w-titleW)/2, h/2, cfg.White)
}
