package render

import (
	"image/color"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/render/layout"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	spawnShadowColor = color.RGBA{R: 160, G: 20, B: 20, A: 255}
	spawnRingColor   = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	deathShadowColor = color.RGBA{R: 120, G: 20, B: 20, A: 255}
)

// cullPadding keeps sprites from popping at the screen edge.
const cullPadding = 64.0

func onScreen(screen *ebiten.Image, x, y float64) bool {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return x > -cullPadding && x < w+cullPadding && y > -cullPadding && y < h+cullPadding
}

// DrawEnemies renders every enemy with its spawn or death fade, shadow and
// health bar.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	if enemySheet == nil {
		return
	}
	ox, oy, ok := view(e.World, screen)
	if !ok {
		return
	}
	fw := float64(cfg.Animation.SpriteWidth)
	fh := float64(cfg.Animation.SpriteHeight)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		cx, cy := components.Object.Get(entry).Center()
		cx, cy = cx+ox, cy+oy
		if !onScreen(screen, cx, cy) {
			return
		}
		life := components.Lifecycle.Get(entry)
		enemy := components.Enemy.Get(entry)
		hp := components.Health.Get(entry)
		anim := components.Animation.Get(entry)

		left, top := layout.SpriteTopLeft(cx, cy)
		feetX, feetY := left+fw/2, top+fh*0.82

		scale := 1.0
		switch life.Phase {
		case components.PhaseSpawning:
			scale = systems.FadeProgress(life)
			s := layout.SpawnShadow(life.Progress(), scale)
			drawEllipse(screen, disc, feetX, feetY+s.OffsetY, s.W, s.H, spawnShadowColor, s.Alpha)
			drawEllipse(screen, ring, feetX, feetY+s.OffsetY, s.W*1.05, s.H*1.05, spawnRingColor, min(0.8, s.RingAlpha))
		case components.PhaseDying:
			scale = systems.FadeProgress(life)
			s := layout.DeathShadow(scale)
			drawEllipse(screen, disc, feetX, feetY, s.W, s.H, deathShadowColor, s.Alpha)
		}
		if scale <= 0 {
			return
		}

		flash := layout.DamageFlashOn(enemy.InvulnTimer)
		drawSprite(screen, enemySheet.Frame(anim.Column, anim.Frame), left+fw/2, top+fh/2, scale, scale, flash)
		drawHealthBar(screen, left, top, hp, enemy.InvulnTimer,
			cfg.HealthBar.EnemyStart, cfg.HealthBar.EnemyEnd, left+fw/2, top+fh/2, scale)
	})
}

// DrawPlayer renders the player sprite and health bar.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	if playerSheet == nil {
		return
	}
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	ox, oy, ok := view(e.World, screen)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	hp := components.Health.Get(entry)
	anim := components.Animation.Get(entry)

	cx, cy := components.Object.Get(entry).Center()
	left, top := layout.SpriteTopLeft(cx+ox, cy+oy)
	fw := float64(cfg.Animation.SpriteWidth)
	fh := float64(cfg.Animation.SpriteHeight)

	drawSprite(screen, playerSheet.Frame(anim.Column, anim.Frame), left+fw/2, top+fh/2, 1, 1,
		layout.DamageFlashOn(player.InvulnTimer))
	drawHealthBar(screen, left, top, hp, player.InvulnTimer,
		cfg.HealthBar.PlayerStart, cfg.HealthBar.PlayerEnd, left+fw/2, top+fh/2, 1)
}

// drawSprite draws img centred on (cx, cy). flash whitens it through the flash
// shader.
func drawSprite(screen, img *ebiten.Image, cx, cy, scale, alpha float64, flash bool) {
	fw, fh := img.Bounds().Dx(), img.Bounds().Dy()
	if flash && FlashShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Images[0] = img
		op.Uniforms = map[string]any{"Flash": float32(0.8)}
		screen.DrawRectShader(fw, fh, FlashShader, op)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(cx, cy)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, drawOp)
}

// scaleAround scales r by s around the point (px, py).
func scaleAround(r layout.Rect, px, py, s float64) layout.Rect {
	return layout.Rect{
		X: px + (r.X-px)*s,
		Y: py + (r.Y-py)*s,
		W: r.W * s,
		H: r.H * s,
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func fillRect(screen *ebiten.Image, r layout.Rect, c color.RGBA) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r layout.Rect, width float32, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

// drawHealthBar draws a segmented bar above the sprite cell at (left, top),
// scaled by s around (px, py) so it shrinks with a fading sprite.
func drawHealthBar(screen *ebiten.Image, left, top float64, hp *components.HealthData, invuln float64,
	start, end color.RGBA, px, py, s float64) {
	hb := cfg.HealthBar
	bar, segments := layout.HealthBar(left, top, float64(cfg.Animation.SpriteWidth), hp.Max)

	frame := scaleAround(bar.Inset(2), px, py, s)
	fillRect(screen, frame, fade(hb.BackColor, s))
	strokeRect(screen, frame, 2, fade(hb.BorderColor, s))

	if layout.DamageFlashOn(invuln) {
		fillRect(screen, scaleAround(bar, px, py, s), fade(hb.FlashColor, s))
	}

	for i, seg := range segments {
		r := scaleAround(seg, px, py, s)
		if i >= hp.Current {
			fillRect(screen, r, fade(hb.EmptyColor, s))
			continue
		}
		upper, lower := r, r
		upper.H = r.H / 2
		lower.Y += upper.H
		lower.H = r.H - upper.H
		fillRect(screen, upper, fade(start, s))
		fillRect(screen, lower, fade(end, s))

		highlight := layout.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: max(1, r.H/3)}
		fillRect(screen, highlight, fade(cfg.White, 0.25*s))
	}
}
