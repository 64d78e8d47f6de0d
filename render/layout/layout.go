// Package layout holds the screen-space geometry the renderer draws with. It
// does not depend on Ebiten so it can be tested without a window.
package layout

import (
	"math"

	cfg "github.com/automoto/dungeon-crawler/config"
)

type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Inset grows r by d on every side. A negative d shrinks it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// WorldToScreen maps a world point to the screen for a camera centred on
// (camX, camY).
func WorldToScreen(x, y, camX, camY float64, screenW, screenH int) (float64, float64) {
	return x - camX + float64(screenW)/2, y - camY + float64(screenH)/2
}

// SpriteTopLeft returns the pixel-snapped top-left corner of a sprite cell
// centred on (cx, cy).
func SpriteTopLeft(cx, cy float64) (float64, float64) {
	w := float64(cfg.Animation.SpriteWidth)
	h := float64(cfg.Animation.SpriteHeight)
	return math.Round(cx - w/2), math.Round(cy - h/2)
}

// HealthBar returns the outer bar and one rect per health segment for a
// sprite whose cell starts at (spriteX, spriteY). The bar sits above the
// cell, three bar heights up.
func HealthBar(spriteX, spriteY, spriteW float64, maxHealth int) (Rect, []Rect) {
	hb := cfg.HealthBar
	bar := Rect{
		X: spriteX + (spriteW-hb.Width)/2,
		Y: spriteY - hb.Height*3,
		W: hb.Width,
		H: hb.Height,
	}

	n := max(1, maxHealth)
	segW := (hb.Width - hb.SegmentGap*float64(n-1)) / float64(n)
	segments := make([]Rect, n)
	for i := range segments {
		segments[i] = Rect{
			X: bar.X + float64(i)*(segW+hb.SegmentGap),
			Y: bar.Y,
			W: segW,
			H: hb.Height,
		}
	}
	return bar, segments
}

// DamageFlashOn reports whether the red damage overlay is shown for the given
// invulnerability countdown. It blinks eight times a second.
func DamageFlashOn(invuln float64) bool {
	return invuln > 0 && int(math.Floor(invuln*8))%2 == 0
}

// Minimap returns the minimap panel in the top-left corner.
func Minimap() Rect {
	m := cfg.Minimap
	return Rect{X: m.Padding, Y: m.Padding, W: m.Size, H: m.Size}
}

// WorldToMinimap projects a world point into the minimap panel. ok is false
// when the world size is unknown or the point falls outside the panel.
func WorldToMinimap(x, y, worldW, worldH float64, panel Rect) (mx, my float64, ok bool) {
	if worldW <= 0 || worldH <= 0 {
		return 0, 0, false
	}
	mx = panel.X + x/worldW*panel.W
	my = panel.Y + y/worldH*panel.H
	return mx, my, panel.Contains(mx, my)
}

// Shadow is the ellipse drawn under an enemy while it fades in or out.
type Shadow struct {
	W, H      float64
	Alpha     float64
	RingAlpha float64 // outer ring, spawning only
	RingWidth float64
	OffsetY   float64
}

// SpawnShadow sizes the shadow for a spawning enemy. progress is the linear
// spawn progress and eased its sine-out ramp, both in [0, 1].
func SpawnShadow(progress, eased float64) Shadow {
	w := float64(cfg.Animation.SpriteWidth) * 0.9
	h := float64(cfg.Animation.SpriteHeight) * 0.28
	return Shadow{
		W:         w * (0.6 + 0.4*eased),
		H:         h * (0.4 + 0.6*eased),
		Alpha:     0.85 * eased,
		RingAlpha: 0.9 * (1 - (1-progress)*(1-progress)) * (1 - 0.25*progress),
		RingWidth: 2 + 2*(1-progress),
		OffsetY:   float64(cfg.Animation.SpriteHeight) * 0.02 * (1 - eased),
	}
}

// DeathShadow sizes the shrinking shadow of a dying enemy.
func DeathShadow(eased float64) Shadow {
	w := float64(cfg.Animation.SpriteWidth) * 0.9
	h := float64(cfg.Animation.SpriteHeight) * 0.28
	return Shadow{
		W:     w * (0.6 + 0.4*eased),
		H:     h * (0.4 + 0.6*eased),
		Alpha: 0.65 * eased,
	}
}

// ScoreBox returns the framed score box in the top-right corner for a label
// textW pixels wide.
func ScoreBox(screenW int, textW float64) Rect {
	const padding, height, margin = 10, 36, 10
	w := textW + padding*2
	return Rect{X: float64(screenW) - w - margin, Y: margin, W: w, H: height}
}

// HintPanel returns the hint panel slid by offset, where 0 is fully shown and
// 1 is tucked below the bottom edge.
func HintPanel(screenW, screenH int, offset float64) Rect {
	const w, h, margin = 300, 96, 12
	y := float64(screenH) - h - margin
	return Rect{
		X: float64(screenW) - w - margin,
		Y: y + offset*(h+margin),
		W: w,
		H: h,
	}
}
