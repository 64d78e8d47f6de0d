package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/fonts"
	"github.com/automoto/dungeon-crawler/knight"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // face-based API matches the freetype faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	knightArmor   = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	knightOutline = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	knightPlume   = color.RGBA{R: 200, G: 40, B: 60, A: 255}

	legendIdle   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	legendActive = cfg.BrightOrange
)

// swordAngles is the blade angle for each of the four frames: wind-up, charge,
// follow-through and the lowered dodge guard.
var swordAngles = [...]float64{-2.4, -1.9, 0.5, 1.3}

type legendEntry struct {
	label     string
	highlight []knight.Highlight
}

var legend = []legendEntry{
	{"Space: full swing", []knight.Highlight{knight.HighlightSpace}},
	{"Left click: swing, hold to charge", []knight.Highlight{knight.HighlightLeftClick, knight.HighlightCharge}},
	{"Right click: dodge", []knight.Highlight{knight.HighlightDodge}},
}

// DrawKnight renders the sword-swing demo: the knight on its current frame and
// the control legend with the active action lit.
func DrawKnight(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Knight.First(e.World)
	if !ok {
		return
	}
	swing := components.Knight.Get(entry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawKnightFrame(screen, float64(w)/2, float64(h)/2, cfg.Knight.Scale, swing.Frame)

	face := fonts.Regular.Get()
	lineH := face.Metrics().Height.Ceil() + 4
	y := h - len(legend)*lineH - 20
	for _, item := range legend {
		c := legendIdle
		for _, hl := range item.highlight {
			if swing.Highlight == hl {
				c = legendActive
			}
		}
		text.Draw(screen, item.label, face, 20, y, c)
		y += lineH
	}

	status := fmt.Sprintf("%s  frame %d", swing.State, swing.Frame)
	text.Draw(screen, status, fonts.Small.Get(), 20, 30, cfg.White)
}

func drawKnightFrame(screen *ebiten.Image, cx, cy, scale float64, frame int) {
	frame = min(max(frame, 0), len(swordAngles)-1)
	s := float32(scale)
	x, y := float32(cx), float32(cy)
	if frame == len(swordAngles)-1 {
		// dodge leans back
		x -= 10 * s
		y += 4 * s
	}

	vector.DrawFilledCircle(screen, x-6*s, y+22*s, 5*s, knightOutline, true)
	vector.DrawFilledCircle(screen, x+6*s, y+22*s, 5*s, knightOutline, true)
	vector.DrawFilledRect(screen, x-12*s, y-6*s, 24*s, 26*s, knightOutline, true)
	vector.DrawFilledRect(screen, x-10*s, y-4*s, 20*s, 22*s, knightArmor, true)
	vector.DrawFilledCircle(screen, x, y-14*s, 11*s, knightOutline, true)
	vector.DrawFilledCircle(screen, x, y-14*s, 9*s, knightArmor, true)
	vector.StrokeLine(screen, x-4*s, y-15*s, x+8*s, y-15*s, 2*s, knightOutline, true)
	vector.DrawFilledCircle(screen, x-2*s, y-25*s, 4*s, knightPlume, true)

	angle := swordAngles[frame]
	hx, hy := x+10*s, y+4*s
	bx := hx + float32(math.Cos(angle))*30*s
	by := hy + float32(math.Sin(angle))*30*s
	vector.StrokeLine(screen, hx, hy, bx, by, 3*s, cfg.Silver, true)
	vector.DrawFilledCircle(screen, hx, hy, 3*s, cfg.BrightOrange, true)
}
