package render

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const sheetColumns = int(components.ColumnAttackRight) + 1

// Sheet is a character sprite sheet: one column per components.Column, one row
// per animation frame. Frames are sliced once when the sheet is built.
type Sheet struct {
	Image  *ebiten.Image
	frames [sheetColumns][]*ebiten.Image
}

// Frame returns the sub-image for a column and frame, clamping out-of-range
// indices to the sheet.
func (s *Sheet) Frame(col components.Column, frame int) *ebiten.Image {
	c := min(max(int(col), 0), sheetColumns-1)
	rows := s.frames[c]
	return rows[min(max(frame, 0), len(rows)-1)]
}

type palette struct {
	body, outline, eye, blade color.RGBA
}

var (
	playerPalette = palette{
		body:    cfg.LightBlue,
		outline: color.RGBA{R: 30, G: 60, B: 110, A: 255},
		eye:     cfg.White,
		blade:   cfg.Silver,
	}
	enemyPalette = palette{
		body:    color.RGBA{R: 170, G: 40, B: 50, A: 255},
		outline: color.RGBA{R: 70, G: 10, B: 20, A: 255},
		eye:     cfg.BrightOrange,
		blade:   cfg.Silver,
	}
)

// buildSheet draws a character sheet procedurally. Walking columns bob and look
// the way they move; attack columns sweep a blade across the frames.
func buildSheet(p palette) *Sheet {
	fw, fh := cfg.Animation.SpriteWidth, cfg.Animation.SpriteHeight
	rows := cfg.Animation.FramesPerAnimation
	img := ebiten.NewImage(fw*sheetColumns, fh*rows)
	s := &Sheet{Image: img}

	for col := 0; col < sheetColumns; col++ {
		for row := 0; row < rows; row++ {
			cell := img.SubImage(image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)).(*ebiten.Image)
			drawCharacter(cell, components.Column(col), row, rows, p)
			s.frames[col] = append(s.frames[col], cell)
		}
	}
	return s
}

func drawCharacter(cell *ebiten.Image, col components.Column, frame, frames int, p palette) {
	b := cell.Bounds()
	cx := float32(b.Min.X) + float32(b.Dx())/2
	cy := float32(b.Min.Y) + float32(b.Dy())/2
	r := float32(b.Dx()) / 4

	t := float64(frame) / float64(max(frames, 1))
	var lookX, lookY float32
	switch col {
	case components.ColumnMoveLeft, components.ColumnAttackLeft:
		lookX = -1
	case components.ColumnMoveRight, components.ColumnAttackRight:
		lookX = 1
	case components.ColumnMoveUp:
		lookY = -1
	case components.ColumnMoveDown, components.ColumnStatic:
		lookY = 1
	}
	if col >= components.ColumnMoveLeft && col <= components.ColumnMoveRight {
		cy += float32(math.Sin(t*2*math.Pi)) * 2
	}

	// feet
	vector.DrawFilledCircle(cell, cx-r/2, cy+r, r/3, p.outline, true)
	vector.DrawFilledCircle(cell, cx+r/2, cy+r, r/3, p.outline, true)

	vector.DrawFilledCircle(cell, cx, cy, r+2, p.outline, true)
	vector.DrawFilledCircle(cell, cx, cy, r, p.body, true)

	if lookY >= 0 {
		ex, ey := cx+lookX*r/2, cy-r/4+lookY*r/4
		vector.DrawFilledCircle(cell, ex-r/4, ey, r/6, p.eye, true)
		vector.DrawFilledCircle(cell, ex+r/4, ey, r/6, p.eye, true)
	}

	if col == components.ColumnAttackLeft || col == components.ColumnAttackRight {
		// sweep from overhead to low in front
		angle := -math.Pi/3 + t*2*math.Pi/3
		dx := float32(math.Cos(angle)) * lookX
		dy := float32(math.Sin(angle))
		hx, hy := cx+lookX*r, cy
		vector.StrokeLine(cell, hx, hy, hx+dx*r*1.6, hy+dy*r*1.6, 3, p.blade, true)
	}
}

var (
	// disc and ring are unit shapes scaled into shadows and the minimap dots.
	disc *ebiten.Image
	ring *ebiten.Image
)

const shapeSize = 64

func buildShapes() {
	disc = ebiten.NewImage(shapeSize, shapeSize)
	vector.DrawFilledCircle(disc, shapeSize/2, shapeSize/2, shapeSize/2, color.White, true)
	ring = ebiten.NewImage(shapeSize, shapeSize)
	vector.StrokeCircle(ring, shapeSize/2, shapeSize/2, shapeSize/2-2, 2, color.White, true)
}

// drawEllipse draws shape stretched to w x h around (cx, cy).
func drawEllipse(screen, shape *ebiten.Image, cx, cy, w, h float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-shapeSize/2, -shapeSize/2)
	op.GeoM.Scale(w/shapeSize, h/shapeSize)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(shape, op)
}
