//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the brush outline on top of the grid.
type Overlay struct {
	pixel *ebiten.Image
	color color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw outlines rect, given in screen pixels.
func (o *Overlay) Draw(screen *ebiten.Image, rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	x0, y0 := float64(rect.Min.X), float64(rect.Min.Y)
	x1, y1 := float64(rect.Max.X), float64(rect.Max.Y)
	o.drawLine(screen, x0, y0, x1, y0, 1, o.color)
	o.drawLine(screen, x1, y0, x1, y1, 1, o.color)
	o.drawLine(screen, x1, y1, x0, y1, 1, o.color)
	o.drawLine(screen, x0, y1, x0, y0, 1, o.color)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
