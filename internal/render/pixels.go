package render

import (
	"image/color"

	"terrarium/internal/core"
)

// Background is drawn wherever a cell is empty.
var Background = color.RGBA{A: 0xff}

// FillRGBA converts cells into opaque RGBA pixels in buf, which must hold
// 4*len(cells) bytes. Empty cells use Background.
func FillRGBA(buf []byte, cells []core.Cell) {
	if len(buf) < 4*len(cells) {
		return
	}
	for i, c := range cells {
		base := i * 4
		if c.Kind == core.Empty {
			buf[base+0] = Background.R
			buf[base+1] = Background.G
			buf[base+2] = Background.B
			buf[base+3] = Background.A
			continue
		}
		buf[base+0] = c.Color.R
		buf[base+1] = c.Color.G
		buf[base+2] = c.Color.B
		buf[base+3] = 0xff
	}
}

// RGBA returns the display color of a cell.
func RGBA(c core.Cell) color.RGBA {
	if c.Kind == core.Empty {
		return Background
	}
	return color.RGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 0xff}
}
