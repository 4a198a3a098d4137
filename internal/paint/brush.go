package paint

import (
	"image"

	"terrarium/internal/core"
)

const (
	// MinBrushSize is the smallest stamp edge in cells.
	MinBrushSize = 1
	// MaxBrushSize is the largest stamp edge in cells.
	MaxBrushSize = 40
	// DefaultBrushSize is the stamp edge a session starts with.
	DefaultBrushSize = 4
)

// Brush is the kind and stamp size applied by pointer strokes.
type Brush struct {
	Kind core.Kind
	Size int
}

// DefaultBrush returns a sand brush of the default size.
func DefaultBrush() Brush {
	return Brush{Kind: core.Sand, Size: DefaultBrushSize}
}

// Scroll adjusts the size by one wheel delta: single steps while the brush
// is one cell wide, double steps otherwise, clamped to the allowed range.
func (b *Brush) Scroll(delta int) {
	if delta == 0 {
		return
	}
	step := 2
	if b.Size == 1 {
		step = 1
	}
	b.Size = clampSize(b.Size + delta*step)
}

// Outline returns the pixel rectangle a stamp at pixel (px, py) covers,
// snapped to the cell lattice.
func (b Brush) Outline(px, py, cellSize int) image.Rectangle {
	if cellSize <= 0 {
		cellSize = 1
	}
	half := b.Size / 2
	gx := floorDiv(px, cellSize) - half
	gy := floorDiv(py, cellSize) - half
	return image.Rect(gx*cellSize, gy*cellSize, (gx+b.Size)*cellSize, (gy+b.Size)*cellSize)
}

func clampSize(n int) int {
	return min(max(n, MinBrushSize), MaxBrushSize)
}
