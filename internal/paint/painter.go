// Package paint turns pointer strokes into grid writes.
package paint

import (
	"math"

	"terrarium/internal/core"
	"terrarium/internal/particle"
)

// Painter stamps particles onto a grid from pixel coordinates.
type Painter struct {
	grid     *core.Grid
	cellSize int
	rng      core.Source
}

// New returns a Painter for g where each cell spans cellSize pixels.
func New(g *core.Grid, cellSize int, rng core.Source) *Painter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Painter{grid: g, cellSize: cellSize, rng: rng}
}

// CellSize returns the pixel size of one cell.
func (p *Painter) CellSize() int { return p.cellSize }

// ToCell converts pixel coordinates to grid coordinates. Negative pixels map
// to negative cells rather than truncating toward zero.
func (p *Painter) ToCell(px, py int) (int, int) {
	return floorDiv(px, p.cellSize), floorDiv(py, p.cellSize)
}

// SpawnParticle writes a single particle at a pixel position.
func (p *Painter) SpawnParticle(kind core.Kind, px, py int) {
	gx, gy := p.ToCell(px, py)
	p.stamp(kind, gx, gy)
}

// SpawnSquare stamps a size×size block centered on the cell under (px, py).
// Even sizes reach one cell further up and left. Cells off the grid are
// skipped, and cells already holding kind keep their color.
func (p *Painter) SpawnSquare(kind core.Kind, px, py, size int) {
	if size <= 0 {
		return
	}
	gx, gy := p.ToCell(px, py)
	half := size / 2
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			p.stamp(kind, gx+i-half, gy+j-half)
		}
	}
}

// SpawnLine stamps squares along the segment from (x1, y1) to (x2, y2). The
// number of stamps follows the pixel distance so fast strokes leave no gaps.
func (p *Painter) SpawnLine(x1, y1, x2, y2 int, kind core.Kind, size int) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	dist := int(math.Round(math.Hypot(dx, dy)))

	p.SpawnSquare(kind, x1, y1, size)
	if dist < 2 {
		return
	}
	for i := 0; i < dist; i++ {
		t := float64(i) / float64(dist-1)
		ix := int(math.Round(float64(x1) + t*dx))
		iy := int(math.Round(float64(y1) + t*dy))
		p.SpawnSquare(kind, ix, iy, size)
	}
}

func (p *Painter) stamp(kind core.Kind, gx, gy int) {
	if !p.grid.InBounds(gx, gy) {
		return
	}
	i := p.grid.ToIndex(gx, gy)
	cur, err := p.grid.CellAt(i)
	if err != nil || cur.Kind == kind {
		return
	}
	_ = p.grid.SetCell(i, particle.Spawn(kind, p.rng))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
