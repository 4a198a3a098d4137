package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside the grid.
var ErrOutOfRange = errors.New("cell index out of range")

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	w, h int
	data []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]Cell, w*h)}
}

// NewGridForResolution sizes a grid so each cell covers cellSize×cellSize
// pixels. Remainder pixels past the last whole cell are not addressable.
func NewGridForResolution(resX, resY, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return NewGrid(resX/cellSize, resY/cellSize)
}

// Dimensions returns the grid width and height in cells.
func (g *Grid) Dimensions() (int, int) { return g.w, g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// ToIndex returns the linear index for coordinates (x, y).
func (g *Grid) ToIndex(x, y int) int { return y*g.w + x }

// ToCoord returns the coordinates of a linear index.
func (g *Grid) ToCoord(i int) (int, int) { return i % g.w, i / g.w }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Contains reports whether i is a valid cell index.
func (g *Grid) Contains(i int) bool { return i >= 0 && i < len(g.data) }

// CellAt returns the cell stored at index i.
func (g *Grid) CellAt(i int) (Cell, error) {
	if !g.Contains(i) {
		return Cell{}, fmt.Errorf("read %d of %d: %w", i, len(g.data), ErrOutOfRange)
	}
	return g.data[i], nil
}

// SetCell overwrites the cell stored at index i.
func (g *Grid) SetCell(i int, c Cell) error {
	if !g.Contains(i) {
		return fmt.Errorf("write %d of %d: %w", i, len(g.data), ErrOutOfRange)
	}
	g.data[i] = c
	return nil
}

// At returns the cell at (x, y), or an empty cell when the coordinates are
// off the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.data[y*g.w+x]
}

// Clear resets every cell to empty black.
func (g *Grid) Clear() {
	clear(g.data)
}

// Cells exposes the live buffer for read-only use on the owning goroutine.
func (g *Grid) Cells() []Cell { return g.data }

// Snapshot returns a copy of the current cells.
func (g *Grid) Snapshot() []Cell {
	return append([]Cell(nil), g.data...)
}

// CountNonEmpty returns the number of particles on the grid.
func (g *Grid) CountNonEmpty() int {
	n := 0
	for _, c := range g.data {
		if c.Kind != Empty {
			n++
		}
	}
	return n
}

// Swap installs next as the live buffer and hands back the previous one so
// callers can reuse it. It panics if the lengths differ.
func (g *Grid) Swap(next []Cell) []Cell {
	if len(next) != len(g.data) {
		panic(fmt.Sprintf("core: swap buffer length %d, want %d", len(next), len(g.data)))
	}
	prev := g.data
	g.data = next
	return prev
}
