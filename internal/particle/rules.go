package particle

import "terrarium/internal/core"

// Stone never moves.
type Stone struct{}

// Update keeps the stone where it is.
func (Stone) Update(g *core.Grid, index int, _ core.Source) (Move, bool) {
	c, err := g.CellAt(index)
	if err != nil {
		return Move{}, false
	}
	return Move{Dest: index, Cell: c}, true
}

// Sand falls straight down when it can and otherwise slides into one of the
// two diagonal cells below, trying a randomly chosen side first.
type Sand struct{}

// Update applies the granular rule.
func (Sand) Update(g *core.Grid, index int, rng core.Source) (Move, bool) {
	return granular(g, index, rng)
}

// Water occupies its own rule slot. It currently settles like sand.
type Water struct{}

// Update applies the water rule.
func (Water) Update(g *core.Grid, index int, rng core.Source) (Move, bool) {
	return granular(g, index, rng)
}

func granular(g *core.Grid, index int, rng core.Source) (Move, bool) {
	c, err := g.CellAt(index)
	if err != nil || c.IsEmpty() {
		return Move{}, false
	}
	w, h := g.Dimensions()
	x, y := g.ToCoord(index)

	if y+1 >= h {
		return Move{Dest: index, Cell: c}, true
	}
	if g.At(x, y+1).IsEmpty() {
		return Move{Dest: g.ToIndex(x, y+1), Cell: c}, true
	}

	dir := 1
	if rng.Bool() {
		dir = -1
	}
	for _, spot := range [2]int{x - dir, x + dir} {
		if spot < 0 || spot >= w {
			continue
		}
		if g.At(spot, y).IsEmpty() && g.At(spot, y+1).IsEmpty() {
			return Move{Dest: g.ToIndex(spot, y+1), Cell: c}, true
		}
	}
	return Move{Dest: index, Cell: c}, true
}
