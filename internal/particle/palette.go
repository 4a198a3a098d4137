package particle

import "terrarium/internal/core"

var palettes = map[core.Kind][3]core.Color{
	core.Sand:  {{R: 182, G: 160, B: 113}, {R: 220, G: 193, B: 136}, {R: 255, G: 230, B: 157}},
	core.Stone: {{R: 65, G: 65, B: 65}, {R: 60, G: 60, B: 60}, {R: 75, G: 75, B: 75}},
	core.Water: {{R: 28, G: 163, B: 236}, {R: 21, G: 127, B: 185}, {R: 28, G: 175, B: 255}},
}

// Shade picks one of the kind's three fixed colors uniformly at random.
// Empty and unknown kinds are black. Only spawning calls this; particles keep
// their color while they move.
func Shade(kind core.Kind, rng core.Source) core.Color {
	p, ok := palettes[kind]
	if !ok {
		return core.Black
	}
	return p[rng.IntN(len(p))]
}

// Palette returns the three shades for a kind.
func Palette(kind core.Kind) []core.Color {
	p, ok := palettes[kind]
	if !ok {
		return nil
	}
	return p[:]
}

// Spawn returns a freshly colored cell of the given kind. Unknown kinds
// become empty black cells.
func Spawn(kind core.Kind, rng core.Source) core.Cell {
	if _, ok := palettes[kind]; !ok {
		return core.Cell{}
	}
	return core.Cell{Kind: kind, Color: Shade(kind, rng)}
}
