package sandbox

import (
	"terrarium/internal/core"
	"terrarium/internal/paint"
	"terrarium/internal/sim"
)

// PourConfig describes a settling experiment: a brush held at the top
// center of an empty grid for a number of ticks, after which the pile is
// left to come to rest.
type PourConfig struct {
	Width, Height int
	Seed          int64
	Kind          core.Kind
	BrushSize     int
	PourTicks     int
	MaxSteps      int
}

// DefaultPourConfig returns a small sand pour.
func DefaultPourConfig() PourConfig {
	return PourConfig{
		Width:     96,
		Height:    64,
		Seed:      1,
		Kind:      core.Sand,
		BrushSize: 3,
		PourTicks: 40,
		MaxSteps:  2000,
	}
}

// SettleResult reports how a pour ended.
type SettleResult struct {
	Config     PourConfig
	Particles  int
	SettledAt  int
	Settled    bool
	PileWidth  int
	PileHeight int
	Collisions int
}

// Pour runs the experiment described by cfg. It owns its grid, simulator
// and RNG, so separate calls may run in parallel.
func Pour(cfg PourConfig) SettleResult {
	rng := core.NewRNG(cfg.Seed)
	g := core.NewGrid(cfg.Width, cfg.Height)
	w, h := g.Dimensions()
	cfg.Width, cfg.Height = w, h

	s := sim.New(rng)
	p := paint.New(g, 1, rng)
	res := SettleResult{Config: cfg}

	cx := w / 2
	for step := 1; step <= cfg.MaxSteps; step++ {
		if step <= cfg.PourTicks {
			p.SpawnSquare(cfg.Kind, cx, 0, cfg.BrushSize)
		}
		s.Step(g)
		res.Collisions += s.Stats().Collisions
		if step >= cfg.PourTicks && s.Stats().Moved == 0 {
			res.SettledAt = step
			res.Settled = true
			break
		}
	}

	res.Particles = g.CountNonEmpty()
	res.PileWidth, res.PileHeight = extent(g)
	return res
}

func extent(g *core.Grid) (int, int) {
	w, h := g.Dimensions()
	minX, maxX, minY := w, -1, h
	for i, c := range g.Cells() {
		if c.IsEmpty() {
			continue
		}
		x, y := g.ToCoord(i)
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
	}
	if maxX < 0 {
		return 0, 0
	}
	return maxX - minX + 1, h - minY
}
