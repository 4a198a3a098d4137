package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"terrarium/internal/core"
	"terrarium/internal/paint"
	"terrarium/internal/sandbox"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	CellSize  int
	TPS       int
	Seed      int64
	Brush     string
	BrushSize int
	Sound     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     800,
		Height:    600,
		CellSize:  4,
		TPS:       60,
		Brush:     core.Sand.String(),
		BrushSize: paint.DefaultBrushSize,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initial brush kind: sand, stone or water")
	fs.IntVar(&c.BrushSize, "brush-size", c.BrushSize, "initial brush size in cells")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a tone when the grid is cleared")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution %dx%d must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	}
	if c.CellSize > c.Width || c.CellSize > c.Height {
		return fmt.Errorf("cell size %d exceeds resolution %dx%d", c.CellSize, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	if c.BrushSize < paint.MinBrushSize || c.BrushSize > paint.MaxBrushSize {
		return fmt.Errorf("brush size %d outside [%d,%d]", c.BrushSize, paint.MinBrushSize, paint.MaxBrushSize)
	}
	if k, ok := core.ParseKind(c.Brush); !ok || k == core.Empty {
		return fmt.Errorf("brush %q must be one of %s", c.Brush, strings.Join(BrushKinds(), ", "))
	}
	return nil
}

// BrushKinds names every kind a brush can paint.
func BrushKinds() []string {
	var names []string
	for _, k := range core.Kinds() {
		if k != core.Empty {
			names = append(names, k.String())
		}
	}
	return names
}

// Session converts the configuration into session settings. A zero seed is
// replaced with one derived from the clock.
func (c *Config) Session() sandbox.Config {
	kind, ok := core.ParseKind(c.Brush)
	if !ok {
		kind = core.Sand
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return sandbox.Config{
		ResX:     c.Width,
		ResY:     c.Height,
		CellSize: c.CellSize,
		Seed:     seed,
		Brush:    paint.Brush{Kind: kind, Size: c.BrushSize},
	}
}
