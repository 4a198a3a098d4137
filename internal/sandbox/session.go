// Package sandbox wires the grid, simulator and painter into the per-frame
// control loop shared by every frontend.
package sandbox

import (
	"image"
	"strconv"

	"terrarium/internal/core"
	"terrarium/internal/paint"
	"terrarium/internal/sim"
)

// Config sizes a session.
type Config struct {
	ResX, ResY int
	CellSize   int
	Seed       int64
	Brush      paint.Brush
}

// DefaultConfig returns an 800×600 window with 4-pixel cells.
func DefaultConfig() Config {
	return Config{ResX: 800, ResY: 600, CellSize: 4, Seed: 1, Brush: paint.DefaultBrush()}
}

// Input is one frame of pointer and keyboard state in window pixels.
type Input struct {
	X, Y      int
	Primary   bool
	Secondary bool
	Tertiary  bool
	Scroll    int
	Clear     bool

	// Pause toggles the user pause, Resume lifts it and StepOnce requests a
	// single tick while paused.
	Pause    bool
	Resume   bool
	StepOnce bool
}

// Session owns one world and applies input to it. It is not safe for
// concurrent use; frontends call it from their update loop only.
type Session struct {
	cfg     Config
	grid    *core.Grid
	sim     *sim.Simulator
	painter *paint.Painter
	brush   paint.Brush

	lastX, lastY int
	cleared      bool
	paused       bool
	stepOnce     bool
}

// New builds a session from cfg.
func New(cfg Config) *Session {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	if cfg.Brush.Size == 0 {
		cfg.Brush = paint.DefaultBrush()
	}
	rng := core.NewRNG(cfg.Seed)
	g := core.NewGridForResolution(cfg.ResX, cfg.ResY, cfg.CellSize)
	return &Session{
		cfg:     cfg,
		grid:    g,
		sim:     sim.New(rng),
		painter: paint.New(g, cfg.CellSize, rng),
		brush:   cfg.Brush,
	}
}

// Frame applies one frame of input and then advances the world. It does not
// step while the tertiary button holds the world frozen, or while the user
// has paused it and no single step is pending.
func (s *Session) Frame(in Input) {
	s.HandleInput(in)
	if s.paused && !s.stepOnce {
		return
	}
	if s.sim.Step(s.grid) {
		s.stepOnce = false
	}
}

// HandleInput applies pause keys, scroll, clear and painting without
// stepping.
func (s *Session) HandleInput(in Input) {
	if in.Pause {
		s.paused = !s.paused
	}
	if in.Resume {
		s.paused = false
	}
	if in.StepOnce {
		s.stepOnce = true
	}
	if in.Scroll != 0 {
		s.brush.Scroll(in.Scroll)
	}
	s.cleared = false
	if in.Clear {
		s.grid.Clear()
		s.cleared = true
	}

	x := min(max(in.X, 0), max(s.cfg.ResX-1, 0))
	y := min(max(in.Y, 0), max(s.cfg.ResY-1, 0))

	s.sim.SetFrozen(false)
	switch {
	case in.Primary:
		s.brush.Kind = core.Sand
	case in.Secondary:
		s.brush.Kind = core.Stone
	case in.Tertiary:
		s.brush.Kind = core.Water
		s.sim.SetFrozen(true)
	default:
		s.lastX, s.lastY = x, y
		return
	}

	s.painter.SpawnLine(s.lastX, s.lastY, x, y, s.brush.Kind, s.brush.Size)
	s.lastX, s.lastY = x, y
}

// Step advances the world by one tick and reports whether it ran.
func (s *Session) Step() bool { return s.sim.Step(s.grid) }

// Grid returns the world grid for rendering.
func (s *Session) Grid() *core.Grid { return s.grid }

// Snapshot returns a copy of every cell.
func (s *Session) Snapshot() []core.Cell { return s.grid.Snapshot() }

// Brush returns the current brush.
func (s *Session) Brush() paint.Brush { return s.brush }

// Frozen reports whether the tertiary button froze the last frame.
func (s *Session) Frozen() bool { return s.sim.Frozen() }

// Paused reports whether the user paused the world.
func (s *Session) Paused() bool { return s.paused }

// Tick returns the number of completed steps.
func (s *Session) Tick() uint64 { return s.sim.Tick() }

// Stats returns the last step's counters.
func (s *Session) Stats() sim.Stats { return s.sim.Stats() }

// Cleared reports whether the last frame cleared the grid.
func (s *Session) Cleared() bool { return s.cleared }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Cursor returns the last clamped pointer position in pixels.
func (s *Session) Cursor() (int, int) { return s.lastX, s.lastY }

// BrushOutline returns the pixel rectangle the brush covers at the cursor.
func (s *Session) BrushOutline() image.Rectangle {
	return s.brush.Outline(s.lastX, s.lastY, s.cfg.CellSize)
}

// Parameters describes the session for status panels.
func (s *Session) Parameters() core.ParameterSnapshot {
	w, h := s.grid.Dimensions()
	st := s.sim.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "kind", Label: "Kind", Type: core.ParamTypeString, Value: s.brush.Kind.String()},
				intParam("size", "Size", s.brush.Size),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w),
				intParam("h", "Height", h),
				intParam("cell", "Cell size", s.cfg.CellSize),
				intParam("particles", "Particles", s.grid.CountNonEmpty()),
				intParam("moved", "Moved", st.Moved),
				{Key: "tick", Label: "Tick", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.sim.Tick(), 10)},
				{Key: "frozen", Label: "Frozen", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.sim.Frozen())},
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
			},
		},
	}}
}

// ParameterControls lists the values a HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Brush size", Step: 1, Min: paint.MinBrushSize, Max: paint.MaxBrushSize},
	}
}

// SetIntParameter updates an adjustable value. It rejects unknown keys and
// out-of-range values.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < paint.MinBrushSize || value > paint.MaxBrushSize {
			return false
		}
		s.brush.Size = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}
