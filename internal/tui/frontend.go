// Package tui runs a sandbox session inside a terminal. Each terminal cell
// shows one grid cell and the bottom row holds the status line.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"terrarium/internal/audio"
	"terrarium/internal/core"
	"terrarium/internal/render"
	"terrarium/internal/sandbox"
	"terrarium/internal/ui"
)

// Frontend owns the terminal screen and the session drawn on it. Only the
// goroutine running Run (or calling Handle/Frame directly) touches the
// session.
type Frontend struct {
	screen  tcell.Screen
	session *sandbox.Session
	cue     *audio.Cue
	pacer   *core.FixedStep
	fps     *core.FPSMeter

	pending   sandbox.Input
	quit      bool
	lastFrame time.Time
}

// New sizes a session to the screen, one pixel per cell with the bottom row
// reserved. Resolution and cell size in base are replaced; the seed and
// brush are kept.
func New(screen tcell.Screen, base sandbox.Config, tps int, cue *audio.Cue) *Frontend {
	cols, rows := screen.Size()
	base.ResX = max(cols, 1)
	base.ResY = max(rows-1, 1)
	base.CellSize = 1
	return &Frontend{
		screen:  screen,
		session: sandbox.New(base),
		cue:     cue,
		pacer:   core.NewFixedStep(tps),
		fps:     core.NewFPSMeter(),
	}
}

// Session exposes the underlying session.
func (f *Frontend) Session() *sandbox.Session { return f.session }

// Quit reports whether a quit key was seen.
func (f *Frontend) Quit() bool { return f.quit }

// Pending returns the input accumulated since the last frame.
func (f *Frontend) Pending() sandbox.Input { return f.pending }

// Handle folds one terminal event into the pending input.
func (f *Frontend) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch decodeKey(ev.Key(), ev.Rune()) {
		case actionQuit:
			f.quit = true
		case actionClear:
			f.pending.Clear = true
		case actionPause:
			f.pending.Pause = !f.pending.Pause
		case actionResume:
			f.pending.Resume = true
		case actionStep:
			f.pending.StepOnce = true
		case actionGrow:
			ui.StepControl(f.session, "size", 1)
		case actionShrink:
			ui.StepControl(f.session, "size", -1)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		applyMouse(&f.pending, x, y, ev.Buttons())
	case *tcell.EventResize:
		// The grid keeps its size; wipe whatever the old layout left behind.
		f.screen.Clear()
		f.Draw()
		f.screen.Sync()
	}
}

// Frame applies the pending input, advances the session and redraws.
func (f *Frontend) Frame() {
	f.session.Frame(f.pending)
	if f.session.Cleared() {
		f.cue.Cleared()
	}
	f.pending.Scroll = 0
	f.pending.Clear = false
	f.pending.Pause = false
	f.pending.Resume = false
	f.pending.StepOnce = false

	now := time.Now()
	if !f.lastFrame.IsZero() {
		f.fps.Frame(now.Sub(f.lastFrame))
	}
	f.lastFrame = now

	f.Draw()
}

// Draw paints the grid, brush outline and status line. The status line sits
// on the row below the grid, whatever the current terminal size.
func (f *Frontend) Draw() {
	g := f.session.Grid()
	w, h := g.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.screen.SetContent(x, y, ' ', nil, cellStyle(g.At(x, y)))
		}
	}
	f.drawOutline(w, h)

	status := []rune(ui.StatusLine(f.session.Parameters(), f.fps.FPS()))
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		f.screen.SetContent(x, h, r, nil, style)
	}
	f.screen.Show()
}

func (f *Frontend) drawOutline(w, h int) {
	r := f.session.BrushOutline()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if x < 0 || x >= w || y < 0 || y >= h {
				continue
			}
			if x != r.Min.X && x != r.Max.X-1 && y != r.Min.Y && y != r.Max.Y-1 {
				continue
			}
			c := f.session.Grid().At(x, y)
			f.screen.SetContent(x, y, '·', nil, cellStyle(c).Foreground(tcell.ColorWhite))
		}
	}
}

// Run pumps terminal events and frames until a quit key or ctx ends it. The
// current frame always completes before Run returns.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	defer f.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.pacer.Interval())
	defer ticker.Stop()

	for !f.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			f.Handle(ev)
		case <-ticker.C:
			if f.pacer.ShouldStep() {
				f.Frame()
			}
		}
	}
	return nil
}

func cellStyle(c core.Cell) tcell.Style {
	col := render.RGBA(c)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
}
