//go:build ebiten

package app

import (
	"fmt"
	"time"

	"terrarium/internal/audio"
	"terrarium/internal/core"
	"terrarium/internal/render"
	"terrarium/internal/sandbox"
	"terrarium/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sandbox session to the ebiten.Game interface.
type Game struct {
	session *sandbox.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cue     *audio.Cue

	fps       *core.FPSMeter
	lastFrame time.Time
}

// New constructs a Game for the provided session.
func New(session *sandbox.Session, cue *audio.Cue) *Game {
	w, h := session.Grid().Dimensions()
	return &Game{
		session: session,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(session),
		overlay: ui.NewOverlay(),
		cue:     cue,
		fps:     core.NewFPSMeter(),
	}
}

// Update reads input and advances the session by one frame. Space toggles
// pause, Enter resumes and N steps once while paused.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.session.Frame(g.readInput())
	if g.session.Cleared() {
		g.cue.Cleared()
	}

	now := time.Now()
	if !g.lastFrame.IsZero() && g.fps.Frame(now.Sub(g.lastFrame)) {
		ebiten.SetWindowTitle(fmt.Sprintf("terrarium | FPS: %.2f", g.fps.FPS()))
	}
	g.lastFrame = now

	g.hud.Update(g.fps.FPS())
	return nil
}

func (g *Game) readInput() sandbox.Input {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	scroll := 0
	switch {
	case wheel > 0:
		scroll = 1
	case wheel < 0:
		scroll = -1
	}
	in := sandbox.Input{
		X:        x,
		Y:        y,
		Scroll:   scroll,
		Clear:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Resume:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		StepOnce: inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	if !g.hud.Captures(x, y) {
		in.Primary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.Secondary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
		in.Tertiary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
	return in
}

// Draw renders the current grid, the brush outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Grid().Cells(), g.session.Config().CellSize)
	g.overlay.Draw(screen, g.session.BrushOutline())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ResX, cfg.ResY
}
