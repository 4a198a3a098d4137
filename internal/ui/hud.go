//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"terrarium/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding    = 8
	panelLineHeight = 15
	panelWidth      = 170
	controlHeight   = 22
	buttonSize      = 16
	buttonGap       = 4
)

// HUD renders a translucent status panel in the top-left corner. When the
// source is Controllable, each control gets a -/+ button pair.
type HUD struct {
	src      ParameterProvider
	ctrl     Controllable
	controls []core.ParameterControl
	visible  bool
	panel    *ebiten.Image
	pixel    *ebiten.Image
	lines    []string
	fps      float64
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src ParameterProvider) *HUD {
	h := &HUD{src: src, visible: true}
	if c, ok := src.(Controllable); ok {
		h.ctrl = c
		h.controls = c.ParameterControls()
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update toggles visibility on Tab, applies button clicks and refreshes the
// cached lines.
func (h *HUD) Update(fps float64) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	h.fps = fps
	if !h.visible || h.src == nil {
		return
	}
	h.lines = PanelLines(h.src.Parameters())
	if h.handleClick() {
		h.lines = PanelLines(h.src.Parameters())
	}
}

// Captures reports whether the screen point lies on the visible panel, so
// clicks there do not paint.
func (h *HUD) Captures(x, y int) bool {
	if h == nil || !h.visible || h.panel == nil {
		return false
	}
	return image.Pt(x, y).In(h.panel.Bounds())
}

func (h *HUD) handleClick() bool {
	if h.ctrl == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	pt := image.Pt(ebiten.CursorPosition())
	for i, c := range h.controls {
		minus, plus := h.buttons(i)
		switch {
		case pt.In(minus):
			return StepControl(h.ctrl, c.Key, -1)
		case pt.In(plus):
			return StepControl(h.ctrl, c.Key, 1)
		}
	}
	return false
}

func (h *HUD) controlsTop() int {
	return panelPadding + panelLineHeight*(len(h.lines)+1)
}

func (h *HUD) buttons(i int) (image.Rectangle, image.Rectangle) {
	y := h.controlsTop() + i*controlHeight + (controlHeight-buttonSize)/2
	plus := image.Rect(panelWidth-panelPadding-buttonSize, y, panelWidth-panelPadding, y+buttonSize)
	minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	return minus, plus
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	height := h.controlsTop() + controlHeight*len(h.controls) + panelPadding
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + panelLineHeight - 3
	for _, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if len(line) > 0 && line[0] != ' ' {
			clr = color.RGBA{R: 200, G: 200, B: 120, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += panelLineHeight
	}
	text.Draw(h.panel, StatusLine(core.ParameterSnapshot{}, h.fps), face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	for i, c := range h.controls {
		minus, plus := h.buttons(i)
		text.Draw(h.panel, c.Label, face, panelPadding, minus.Max.Y-3, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		h.drawButton(minus, "-")
		h.drawButton(plus, "+")
	}

	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(54.0/255, 56.0/255, 64.0/255, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
