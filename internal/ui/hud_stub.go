//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(ParameterProvider) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(float64) {}

// Captures always reports false in the headless build.
func (h *HUD) Captures(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
