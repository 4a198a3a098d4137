package ui

import (
	"fmt"
	"strconv"
	"strings"

	"terrarium/internal/core"
)

// ParameterProvider supplies the values shown on the HUD and status line.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Controllable is a provider whose integer parameters can be stepped.
type Controllable interface {
	ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// StepControl moves the control named key one step in direction and
// reports whether the value changed.
func StepControl(src Controllable, key string, direction int) bool {
	if src == nil || direction == 0 {
		return false
	}
	for _, ctrl := range src.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		p, ok := src.Parameters().Lookup(key)
		if !ok {
			return false
		}
		cur, err := strconv.Atoi(p.Value)
		if err != nil {
			return false
		}
		next := ctrl.Nudge(cur, direction)
		return next != cur && src.SetIntParameter(key, next)
	}
	return false
}

// StatusLine renders a parameter snapshot as a single compact line, as used
// by the window title and the terminal status bar.
func StatusLine(snap core.ParameterSnapshot, fps float64) string {
	var b strings.Builder
	for _, key := range []string{"kind", "size", "particles", "tick"} {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s: %s", p.Label, p.Value)
	}
	for _, key := range []string{"frozen", "paused"} {
		if p, ok := snap.Lookup(key); ok && p.Value == "true" {
			if b.Len() > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "[%s]", key)
		}
	}
	if b.Len() > 0 {
		b.WriteString("  ")
	}
	fmt.Fprintf(&b, "FPS: %.2f", fps)
	return b.String()
}

// PanelLines renders every group as a heading followed by indented values.
func PanelLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
