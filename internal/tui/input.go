package tui

import (
	"github.com/gdamore/tcell/v2"

	"terrarium/internal/sandbox"
)

type action int

const (
	actionNone action = iota
	actionClear
	actionQuit
	actionPause
	actionResume
	actionStep
	actionGrow
	actionShrink
)

func decodeKey(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape:
		return actionClear
	case tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionResume
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit
		case ' ':
			return actionPause
		case 'n', 'N':
			return actionStep
		case '+', '=':
			return actionGrow
		case '-':
			return actionShrink
		}
	}
	return actionNone
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// applyMouse records the pointer position. Wheel reports accumulate into
// Scroll and leave the held buttons alone, since terminals send them as
// separate events.
func applyMouse(in *sandbox.Input, x, y int, buttons tcell.ButtonMask) {
	in.X, in.Y = x, y
	if buttons&wheelMask != 0 {
		if buttons&tcell.WheelUp != 0 {
			in.Scroll++
		}
		if buttons&tcell.WheelDown != 0 {
			in.Scroll--
		}
		return
	}
	in.Primary = buttons&tcell.Button1 != 0
	in.Secondary = buttons&tcell.Button2 != 0
	in.Tertiary = buttons&tcell.Button3 != 0
}
