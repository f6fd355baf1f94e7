package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/furgroom/internal/groom"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionToggleBrush
	actionToggleSweep
	actionToggleSplit
	actionToggleFur
	actionReseed
	actionVerticalFur
	actionResetCamera
	actionScreenshot
)

var keyBindings = map[sdl.Scancode]action{
	sdl.SCANCODE_ESCAPE: actionQuit,
	sdl.SCANCODE_1:      actionToggleBrush,
	sdl.SCANCODE_2:      actionToggleSweep,
	sdl.SCANCODE_3:      actionToggleSplit,
	sdl.SCANCODE_F:      actionToggleFur,
	sdl.SCANCODE_R:      actionReseed,
	sdl.SCANCODE_V:      actionVerticalFur,
	sdl.SCANCODE_SPACE:  actionResetCamera,
	sdl.SCANCODE_F12:    actionScreenshot,
}

func actionFor(key sdl.Scancode) action {
	return keyBindings[key]
}

// gestureFor maps the toggle actions to their gesture.
func gestureFor(a action) (groom.Kind, bool) {
	switch a {
	case actionToggleBrush:
		return groom.KindBrush, true
	case actionToggleSweep:
		return groom.KindSweep, true
	case actionToggleSplit:
		return groom.KindSplit, true
	}
	return 0, false
}
