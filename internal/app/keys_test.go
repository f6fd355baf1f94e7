package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/furgroom/internal/groom"
)

func TestKeyBindings(t *testing.T) {
	assert.Equal(t, actionQuit, actionFor(sdl.SCANCODE_ESCAPE))
	assert.Equal(t, actionScreenshot, actionFor(sdl.SCANCODE_F12))
	assert.Equal(t, actionReseed, actionFor(sdl.SCANCODE_R))
	assert.Equal(t, actionNone, actionFor(sdl.SCANCODE_Q))
}

func TestGestureToggles(t *testing.T) {
	tests := []struct {
		key  sdl.Scancode
		want groom.Kind
	}{
		{sdl.SCANCODE_1, groom.KindBrush},
		{sdl.SCANCODE_2, groom.KindSweep},
		{sdl.SCANCODE_3, groom.KindSplit},
	}
	for _, tt := range tests {
		kind, ok := gestureFor(actionFor(tt.key))
		assert.True(t, ok)
		assert.Equal(t, tt.want, kind)
	}

	_, ok := gestureFor(actionQuit)
	assert.False(t, ok)
}
