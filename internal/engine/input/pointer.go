package input

// PointerState is one button's state for a frame. Pressed and Released are
// edges: both can be set when a click starts and ends within one frame.
type PointerState struct {
	Down     bool
	Pressed  bool
	Released bool
	X, Y     float32
	// DX and DY are the motion since the previous frame.
	DX, DY float32
}

// Tracker folds button and motion events into per-frame PointerState.
type Tracker struct {
	state  PointerState
	frameX float32
	frameY float32
}

// BeginFrame clears the edges and motion of the previous frame.
func (t *Tracker) BeginFrame() {
	t.state.Pressed = false
	t.state.Released = false
	t.frameX, t.frameY = t.state.X, t.state.Y
}

// Move records pointer motion.
func (t *Tracker) Move(x, y float32) {
	t.state.X, t.state.Y = x, y
}

// Press records a button press.
func (t *Tracker) Press(x, y float32) {
	t.Move(x, y)
	if !t.state.Down {
		t.state.Pressed = true
	}
	t.state.Down = true
}

// Release records a button release.
func (t *Tracker) Release(x, y float32) {
	t.Move(x, y)
	if t.state.Down {
		t.state.Released = true
	}
	t.state.Down = false
}

// State returns the accumulated state.
func (t *Tracker) State() PointerState {
	s := t.state
	s.DX = s.X - t.frameX
	s.DY = s.Y - t.frameY
	return s
}
