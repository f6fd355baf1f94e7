package fur

import (
	"fmt"

	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/pkg/math"
)

// planeHost maps screen pixels onto local XZ at one unit per hundred pixels
// and reports every hit on target. It appends "cast" to events per query.
type planeHost struct {
	target SurfaceID
	miss   bool
	events *[]string
}

func (h *planeHost) CastRay(screen math.Vec2) (Hit, bool) {
	if h.events != nil {
		*h.events = append(*h.events, "cast")
	}
	if h.miss {
		return Hit{}, false
	}
	return Hit{SurfaceID: h.target, LocalPoint: math.Vec3{X: screen.X / 100, Z: screen.Y / 100}}, true
}

// CameraBasis looks down -Z with +X right and +Y up.
func (h *planeHost) CameraBasis() (right, up, forward math.Vec3) {
	return math.Vec3{X: 1}, math.Up, math.Vec3{Z: -1}
}

// recorder keeps every draw call. Draws whose position in the frame is in
// fail return a resource error.
type recorder struct {
	calls  []DrawCall
	fail   map[int]bool
	n      int
	events *[]string
}

func (r *recorder) DrawMesh(call DrawCall) error {
	defer func() { r.n++ }()
	if r.events != nil {
		*r.events = append(*r.events, "draw")
	}
	if r.fail[r.n] {
		return fmt.Errorf("upload shell %d: %w", r.n, ErrResource)
	}
	r.calls = append(r.calls, call)
	return nil
}

func (r *recorder) reset() {
	r.calls = nil
	r.n = 0
}

// paramSink records the last value written per name.
type paramSink struct {
	floats   map[string]float32
	vectors  map[string]math.Vec4
	colors   map[string]math.Color
	textures map[string]*noise.Pattern
}

func newParamSink() *paramSink {
	return &paramSink{
		floats:   map[string]float32{},
		vectors:  map[string]math.Vec4{},
		colors:   map[string]math.Color{},
		textures: map[string]*noise.Pattern{},
	}
}

func (s *paramSink) SetFloat(name string, v float32)          { s.floats[name] = v }
func (s *paramSink) SetVector(name string, v math.Vec4)       { s.vectors[name] = v }
func (s *paramSink) SetColor(name string, c math.Color)       { s.colors[name] = c }
func (s *paramSink) SetTexture(name string, p *noise.Pattern) { s.textures[name] = p }

func (s *paramSink) has(name string) bool {
	_, f := s.floats[name]
	_, v := s.vectors[name]
	_, c := s.colors[name]
	_, t := s.textures[name]
	return f || v || c || t
}

func newTestSurface(id SurfaceID) *Surface {
	s := NewSurface(id, model.Plane(2, 2), 1, 2)
	s.PatternSettings.Size = 16
	return s
}

func pointer(x, y float32, down, pressed bool) Input {
	return Input{Down: down, Pressed: pressed, Position: math.Vec2{X: x, Y: y}}
}
