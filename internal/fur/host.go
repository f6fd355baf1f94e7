// Package fur renders shell-textured fur on a mesh and drives the grooming
// gestures that deform it.
//
// The package owns no window, GPU or input device. A host supplies pointer
// ray queries and the camera basis (Host), per-frame pointer state (Input)
// and a draw primitive (Renderer). Scene.Frame ticks every surface before
// rendering any of them.
package fur

import (
	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/internal/groom"
	"github.com/Faultbox/furgroom/internal/noise"
	"github.com/Faultbox/furgroom/pkg/math"
)

// SurfaceID identifies a surface within a host.
type SurfaceID uint32

// Handle names a host-owned material. Zero means unset.
type Handle uint32

// Hit is the result of a pointer ray cast.
type Hit struct {
	SurfaceID  SurfaceID
	LocalPoint math.Vec3
}

// Host answers spatial queries for the current frame.
type Host interface {
	// CastRay casts from the camera through a screen position. ok is false
	// when nothing is hit.
	CastRay(screen math.Vec2) (Hit, bool)

	// CameraBasis returns the camera axes in world space.
	CameraBasis() (right, up, forward math.Vec3)
}

// Input is the pointer state for one frame.
type Input = groom.Pointer

// RenderLayer orders draws within a frame.
type RenderLayer int

const (
	LayerBase RenderLayer = iota
	LayerShell
)

// DrawCall is one mesh draw. Shell is nil for the base pass.
type DrawCall struct {
	Surface     SurfaceID
	Mesh        *model.Mesh
	Transform   math.Mat4
	Material    Handle
	RenderLayer RenderLayer
	Shell       *ShellUniforms
}

// Renderer issues draws. Errors wrapping ErrResource skip only that draw.
type Renderer interface {
	DrawMesh(call DrawCall) error
}

// ParamSink receives named shader parameters.
type ParamSink interface {
	SetFloat(name string, v float32)
	SetVector(name string, v math.Vec4)
	SetColor(name string, c math.Color)
	SetTexture(name string, p *noise.Pattern)
}
