// Package camera provides the orbit camera used by the viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Projection
	FovY      float32 // radians
	NearPlane float32
	FarPlane  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera framing a unit-sized object.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        3.0,
		Pitch:           0.4,
		FovY:            math32.Pi / 4,
		NearPlane:       0.05,
		FarPlane:        100,
		MinDistance:     0.5,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(c.Pitch)
	sinY, cosY := math32.Sincos(c.Yaw)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cosP * sinY,
		Y: c.Distance * sinP,
		Z: c.Distance * cosP * cosY,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// ProjectionMatrix returns the perspective projection for the aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.NearPlane, c.FarPlane)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// Basis returns the camera's right, up and forward axes in world space.
func (c *OrbitCamera) Basis() (right, up, forward math.Vec3) {
	forward = c.Center.Sub(c.Position()).Normalize()
	right = forward.Cross(math.Up).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a box and backs off far enough to see
// all of it.
func (c *OrbitCamera) FitToBounds(b model.Bounds) {
	c.Center = b.Center()
	radius := b.Radius()

	c.Distance = radius / math32.Sin(c.FovY/2) * 1.2
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.Pitch = 0.4
	c.Yaw = 0
}
