package app

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/furgroom/internal/engine/camera"
	"github.com/Faultbox/furgroom/internal/engine/picking"
	"github.com/Faultbox/furgroom/internal/fur"
	"github.com/Faultbox/furgroom/pkg/math"
)

// sceneHost answers the fur scene's spatial queries from the orbit camera
// and the CPU copies of the surface meshes.
type sceneHost struct {
	camera *camera.OrbitCamera
	scene  *fur.Scene

	// Viewport in the same units as pointer positions (window points).
	width, height float32
}

// CastRay returns the nearest active surface under the screen position.
func (h *sceneHost) CastRay(screen math.Vec2) (fur.Hit, bool) {
	if h.scene == nil || h.width <= 0 || h.height <= 0 {
		return fur.Hit{}, false
	}

	inv := h.camera.ViewProjection(h.width / h.height).Inverse()
	ray := picking.ScreenToRay(screen.X, screen.Y, h.width, h.height, inv)

	var best fur.Hit
	bestDist := float32(math32.MaxFloat32)
	found := false
	for _, s := range h.scene.Surfaces() {
		if !s.Active() {
			continue
		}
		hit, ok := picking.IntersectMesh(ray, s.Mesh, s.Transform)
		if !ok || hit.Distance >= bestDist {
			continue
		}
		bestDist = hit.Distance
		best = fur.Hit{SurfaceID: s.ID, LocalPoint: hit.Local}
		found = true
	}
	return best, found
}

// CameraBasis returns the orbit camera's axes.
func (h *sceneHost) CameraBasis() (right, up, forward math.Vec3) {
	return h.camera.Basis()
}

func (h *sceneHost) setViewport(width, height int) {
	h.width, h.height = float32(width), float32(height)
}
