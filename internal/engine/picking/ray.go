// Package picking provides ray casting against meshes.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/furgroom/internal/engine/model"
	"github.com/Faultbox/furgroom/pkg/math"
)

// Ray represents a ray in 3D space with origin and normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates with Y down, viewportW/H are the
// viewport dimensions and invViewProj is the inverse view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, x, y, z float32) math.Vec3 {
	p := inv.MulVec4(math.Vec4{x, y, z, 1})
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Transform maps the ray through m. The direction is renormalized, so
// distances along the result are in the target space.
func (r Ray) Transform(m math.Mat4) Ray {
	return Ray{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformDirection(r.Direction).Normalize(),
	}
}

const epsilon = 1e-7

// IntersectTriangle returns the distance along the ray to triangle abc using
// the Möller-Trumbore test. Both faces are hit; hits behind the origin are not.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < epsilon {
		return 0, false // parallel
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box model.Bounds) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (box.Min[axis] - origin[axis]) / dir[axis]
		t2 := (box.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// MeshHit is the nearest intersection of a ray with a mesh.
type MeshHit struct {
	// Local is the hit point in the mesh's local space.
	Local math.Vec3
	// World is the hit point in world space.
	World math.Vec3
	// Distance is measured in world units from the ray origin.
	Distance float32
	Triangle int
}

// IntersectMesh casts a world-space ray against a mesh placed by the
// local-to-world transform and returns the nearest hit. The test runs in
// local space after a bounds rejection.
func IntersectMesh(r Ray, mesh *model.Mesh, localToWorld math.Mat4) (MeshHit, bool) {
	if mesh == nil || len(mesh.Indices) < 3 {
		return MeshHit{}, false
	}

	local := r.Transform(localToWorld.Inverse())

	// Slightly grown so flat meshes with zero thickness are not rejected.
	box := mesh.Bounds
	for k := 0; k < 3; k++ {
		box.Min[k] -= 1e-4
		box.Max[k] += 1e-4
	}
	if _, ok := local.IntersectAABB(box); !ok {
		return MeshHit{}, false
	}

	best := MeshHit{Triangle: -1}
	bestT := float32(math32.MaxFloat32)
	for i := 0; i < mesh.TriangleCount(); i++ {
		a, b, c := mesh.Triangle(i)
		if t, ok := local.IntersectTriangle(a, b, c); ok && t < bestT {
			bestT = t
			best.Triangle = i
		}
	}
	if best.Triangle < 0 {
		return MeshHit{}, false
	}

	best.Local = local.At(bestT)
	best.World = localToWorld.TransformPoint(best.Local)
	best.Distance = best.World.Distance(r.Origin)
	return best, true
}
