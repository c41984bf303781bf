// Package picking provides ray casting and face picking utilities.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj mgl64.Mat4) (Ray, bool) {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	nearWorld := invViewProj.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})
	if nearWorld[3] == 0 || farWorld[3] == 0 {
		return Ray{}, false
	}

	origin := nearWorld.Vec3().Mul(1 / nearWorld[3])
	dir := farWorld.Vec3().Mul(1 / farWorld[3]).Sub(origin)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: origin, Direction: dir.Normalize()}, true
}

// Transform maps the ray through an affine matrix. The direction is
// renormalized, so distances along the result are in the target space.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	origin := mgl64.TransformCoordinate(r.Origin, m)
	dir := mgl64.TransformNormal(r.Direction, m)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: origin, Direction: dir}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for a := 0; a < 3; a++ {
		if r.Direction[a] == 0 {
			if r.Origin[a] < box.Min[a] || r.Origin[a] > box.Max[a] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[a] - r.Origin[a]) / r.Direction[a]
		t2 := (box.Max[a] - r.Origin[a]) / r.Direction[a]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectParallelogram intersects the ray with the parallelogram spanned by
// origin, edge1 and edge2, where edge1 and edge2 are corner points rather
// than direction vectors. The fourth corner is edge1 + edge2 - origin.
// Returns the distance along the ray.
func (r Ray) IntersectParallelogram(origin, edge1, edge2 mgl64.Vec3) (t float64, hit bool) {
	u := edge1.Sub(origin)
	v := edge2.Sub(origin)

	// Möller-Trumbore over the unit square instead of the unit triangle.
	p := r.Direction.Cross(v)
	det := u.Dot(p)
	if math.Abs(det) < 1e-12 {
		return 0, false // Ray parallel to the face
	}
	inv := 1 / det

	s := r.Origin.Sub(origin)
	a := s.Dot(p) * inv
	if a < 0 || a > 1 {
		return 0, false
	}
	q := s.Cross(u)
	b := r.Direction.Dot(q) * inv
	if b < 0 || b > 1 {
		return 0, false
	}

	t = v.Dot(q) * inv
	if t < 0 {
		return 0, false // Behind ray origin
	}
	return t, true
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b mgl64.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Expand grows the box to contain p.
func (b AABB) Expand(p mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}
