// Package scene is the in-memory host side of the face editor. It keeps one
// render proxy per face, answers projection and picking queries against the
// current camera, and records render requests for the main loop.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/boxedit/internal/box"
	"github.com/Faultbox/boxedit/internal/engine/picking"
	"github.com/Faultbox/boxedit/internal/interact"
	"github.com/Faultbox/boxedit/internal/logger"
)

// pickPadding widens proxy bounds so rays grazing an edge are not rejected
// by the coarse test.
const pickPadding = 1e-9

// View supplies the camera matrices.
type View interface {
	ViewMatrix() mgl64.Mat4
	ProjectionMatrix(aspect float64) mgl64.Mat4
}

// Proxy is the renderable state of one face.
type Proxy struct {
	Origin, Edge1, Edge2 mgl64.Vec3
	Transform            mgl64.Mat4

	// Version increments on every geometry or transform change.
	Version uint64
}

// Corners returns the four corners of the proxy in local space, in strip order.
func (p Proxy) Corners() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{p.Origin, p.Edge1, p.Edge2, p.Edge1.Add(p.Edge2).Sub(p.Origin)}
}

// World returns the corners with the transform applied.
func (p Proxy) World() [4]mgl64.Vec3 {
	c := p.Corners()
	for i := range c {
		c[i] = mgl64.TransformCoordinate(c[i], p.Transform)
	}
	return c
}

// Scene implements interact.Scene on top of a camera.
type Scene struct {
	view          View
	width, height int
	proxies       [box.NumFaces]Proxy
	dirty         bool
	log           *zap.Logger
}

// New creates a scene of the given viewport size holding faces.
func New(view View, width, height int, faces [box.NumFaces]box.Face) *Scene {
	s := &Scene{
		view:   view,
		width:  width,
		height: height,
		dirty:  true,
		log:    logger.Named("scene"),
	}
	for i, f := range faces {
		s.proxies[i] = Proxy{
			Origin:    f.Origin(),
			Edge1:     f.Edge1(),
			Edge2:     f.Edge2(),
			Transform: mgl64.Ident4(),
		}
	}
	return s
}

// Resize updates the viewport and schedules a redraw.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.dirty = true
	s.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the viewport size in pixels.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// ViewProjection returns projection * view for the current viewport.
func (s *Scene) ViewProjection() mgl64.Mat4 {
	aspect := float64(s.width) / float64(s.height)
	return s.view.ProjectionMatrix(aspect).Mul4(s.view.ViewMatrix())
}

// Project maps a pixel position and normalized depth in [0, 1] back into
// homogeneous world space. A singular camera yields w = 0.
func (s *Scene) Project(screen mgl64.Vec2, depth float64) mgl64.Vec4 {
	ndc := mgl64.Vec4{
		2*screen[0]/float64(s.width) - 1,
		1 - 2*screen[1]/float64(s.height),
		2*depth - 1,
		1,
	}
	return s.ViewProjection().Inv().Mul4x1(ndc)
}

// PickAt returns the nearest face under the pixel.
func (s *Scene) PickAt(screen mgl64.Vec2) (box.FaceID, bool) {
	ray, ok := picking.ScreenToRay(screen[0], screen[1], float64(s.width), float64(s.height), s.ViewProjection().Inv())
	if !ok {
		return 0, false
	}

	best, bestDist, found := box.FaceID(0), 0.0, false
	for i, p := range s.proxies {
		if _, hit := ray.IntersectAABB(p.bounds()); !hit {
			continue
		}
		local := ray.Transform(p.Transform.Inv())
		t, hit := local.IntersectParallelogram(p.Origin, p.Edge1, p.Edge2)
		if !hit {
			continue
		}
		d := mgl64.TransformCoordinate(local.At(t), p.Transform).Sub(ray.Origin).Len()
		if !found || d < bestDist {
			best, bestDist, found = box.FaceID(i), d, true
		}
	}
	return best, found
}

func (p Proxy) bounds() picking.AABB {
	w := p.World()
	b := picking.NewAABB(w[0], w[0])
	for _, c := range w[1:] {
		b = b.Expand(c)
	}
	pad := mgl64.Vec3{pickPadding, pickPadding, pickPadding}
	return picking.AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// BindGeometry replaces a face's corners.
func (s *Scene) BindGeometry(id box.FaceID, origin, edge1, edge2 mgl64.Vec3) {
	if !id.Valid() {
		return
	}
	p := &s.proxies[id]
	p.Origin, p.Edge1, p.Edge2 = origin, edge1, edge2
	p.Version++
}

// SetTransform replaces a face's user transform.
func (s *Scene) SetTransform(id box.FaceID, m mgl64.Mat4) {
	if !id.Valid() {
		return
	}
	p := &s.proxies[id]
	p.Transform = m
	p.Version++
}

// RequestRender marks the scene dirty. It never blocks.
func (s *Scene) RequestRender() {
	s.dirty = true
}

// TakeRenderRequest reports whether a frame is due and clears the request.
func (s *Scene) TakeRenderRequest() bool {
	due := s.dirty
	s.dirty = false
	return due
}

// Proxy returns the render proxy of one face.
func (s *Scene) Proxy(id box.FaceID) (Proxy, bool) {
	if !id.Valid() {
		return Proxy{}, false
	}
	return s.proxies[id], true
}

// Proxies returns a copy of every render proxy.
func (s *Scene) Proxies() [box.NumFaces]Proxy {
	return s.proxies
}

var _ interact.Scene = (*Scene)(nil)
