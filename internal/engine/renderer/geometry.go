package renderer

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boxedit/internal/box"
	"github.com/Faultbox/boxedit/internal/scene"
)

// outlineIndices walks a strip-ordered quad around its edge.
var outlineIndices = [4]uint32{0, 1, 3, 2}

// axisColors tints faces by the axis they slide along.
var axisColors = [3]mgl32.Vec3{
	box.AxisX: {0.90, 0.30, 0.30},
	box.AxisY: {0.30, 0.85, 0.35},
	box.AxisZ: {0.30, 0.50, 0.95},
}

// FaceColor returns the fill color of a face.
func FaceColor(id box.FaceID, opacity float32, selected bool) mgl32.Vec4 {
	slot, ok := box.SlotOf(id)
	if !ok {
		return mgl32.Vec4{1, 1, 1, opacity}
	}
	c := axisColors[slot.Axis]
	if slot.Extremum == box.Far {
		c = c.Mul(0.75)
	}
	if selected {
		c = c.Add(mgl32.Vec3{0.25, 0.25, 0.25})
		opacity = mgl32.Clamp(opacity*1.5, 0, 1)
	}
	return c.Vec4(opacity)
}

func edgeColor(id box.FaceID, selected bool) mgl32.Vec4 {
	if selected {
		return mgl32.Vec4{1, 1, 0.6, 1}
	}
	return FaceColor(id, 1, false)
}

// packVertices lays out four strip-ordered corners per face, in face order.
func packVertices(proxies [box.NumFaces]scene.Proxy) []float32 {
	out := make([]float32, 0, box.NumFaces*faceFloats)
	for _, p := range proxies {
		for _, c := range p.Corners() {
			out = append(out, float32(c[0]), float32(c[1]), float32(c[2]))
		}
	}
	return out
}

func toMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// drawOrder sorts faces farthest first by the clip-space w of their center.
func drawOrder(proxies [box.NumFaces]scene.Proxy, viewProj mgl64.Mat4) [box.NumFaces]box.FaceID {
	var depth [box.NumFaces]float64
	var order [box.NumFaces]box.FaceID
	for i, p := range proxies {
		c := p.Corners()
		center := c[1].Add(c[2]).Mul(0.5)
		world := mgl64.TransformCoordinate(center, p.Transform)
		depth[i] = viewProj.Mul4x1(world.Vec4(1))[3]
		order[i] = box.FaceID(i)
	}
	sort.SliceStable(order[:], func(a, b int) bool {
		return depth[order[a]] > depth[order[b]]
	})
	return order
}
