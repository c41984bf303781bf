// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/boxedit/internal/box"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// BBoxWireframeVertices creates line vertices for the outer walls of b.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
// padding expands the box on all sides so the lines do not z-fight with faces
// dragged flush against a wall.
func BBoxWireframeVertices(b box.Bounds, padding float64) []float32 {
	minX, minY, minZ := float32(b.Min[0]-padding), float32(b.Min[1]-padding), float32(b.Min[2]-padding)
	maxX, maxY, maxZ := float32(b.Max[0]+padding), float32(b.Max[1]+padding), float32(b.Max[2]+padding)

	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
