package mesh

import "github.com/Faultbox/trimesh/pkg/math"

// TexCoord is a per-vertex texture coordinate.
type TexCoord struct {
	math.Vec2
}

// VertexNormal is a per-vertex normal, either loaded from a file or computed
// by ComputeSmoothVertexNormals.
type VertexNormal struct {
	math.Vec3
}

// TriangleNormal is a per-triangle normal computed by ComputeTriangleNormals.
type TriangleNormal struct {
	math.Vec3
}

// weightedNormals accumulates angle-weighted triangle normals at a vertex
// while smooth normals are computed. It never outlives that computation.
type weightedNormals struct {
	normals []math.Vec3
}
