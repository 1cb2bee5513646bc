package mesh

import "github.com/Faultbox/trimesh/pkg/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners, ordering each axis.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// Center returns the middle of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the diagonal, the radius of the enclosing sphere.
func (b AABB) Radius() float64 {
	return b.Size().Length() / 2
}

// Extend returns the smallest box containing b and p.
func (b AABB) Extend(p math.Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Bounds returns the box enclosing every vertex position.
// ok is false for a mesh without vertices.
func (m *Mesh) Bounds() (box AABB, ok bool) {
	if len(m.vertices) == 0 {
		return AABB{}, false
	}
	p := m.vertices[0].Position
	box = AABB{Min: p, Max: p}
	for i := 1; i < len(m.vertices); i++ {
		box = box.Extend(m.vertices[i].Position)
	}
	return box, true
}
