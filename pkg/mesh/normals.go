package mesh

import "github.com/Faultbox/trimesh/pkg/math"

// ComputeTriangleNormals stores a TriangleNormal on every triangle: the cross
// product (B-A)×(C-A), unit length when normalize is set. The triangle extra
// data container is enabled if needed; other kinds already stored on the
// triangles are kept. Degenerate triangles get a zero normal.
func (m *Mesh) ComputeTriangleNormals(normalize bool) {
	if !m.HasTrianglesExtraDataContainer() {
		m.AddTrianglesExtraDataContainer()
	}
	for t := range m.triangles {
		n := m.faceNormal(TriangleIndex(t))
		if normalize {
			n = n.Normalize()
		}
		SetExtraData(m.Triangle(TriangleIndex(t)), TriangleNormal{n})
	}
}

// ComputeSmoothVertexNormals stores a VertexNormal on every vertex: the sum of
// the unit normals of its triangles, each weighted by the triangle's corner
// angle at that vertex, unit length when normalize is set. Existing
// TriangleNormal data is used when present. Vertices without triangles get a
// zero normal. The vertex and triangle extra data containers are enabled if
// needed; other kinds already stored are kept.
func (m *Mesh) ComputeSmoothVertexNormals(normalize bool) {
	if !m.HasVerticesExtraDataContainer() {
		m.AddVerticesExtraDataContainer()
	}
	if !m.HasTrianglesExtraDataContainer() {
		m.AddTrianglesExtraDataContainer()
	}

	for t, tri := range m.triangles {
		if !m.validForNormals(&tri) {
			continue
		}
		n := m.unitTriangleNormal(TriangleIndex(t))
		p := m.Triangle(TriangleIndex(t)).Positions()
		for i := range Current {
			a := p[i]
			angle := p[Next[i]].Sub(a).Angle(p[Previous[i]].Sub(a))
			acc := GetOrCreateExtraData[weightedNormals](m.Vertex(tri.Vertices[i]))
			acc.normals = append(acc.normals, n.Scale(angle))
		}
	}

	for v := range m.vertices {
		proxy := m.Vertex(VertexIndex(v))
		var sum math.Vec3
		if acc := GetExtraData[weightedNormals](proxy); acc != nil {
			for _, n := range acc.normals {
				sum = sum.Add(n)
			}
			EraseExtraData[weightedNormals](proxy)
		}
		if normalize {
			sum = sum.Normalize()
		}
		SetExtraData(proxy, VertexNormal{sum})
	}
}

// unitTriangleNormal prefers a stored TriangleNormal over recomputing it.
func (m *Mesh) unitTriangleNormal(t TriangleIndex) math.Vec3 {
	if m.triangleDataEnabled {
		if n := GetExtraData[TriangleNormal](m.Triangle(t)); n != nil {
			return n.Normalize()
		}
	}
	return m.faceNormal(t).Normalize()
}

func (m *Mesh) faceNormal(t TriangleIndex) math.Vec3 {
	tri := &m.triangles[t]
	if !m.validForNormals(tri) {
		return math.Vec3{}
	}
	p := m.Triangle(t).Positions()
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
}

func (m *Mesh) validForNormals(tri *Triangle) bool {
	for _, v := range tri.Vertices {
		if int(v) >= len(m.vertices) {
			return false
		}
	}
	return true
}
