package mesh

import (
	"fmt"

	"github.com/Faultbox/trimesh/pkg/math"
)

// VertexProxy is a lightweight view on one vertex of a mesh.
// It is only valid while the mesh is alive.
type VertexProxy struct {
	mesh  *Mesh
	index VertexIndex
}

// Index returns the vertex index.
func (p VertexProxy) Index() VertexIndex {
	return p.index
}

// Data returns the vertex record.
func (p VertexProxy) Data() *Vertex {
	return &p.mesh.vertices[p.index]
}

// Position returns the vertex position.
func (p VertexProxy) Position() math.Vec3 {
	return p.Data().Position
}

// SetPosition moves the vertex.
func (p VertexProxy) SetPosition(pos math.Vec3) {
	p.Data().Position = pos
}

// IncidentTriangle returns one triangle containing the vertex, or NoTriangle.
func (p VertexProxy) IncidentTriangle() TriangleIndex {
	return p.Data().IncidentTriangle
}

// ExtraData returns the vertex extra data slot.
// It panics if vertex extra data is not enabled on the mesh.
func (p VertexProxy) ExtraData() *ExtraData {
	return p.mesh.vertexExtraData(p.index)
}

// String implements fmt.Stringer.
func (p VertexProxy) String() string {
	return fmt.Sprintf("vertex %d", p.index)
}

// TriangleProxy is a lightweight view on one triangle of a mesh.
// It is only valid while the mesh is alive.
type TriangleProxy struct {
	mesh  *Mesh
	index TriangleIndex
}

// Index returns the triangle index.
func (p TriangleProxy) Index() TriangleIndex {
	return p.index
}

// Data returns the triangle record.
func (p TriangleProxy) Data() *Triangle {
	return &p.mesh.triangles[p.index]
}

// Vertex returns the global index of local vertex i (0, 1 or 2).
func (p TriangleProxy) Vertex(i int) VertexIndex {
	checkLocal(i)
	return p.Data().Vertices[i]
}

// Vertices returns the three vertex indices.
func (p TriangleProxy) Vertices() [3]VertexIndex {
	return p.Data().Vertices
}

// Neighbor returns the triangle across the edge opposite local vertex i.
func (p TriangleProxy) Neighbor(i int) TriangleIndex {
	checkLocal(i)
	return p.Data().Neighbors[i]
}

// Neighbors returns the three neighbor indices.
func (p TriangleProxy) Neighbors() [3]TriangleIndex {
	return p.Data().Neighbors
}

// Positions returns the positions of the three vertices.
func (p TriangleProxy) Positions() [3]math.Vec3 {
	v := p.Data().Vertices
	return [3]math.Vec3{
		p.mesh.VertexData(v[0]).Position,
		p.mesh.VertexData(v[1]).Position,
		p.mesh.VertexData(v[2]).Position,
	}
}

// ExtraData returns the triangle extra data slot.
// It panics if triangle extra data is not enabled on the mesh.
func (p TriangleProxy) ExtraData() *ExtraData {
	return p.mesh.triangleExtraData(p.index)
}

// String implements fmt.Stringer.
func (p TriangleProxy) String() string {
	return fmt.Sprintf("triangle %d", p.index)
}

func checkLocal(i int) {
	if i < 0 || i > 2 {
		panic(fmt.Sprintf("mesh: local index %d out of range [0, 3)", i))
	}
}
