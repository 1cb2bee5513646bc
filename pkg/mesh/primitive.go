package mesh

import (
	gomath "math"

	"github.com/Faultbox/trimesh/pkg/math"
)

// VertexIndex is the position of a vertex in the mesh vertex array.
type VertexIndex uint32

// TriangleIndex is the position of a triangle in the mesh triangle array.
type TriangleIndex uint32

// Sentinels for unset indices.
const (
	NoVertex   VertexIndex   = gomath.MaxUint32
	NoTriangle TriangleIndex = gomath.MaxUint32
)

// Local index tables for a triangle corner i.
var (
	Previous = [3]int{2, 0, 1}
	Current  = [3]int{0, 1, 2}
	Next     = [3]int{1, 2, 0}
)

// Vertex is one point of the surface.
type Vertex struct {
	Position math.Vec3

	// IncidentTriangle is one triangle containing this vertex, or NoTriangle.
	IncidentTriangle TriangleIndex
}

// NewVertex returns a vertex at pos with no incident triangle.
func NewVertex(pos math.Vec3) Vertex {
	return Vertex{Position: pos, IncidentTriangle: NoTriangle}
}

// HasIncidentTriangle reports whether the incident triangle is set.
func (v *Vertex) HasIncidentTriangle() bool {
	return v.IncidentTriangle != NoTriangle
}

// Triangle is one face of the surface.
type Triangle struct {
	// Vertices in counter-clockwise order.
	Vertices [3]VertexIndex

	// Neighbors[i] shares the edge opposite to Vertices[i], or is NoTriangle
	// on a boundary edge.
	Neighbors [3]TriangleIndex
}

// NewTriangle returns a triangle over a, b, c with no neighbors.
func NewTriangle(a, b, c VertexIndex) Triangle {
	return Triangle{
		Vertices:  [3]VertexIndex{a, b, c},
		Neighbors: [3]TriangleIndex{NoTriangle, NoTriangle, NoTriangle},
	}
}

// EmptyTriangle returns a triangle with every slot unset.
func EmptyTriangle() Triangle {
	return Triangle{
		Vertices:  [3]VertexIndex{NoVertex, NoVertex, NoVertex},
		Neighbors: [3]TriangleIndex{NoTriangle, NoTriangle, NoTriangle},
	}
}

// EdgeVertices returns the endpoints of the edge opposite to local vertex i.
func (t *Triangle) EdgeVertices(i int) (VertexIndex, VertexIndex) {
	return t.Vertices[Next[i]], t.Vertices[Previous[i]]
}

// VertexLocalIndex returns the local index (0, 1 or 2) of v in t, or -1.
func (t *Triangle) VertexLocalIndex(v VertexIndex) int {
	for i, tv := range t.Vertices {
		if tv == v {
			return i
		}
	}
	return -1
}

// EdgeIndex returns the local edge index of the edge joining a and b, or -1
// if t does not contain that edge. The order of a and b does not matter.
func (t *Triangle) EdgeIndex(a, b VertexIndex) int {
	for i := range Current {
		v0, v1 := t.EdgeVertices(i)
		if (v0 == a && v1 == b) || (v0 == b && v1 == a) {
			return i
		}
	}
	return -1
}

// HasUnsetVertex reports whether any vertex slot is NoVertex.
func (t *Triangle) HasUnsetVertex() bool {
	return t.Vertices[0] == NoVertex || t.Vertices[1] == NoVertex || t.Vertices[2] == NoVertex
}

// HasDuplicatedVertices reports whether two slots hold the same vertex.
func (t *Triangle) HasDuplicatedVertices() bool {
	v := t.Vertices
	return v[0] == v[1] || v[1] == v[2] || v[2] == v[0]
}

func (t *Triangle) resetNeighbors() {
	t.Neighbors = [3]TriangleIndex{NoTriangle, NoTriangle, NoTriangle}
}
