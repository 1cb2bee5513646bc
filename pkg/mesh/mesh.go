package mesh

import "fmt"

// Mesh is an indexed triangle mesh. Vertex and triangle indices are dense and
// stable: elements are only ever appended.
type Mesh struct {
	vertices  []Vertex
	triangles []Triangle

	// Parallel to vertices / triangles when enabled.
	vertexData          []ExtraData
	triangleData        []ExtraData
	vertexDataEnabled   bool
	triangleDataEnabled bool
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Vertices returns the vertex records. The slice aliases the mesh storage;
// records may be edited in place but the slice must not be appended to.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Triangles returns the triangle records, with the same aliasing rules as Vertices.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// AddVertex appends v and returns its index.
func (m *Mesh) AddVertex(v Vertex) VertexIndex {
	idx := VertexIndex(len(m.vertices))
	m.vertices = append(m.vertices, v)
	if m.vertexDataEnabled {
		m.vertexData = append(m.vertexData, ExtraData{})
	}
	return idx
}

// AddTriangle appends t and returns its index. Connectivity is not updated.
func (m *Mesh) AddTriangle(t Triangle) TriangleIndex {
	idx := TriangleIndex(len(m.triangles))
	m.triangles = append(m.triangles, t)
	if m.triangleDataEnabled {
		m.triangleData = append(m.triangleData, ExtraData{})
	}
	return idx
}

// Vertex returns a proxy on the vertex at idx. It panics if idx is out of range.
func (m *Mesh) Vertex(idx VertexIndex) VertexProxy {
	m.checkVertex(idx)
	return VertexProxy{mesh: m, index: idx}
}

// Triangle returns a proxy on the triangle at idx. It panics if idx is out of range.
func (m *Mesh) Triangle(idx TriangleIndex) TriangleProxy {
	m.checkTriangle(idx)
	return TriangleProxy{mesh: m, index: idx}
}

// VertexData returns the record of the vertex at idx.
// It panics if idx is out of range.
func (m *Mesh) VertexData(idx VertexIndex) *Vertex {
	m.checkVertex(idx)
	return &m.vertices[idx]
}

// TriangleData returns the record of the triangle at idx.
// It panics if idx is out of range.
func (m *Mesh) TriangleData(idx TriangleIndex) *Triangle {
	m.checkTriangle(idx)
	return &m.triangles[idx]
}

// AddVerticesExtraDataContainer gives every vertex an empty extra data slot.
// Calling it again discards all vertex extra data.
func (m *Mesh) AddVerticesExtraDataContainer() {
	m.vertexData = make([]ExtraData, len(m.vertices))
	m.vertexDataEnabled = true
}

// AddTrianglesExtraDataContainer gives every triangle an empty extra data slot.
// Calling it again discards all triangle extra data.
func (m *Mesh) AddTrianglesExtraDataContainer() {
	m.triangleData = make([]ExtraData, len(m.triangles))
	m.triangleDataEnabled = true
}

// HasVerticesExtraDataContainer reports whether vertex extra data is enabled.
func (m *Mesh) HasVerticesExtraDataContainer() bool {
	return m.vertexDataEnabled
}

// HasTrianglesExtraDataContainer reports whether triangle extra data is enabled.
func (m *Mesh) HasTrianglesExtraDataContainer() bool {
	return m.triangleDataEnabled
}

// Clone returns a deep copy of m. The copy shares no storage with m, except
// for reference-typed values a caller placed in extra data.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		vertices:            append([]Vertex(nil), m.vertices...),
		triangles:           append([]Triangle(nil), m.triangles...),
		vertexDataEnabled:   m.vertexDataEnabled,
		triangleDataEnabled: m.triangleDataEnabled,
	}
	if m.vertexDataEnabled {
		c.vertexData = cloneExtraData(m.vertexData)
	}
	if m.triangleDataEnabled {
		c.triangleData = cloneExtraData(m.triangleData)
	}
	return c
}

func cloneExtraData(src []ExtraData) []ExtraData {
	dst := make([]ExtraData, len(src))
	for i := range src {
		dst[i] = src[i].clone()
	}
	return dst
}

func (m *Mesh) vertexExtraData(idx VertexIndex) *ExtraData {
	if !m.vertexDataEnabled {
		panic("mesh: vertex extra data accessed before AddVerticesExtraDataContainer")
	}
	return &m.vertexData[idx]
}

func (m *Mesh) triangleExtraData(idx TriangleIndex) *ExtraData {
	if !m.triangleDataEnabled {
		panic("mesh: triangle extra data accessed before AddTrianglesExtraDataContainer")
	}
	return &m.triangleData[idx]
}

func (m *Mesh) checkVertex(idx VertexIndex) {
	if int(idx) >= len(m.vertices) || idx == NoVertex {
		panic(fmt.Sprintf("mesh: vertex index %d out of range [0, %d)", idx, len(m.vertices)))
	}
}

func (m *Mesh) checkTriangle(idx TriangleIndex) {
	if int(idx) >= len(m.triangles) || idx == NoTriangle {
		panic(fmt.Sprintf("mesh: triangle index %d out of range [0, %d)", idx, len(m.triangles)))
	}
}
