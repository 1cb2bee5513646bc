package mesh

import (
	"errors"
	"fmt"
)

// Connectivity errors. The builder skips the offending edge or triangle and
// keeps going, so a mesh is always usable after a build.
var (
	ErrNonManifoldEdge = errors.New("edge shared by more than two triangles")
	ErrInvalidTriangle = errors.New("invalid triangle")
)

// edgeSlot is the first triangle seen owning an edge.
type edgeSlot struct {
	triangle TriangleIndex
	edge     int
	paired   bool
}

// ConnectivityBuilder links triangles to their neighbors and vertices to an
// incident triangle, one triangle at a time. Loaders use it to link faces as
// they are read; UpdateMeshConnectivity runs it over a whole mesh.
//
// Each edge pairs the first two triangles that own it. A third owner is left
// without a neighbor on that edge and reported as ErrNonManifoldEdge.
type ConnectivityBuilder struct {
	mesh  *Mesh
	edges  map[EdgeKey]edgeSlot
	linked map[TriangleIndex]struct{}
	errs   []error
}

// NewConnectivityBuilder returns a builder writing into m. It does not reset
// existing connectivity.
func NewConnectivityBuilder(m *Mesh) *ConnectivityBuilder {
	return &ConnectivityBuilder{
		mesh:  m,
		edges:  make(map[EdgeKey]edgeSlot, len(m.triangles)*3/2),
		linked: make(map[TriangleIndex]struct{}),
	}
}

// Link registers triangle t. Its vertices must already be in the mesh.
//
// Link is meant for triangles not yet linked: t's own neighbors are reset
// before pairing, but links that older triangles hold towards t and vertex
// incident triangles set earlier are left alone. Use UpdateMeshConnectivity
// to rebuild a mesh that was already linked. Linking the same triangle twice
// with one builder is a no-op.
func (b *ConnectivityBuilder) Link(t TriangleIndex) {
	m := b.mesh
	tri := m.TriangleData(t)

	if _, done := b.linked[t]; done {
		return
	}
	b.linked[t] = struct{}{}
	tri.resetNeighbors()

	if !b.validTriangle(tri) {
		b.errs = append(b.errs, fmt.Errorf("%w: triangle %d has vertices %v", ErrInvalidTriangle, t, tri.Vertices))
		return
	}

	// First writer wins.
	for _, vi := range tri.Vertices {
		v := &m.vertices[vi]
		if !v.HasIncidentTriangle() {
			v.IncidentTriangle = t
		}
	}

	for i := range Current {
		key, err := NewEdgeKey(tri.EdgeVertices(i))
		if err != nil {
			b.errs = append(b.errs, fmt.Errorf("triangle %d edge %d: %w", t, i, err))
			continue
		}

		slot, seen := b.edges[key]
		switch {
		case !seen:
			b.edges[key] = edgeSlot{triangle: t, edge: i}
		case slot.paired:
			b.errs = append(b.errs, fmt.Errorf("%w: %s at triangle %d", ErrNonManifoldEdge, key, t))
		default:
			m.triangles[slot.triangle].Neighbors[slot.edge] = t
			tri.Neighbors[i] = slot.triangle
			slot.paired = true
			b.edges[key] = slot
		}
	}
}

// Err returns every problem found so far, joined, or nil.
func (b *ConnectivityBuilder) Err() error {
	return errors.Join(b.errs...)
}

func (b *ConnectivityBuilder) validTriangle(tri *Triangle) bool {
	if tri.HasUnsetVertex() || tri.HasDuplicatedVertices() {
		return false
	}
	for _, v := range tri.Vertices {
		if int(v) >= len(b.mesh.vertices) {
			return false
		}
	}
	return true
}

// UpdateMeshConnectivity rebuilds every triangle's neighbors and every
// vertex's incident triangle from the triangle vertex lists alone.
// Triangles are visited in index order, so the result is deterministic.
// A non-nil error lists skipped triangles and non-manifold edges; the
// connectivity that could be built is in place either way.
func (m *Mesh) UpdateMeshConnectivity() error {
	for i := range m.vertices {
		m.vertices[i].IncidentTriangle = NoTriangle
	}
	for i := range m.triangles {
		m.triangles[i].resetNeighbors()
	}

	b := NewConnectivityBuilder(m)
	for t := range len(m.triangles) {
		b.Link(TriangleIndex(t))
	}
	return b.Err()
}
