// Package mesh provides an indexed triangle mesh with maintained connectivity.
//
// Vertices and triangles live in dense arrays and refer to each other by index.
// Each triangle stores its three vertices in counter-clockwise order and, for
// every local vertex i, the neighbor triangle across the edge opposite to it.
// Each vertex stores one incident triangle, which is the entry point for the
// one-ring circulators.
//
// Typical use:
//
//	m := mesh.New()
//	a := m.AddVertex(mesh.NewVertex(math.Vec3{X: 0, Y: 0}))
//	b := m.AddVertex(mesh.NewVertex(math.Vec3{X: 1, Y: 0}))
//	c := m.AddVertex(mesh.NewVertex(math.Vec3{X: 0, Y: 1}))
//	m.AddTriangle(mesh.NewTriangle(a, b, c))
//	if err := m.UpdateMeshConnectivity(); err != nil {
//		// non-manifold or invalid triangles were skipped
//	}
//	for v := range m.VerticesAroundVertex(a) {
//		_ = v
//	}
//
// A Mesh is not safe for concurrent mutation. Clone returns an independent copy.
package mesh
