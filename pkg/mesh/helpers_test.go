package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/trimesh/pkg/math"
)

// newGridMesh builds a flat rows×cols grid in the XY plane with connectivity.
// Vertices are row-major with x = column and y = row; every cell is split
// along its diagonal into two counter-clockwise triangles.
func newGridMesh(t *testing.T, rows, cols int) *Mesh {
	t.Helper()

	m := buildGrid(rows, cols)
	require.NoError(t, m.UpdateMeshConnectivity())
	return m
}

func buildGrid(rows, cols int) *Mesh {
	m := New()
	for row := 0; row <= rows; row++ {
		for col := 0; col <= cols; col++ {
			m.AddVertex(NewVertex(math.Vec3{X: float64(col), Y: float64(row)}))
		}
	}

	nc := cols + 1
	idx := func(row, col int) VertexIndex { return VertexIndex(row*nc + col) }
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			m.AddTriangle(NewTriangle(idx(row-1, col-1), idx(row-1, col), idx(row, col)))
			m.AddTriangle(NewTriangle(idx(row-1, col-1), idx(row, col), idx(row, col-1)))
		}
	}
	return m
}

// newSingleTriangle returns the triangle {0, 1, 2} with connectivity.
func newSingleTriangle(t *testing.T) *Mesh {
	t.Helper()

	m := New()
	m.AddVertex(NewVertex(math.Vec3{}))
	m.AddVertex(NewVertex(math.Vec3{X: 1}))
	m.AddVertex(NewVertex(math.Vec3{Y: 1}))
	m.AddTriangle(NewTriangle(0, 1, 2))
	require.NoError(t, m.UpdateMeshConnectivity())
	return m
}

// trianglesUsing returns every triangle listing v, in index order.
func trianglesUsing(m *Mesh, v VertexIndex) []TriangleIndex {
	var out []TriangleIndex
	for i, tri := range m.Triangles() {
		if tri.VertexLocalIndex(v) >= 0 {
			out = append(out, TriangleIndex(i))
		}
	}
	return out
}
