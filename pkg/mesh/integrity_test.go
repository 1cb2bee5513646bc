package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/trimesh/pkg/math"
)

func TestCheckIntegrity(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(m *Mesh)
		want    ExitCode
	}{
		{"valid", func(*Mesh) {}, MeshOK},
		{"isolated vertex", func(m *Mesh) { m.AddVertex(NewVertex(math.Vec3{})) }, VertexHasNullIncidentTriangle},
		{"unset incident", func(m *Mesh) { m.VertexData(0).IncidentTriangle = NoTriangle }, VertexHasNullIncidentTriangle},
		{"incident out of range", func(m *Mesh) { m.VertexData(0).IncidentTriangle = 100 }, InvalidIncidentTriangleIndex},
		{"vertex not in incident", func(m *Mesh) { m.VertexData(0).IncidentTriangle = 2 }, VertexNotInTriangle},
		{"unset triangle vertex", func(m *Mesh) { m.AddTriangle(EmptyTriangle()) }, TriangleHasNullVertex},
		{"partially unset triangle", func(m *Mesh) { m.AddTriangle(NewTriangle(0, NoVertex, 1)) }, TriangleHasNullVertex},
		{"duplicated vertex", func(m *Mesh) { m.AddTriangle(NewTriangle(0, 1, 1)) }, TriangleHasDuplicatedVertices},
		{"vertex out of range", func(m *Mesh) { m.AddTriangle(NewTriangle(0, 1, 99)) }, InvalidVertexIndex},
		{"neighbor out of range", func(m *Mesh) { m.TriangleData(5).Neighbors[0] = 100 }, InvalidNeighborTriangleIndex},
		{"own neighbor", func(m *Mesh) { m.TriangleData(5).Neighbors[0] = 5 }, TriangleIsItsOwnNeighbor},
		{"neighbor without shared edge", func(m *Mesh) { m.TriangleData(5).Neighbors[0] = 0 }, TriangleNeighborNotReciprocal},
		{"one-sided link", func(m *Mesh) { m.TriangleData(4).Neighbors[2] = NoTriangle }, TriangleNeighborNotReciprocal},
		{"vertex bounds before neighbors", func(m *Mesh) {
			idx := m.AddTriangle(NewTriangle(0, 1, 99))
			m.TriangleData(idx).Neighbors[0] = 100
		}, InvalidVertexIndex},
		{"vertices checked first", func(m *Mesh) {
			m.TriangleData(0).Neighbors[0] = 0
			m.VertexData(8).IncidentTriangle = 0
		}, VertexNotInTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newGridMesh(t, 2, 2)
			tt.corrupt(m)
			before := m.Clone()

			require.Equal(t, tt.want, CheckIntegrity(m))
			require.Equal(t, before.Triangles(), m.Triangles())
			require.Equal(t, before.Vertices(), m.Vertices())
		})
	}
}

func TestCheckIntegrity_EmptyMesh(t *testing.T) {
	require.Equal(t, MeshOK, CheckIntegrity(New()))
}

func TestInspect_LocatesElement(t *testing.T) {
	m := newGridMesh(t, 2, 2)
	m.TriangleData(4).Neighbors[2] = NoTriangle

	f := Inspect(m)
	require.Equal(t, TriangleNeighborNotReciprocal, f.Code)
	require.Equal(t, TriangleIndex(1), f.Triangle)
	require.Equal(t, NoVertex, f.Vertex)
	require.ErrorIs(t, f.Err(), ErrIntegrity)
	require.EqualError(t, f.Err(), "triangle 1: mesh integrity violation: TriangleNeighborNotReciprocal")

	m = newGridMesh(t, 1, 1)
	m.VertexData(3).IncidentTriangle = NoTriangle
	f = Inspect(m)
	require.Equal(t, VertexIndex(3), f.Vertex)
	require.EqualError(t, f.Err(), "vertex 3: mesh integrity violation: VertexHasNullIncidentTriangle")

	require.NoError(t, Inspect(newGridMesh(t, 1, 1)).Err())
}

func TestExitCode_String(t *testing.T) {
	tests := []struct {
		code ExitCode
		want string
	}{
		{MeshOK, "MeshOK"},
		{VertexNotInTriangle, "VertexNotInTriangle"},
		{TriangleIsItsOwnNeighbor, "TriangleIsItsOwnNeighbor"},
		{ExitCode(42), "ExitCode(42)"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.code.String())
	}
	require.NoError(t, MeshOK.Err())
	require.ErrorIs(t, InvalidVertexIndex.Err(), ErrIntegrity)
}
