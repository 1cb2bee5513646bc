package mesh

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrianglesAroundVertex_ClosedRing(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	got := slices.Collect(m.TrianglesAroundVertex(4))
	require.Equal(t, []TriangleIndex{0, 3, 6, 7, 4, 1}, got)
	require.False(t, m.IsBoundaryVertex(4))
	require.Equal(t, 6, m.Valence(4))
}

func TestTrianglesAroundVertex_OpenRing(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	tests := []struct {
		vertex VertexIndex
		want   []TriangleIndex
	}{
		{0, []TriangleIndex{0, 1}},
		{2, []TriangleIndex{2}},
		{5, []TriangleIndex{2, 3, 6}},
		{3, []TriangleIndex{1, 4, 5}},
		{8, []TriangleIndex{6, 7}},
	}

	for _, tt := range tests {
		got := slices.Collect(m.TrianglesAroundVertex(tt.vertex))
		require.Equal(t, tt.want, got, "vertex %d", tt.vertex)
		require.True(t, m.IsBoundaryVertex(tt.vertex), "vertex %d", tt.vertex)
	}
}

func TestVerticesAroundVertex_ClosedRing(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	got := slices.Collect(m.VerticesAroundVertex(4))
	require.Equal(t, []VertexIndex{1, 5, 8, 7, 3, 0}, got)
}

func TestVerticesAroundVertex_OpenRing(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	tests := []struct {
		vertex VertexIndex
		want   []VertexIndex
	}{
		{0, []VertexIndex{4, 3, 1}},
		{3, []VertexIndex{4, 7, 6, 0}},
		{5, []VertexIndex{2, 1, 4, 8}},
		{6, []VertexIndex{7, 3}},
	}

	for _, tt := range tests {
		got := slices.Collect(m.VerticesAroundVertex(tt.vertex))
		require.Equal(t, tt.want, got, "vertex %d", tt.vertex)
	}
}

func TestVerticesAroundVertex_SingleTriangle(t *testing.T) {
	m := newSingleTriangle(t)

	require.Equal(t, []VertexIndex{2, 1}, slices.Collect(m.VerticesAroundVertex(0)))
	require.Equal(t, []VertexIndex{0, 2}, slices.Collect(m.VerticesAroundVertex(1)))
	require.Equal(t, []TriangleIndex{0}, slices.Collect(m.TrianglesAroundVertex(0)))
}

func TestCirculators_VisitEachNeighborOnce(t *testing.T) {
	m := newGridMesh(t, 3, 4)

	for v := range VertexIndex(m.VertexCount()) {
		tris := slices.Collect(m.TrianglesAroundVertex(v))
		want := trianglesUsing(m, v)

		sorted := slices.Clone(tris)
		slices.Sort(sorted)
		require.Equal(t, want, sorted, "vertex %d", v)

		// An open fan of n triangles has n+1 spokes, a closed one n.
		verts := slices.Collect(m.VerticesAroundVertex(v))
		spokes := len(tris)
		if m.IsBoundaryVertex(v) {
			spokes++
		}
		require.Len(t, verts, spokes, "vertex %d", v)

		unique := slices.Clone(verts)
		slices.Sort(unique)
		require.Len(t, slices.Compact(unique), len(verts), "vertex %d", v)
		require.NotContains(t, verts, v)
	}
}

func TestCirculator_SinglePass(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	c := NewTriangleCirculator(m, 0)
	var got []TriangleIndex
	for tri, ok := c.Next(); ok; tri, ok = c.Next() {
		got = append(got, tri)
	}
	require.Equal(t, []TriangleIndex{0, 1}, got)
	require.True(t, c.Open())

	_, ok := c.Next()
	require.False(t, ok)
}

func TestCirculator_SequenceIsRestartable(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	seq := m.VerticesAroundVertex(4)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, first, second)
}

func TestCirculator_EarlyBreak(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	var got []VertexIndex
	for v := range m.VerticesAroundVertex(4) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []VertexIndex{1, 5}, got)
}

func TestCirculator_CorruptedRingTerminates(t *testing.T) {
	m := newGridMesh(t, 2, 2)

	// T6 leads back to T3, so walking CCW around vertex 4 cycles
	// without ever reaching the start triangle.
	m.TriangleData(6).Neighbors[1] = 3

	n := 0
	for range m.TrianglesAroundVertex(4) {
		n++
	}
	require.LessOrEqual(t, n, 2*m.TriangleCount()+3)
}

func TestCirculator_Panics(t *testing.T) {
	m := newGridMesh(t, 1, 1)
	isolated := m.AddVertex(NewVertex(m.VertexData(0).Position))

	require.Panics(t, func() { m.VerticesAroundVertex(isolated) })
	require.Panics(t, func() { NewTriangleCirculator(m, isolated) })
	require.Panics(t, func() { m.TrianglesAroundVertex(VertexIndex(m.VertexCount())) })
	require.False(t, m.IsBoundaryVertex(isolated))
	require.Zero(t, m.Valence(isolated))

	// Incident triangle that does not contain the vertex.
	m.VertexData(1).IncidentTriangle = 1
	require.Panics(t, func() { NewVertexCirculator(m, 1) })
}
