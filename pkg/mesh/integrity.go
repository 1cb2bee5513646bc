package mesh

import (
	"errors"
	"fmt"
)

// ErrIntegrity is wrapped by every non-OK ExitCode's Err.
var ErrIntegrity = errors.New("mesh integrity violation")

// ExitCode classifies the first integrity violation found in a mesh.
type ExitCode int

const (
	MeshOK ExitCode = iota
	VertexHasNullIncidentTriangle
	InvalidIncidentTriangleIndex
	VertexNotInTriangle
	TriangleHasNullVertex
	TriangleHasDuplicatedVertices
	InvalidVertexIndex
	InvalidNeighborTriangleIndex
	TriangleIsItsOwnNeighbor
	TriangleNeighborNotReciprocal
)

// String returns the name of the exit code.
func (c ExitCode) String() string {
	switch c {
	case MeshOK:
		return "MeshOK"
	case VertexHasNullIncidentTriangle:
		return "VertexHasNullIncidentTriangle"
	case InvalidIncidentTriangleIndex:
		return "InvalidIncidentTriangleIndex"
	case VertexNotInTriangle:
		return "VertexNotInTriangle"
	case TriangleHasNullVertex:
		return "TriangleHasNullVertex"
	case TriangleHasDuplicatedVertices:
		return "TriangleHasDuplicatedVertices"
	case InvalidVertexIndex:
		return "InvalidVertexIndex"
	case InvalidNeighborTriangleIndex:
		return "InvalidNeighborTriangleIndex"
	case TriangleIsItsOwnNeighbor:
		return "TriangleIsItsOwnNeighbor"
	case TriangleNeighborNotReciprocal:
		return "TriangleNeighborNotReciprocal"
	default:
		return fmt.Sprintf("ExitCode(%d)", int(c))
	}
}

// Err returns nil for MeshOK and an error wrapping ErrIntegrity otherwise.
func (c ExitCode) Err() error {
	if c == MeshOK {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIntegrity, c)
}

// IntegrityFinding locates the violation reported by Inspect.
type IntegrityFinding struct {
	Code ExitCode

	// Exactly one of Vertex and Triangle is set for a violation.
	Vertex   VertexIndex
	Triangle TriangleIndex
}

// Err returns the finding as an error, or nil when the mesh is OK.
func (f IntegrityFinding) Err() error {
	switch {
	case f.Code == MeshOK:
		return nil
	case f.Vertex != NoVertex:
		return fmt.Errorf("vertex %d: %w", f.Vertex, f.Code.Err())
	default:
		return fmt.Errorf("triangle %d: %w", f.Triangle, f.Code.Err())
	}
}

// CheckIntegrity validates m and returns the first violation found, or
// MeshOK. Vertices are checked before triangles. m is never modified.
func CheckIntegrity(m *Mesh) ExitCode {
	return Inspect(m).Code
}

// Inspect is CheckIntegrity that also reports which element failed.
func Inspect(m *Mesh) IntegrityFinding {
	for i := range m.vertices {
		if code := checkVertexRecord(m, VertexIndex(i)); code != MeshOK {
			return IntegrityFinding{Code: code, Vertex: VertexIndex(i), Triangle: NoTriangle}
		}
	}
	for i := range m.triangles {
		if code := checkTriangleRecord(m, TriangleIndex(i)); code != MeshOK {
			return IntegrityFinding{Code: code, Vertex: NoVertex, Triangle: TriangleIndex(i)}
		}
	}
	return IntegrityFinding{Code: MeshOK, Vertex: NoVertex, Triangle: NoTriangle}
}

func checkVertexRecord(m *Mesh, v VertexIndex) ExitCode {
	inc := m.vertices[v].IncidentTriangle
	switch {
	case inc == NoTriangle:
		return VertexHasNullIncidentTriangle
	case int(inc) >= len(m.triangles):
		return InvalidIncidentTriangleIndex
	case m.triangles[inc].VertexLocalIndex(v) < 0:
		return VertexNotInTriangle
	}
	return MeshOK
}

func checkTriangleRecord(m *Mesh, t TriangleIndex) ExitCode {
	tri := &m.triangles[t]
	if tri.HasUnsetVertex() {
		return TriangleHasNullVertex
	}
	if tri.HasDuplicatedVertices() {
		return TriangleHasDuplicatedVertices
	}
	for _, v := range tri.Vertices {
		if int(v) >= len(m.vertices) {
			return InvalidVertexIndex
		}
	}

	for i, nb := range tri.Neighbors {
		if nb == NoTriangle {
			continue
		}
		if int(nb) >= len(m.triangles) {
			return InvalidNeighborTriangleIndex
		}
		if nb == t {
			return TriangleIsItsOwnNeighbor
		}
		other := &m.triangles[nb]
		j := other.EdgeIndex(tri.EdgeVertices(i))
		if j < 0 || other.Neighbors[j] != t {
			return TriangleNeighborNotReciprocal
		}
	}
	return MeshOK
}
