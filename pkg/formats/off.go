package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Faultbox/trimesh/pkg/math"
	"github.com/Faultbox/trimesh/pkg/mesh"
)

// ParseOFF reads a mesh in Object File Format.
//
// The header keyword OFF is followed by the vertex, face and edge counts (the
// edge count is ignored), then one position per line and one face per line as
// "n v0 v1 ... vn-1" with 0-based indices. Polygons are split into triangle
// fans. Faces are linked to their neighbors as they are read.
//
// Format errors return a nil mesh. Connectivity problems (mesh.ErrInvalidTriangle,
// mesh.ErrNonManifoldEdge) return the mesh together with the error.
func ParseOFF(r io.Reader) (*mesh.Mesh, error) {
	s := newLineScanner(r)

	fields, ok := s.next()
	if !ok {
		if err := s.err(); err != nil {
			return nil, fmt.Errorf("reading OFF header: %w", err)
		}
		return nil, ErrInvalidOFFHeader
	}
	if fields[0] != "OFF" {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidOFFHeader, fields[0])
	}

	// Counts may share the header line.
	counts := fields[1:]
	if len(counts) == 0 {
		if counts, ok = s.next(); !ok {
			return nil, fmt.Errorf("%w: missing element counts", ErrTruncatedOFFData)
		}
	}
	if len(counts) < 2 {
		return nil, fmt.Errorf("%w: expected vertex and face counts, got %v", ErrInvalidOFFHeader, counts)
	}
	nVertices, err1 := strconv.ParseUint(counts[0], 10, 32)
	nFaces, err2 := strconv.ParseUint(counts[1], 10, 32)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%w: bad element counts %v", ErrInvalidOFFHeader, counts[:2])
	}

	m := mesh.New()
	for i := range nVertices {
		fields, ok := s.next()
		if !ok {
			return nil, s.truncated("vertices", i, nVertices)
		}
		if len(fields) < 3 {
			return nil, s.recordErr(ErrInvalidOFFRecord, "vertex needs 3 coordinates, got %d", len(fields))
		}
		xyz, err := parseFloats(fields[:3])
		if err != nil {
			return nil, s.recordErr(ErrInvalidOFFRecord, "%v", err)
		}
		m.AddVertex(mesh.NewVertex(math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}))
	}

	b := mesh.NewConnectivityBuilder(m)
	for i := range nFaces {
		fields, ok := s.next()
		if !ok {
			return nil, s.truncated("faces", i, nFaces)
		}
		poly, err := s.offFace(fields, int(nVertices))
		if err != nil {
			return nil, err
		}
		for _, tri := range fan(poly) {
			b.Link(m.AddTriangle(mesh.NewTriangle(tri[0], tri[1], tri[2])))
		}
	}
	if err := s.err(); err != nil {
		return nil, fmt.Errorf("reading OFF data: %w", err)
	}

	return m, b.Err()
}

// offFace parses "n v0 ... vn-1", ignoring trailing color values.
func (s *lineScanner) offFace(fields []string, nVertices int) ([]mesh.VertexIndex, error) {
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 3 {
		return nil, s.recordErr(ErrInvalidOFFRecord, "face needs at least 3 vertices, got %q", fields[0])
	}
	if len(fields) < n+1 {
		return nil, s.recordErr(ErrInvalidOFFRecord, "face declares %d vertices, lists %d", n, len(fields)-1)
	}

	poly := make([]mesh.VertexIndex, n)
	for i, f := range fields[1 : n+1] {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, s.recordErr(ErrInvalidOFFRecord, "%v", err)
		}
		if idx < 0 || idx >= nVertices {
			return nil, fmt.Errorf("line %d: %w: vertex %d of %d", s.line, ErrIndexOutOfRange, idx, nVertices)
		}
		poly[i] = mesh.VertexIndex(idx)
	}
	return poly, nil
}

func (s *lineScanner) truncated(what string, got, want uint64) error {
	if err := s.err(); err != nil {
		return fmt.Errorf("reading OFF data: %w", err)
	}
	return fmt.Errorf("%w: got %d of %d %s", ErrTruncatedOFFData, got, want, what)
}

// ParseOFFFile reads an OFF mesh from disk.
func ParseOFFFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading OFF file: %w", err)
	}
	defer f.Close()

	return ParseOFF(f)
}

// WriteOFF writes m in Object File Format with 0-based indices.
func WriteOFF(w io.Writer, m *mesh.Mesh) error {
	if err := checkTriangles(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d 0\n", m.VertexCount(), m.TriangleCount())
	for _, v := range m.Vertices() {
		p := v.Position
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for _, t := range m.Triangles() {
		fmt.Fprintf(bw, "3 %d %d %d\n", t.Vertices[0], t.Vertices[1], t.Vertices[2])
	}
	return bw.Flush()
}

// WriteOFFFile writes m to path in Object File Format.
func WriteOFFFile(m *mesh.Mesh, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteOFF(w, m) })
}
