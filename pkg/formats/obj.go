package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/trimesh/pkg/math"
	"github.com/Faultbox/trimesh/pkg/mesh"
)

// objData is what a Wavefront OBJ file declares before it becomes a mesh.
type objData struct {
	positions []math.Vec3
	texCoords []math.Vec2
	normals   []math.Vec3
	triangles [][3]mesh.VertexIndex
}

// ParseOBJ reads a Wavefront OBJ mesh.
//
// Texture coordinates (vt) and normals (vn) are paired with vertices in
// declaration order and stored as mesh.TexCoord and mesh.VertexNormal. Face
// records use 1-based or negative (relative) position indices; texture and
// normal sub-indices are ignored. Polygons are split into triangle fans.
// Other records (groups, objects, materials, smoothing groups, lines) are
// ignored.
//
// Format errors return a nil mesh. Connectivity problems (mesh.ErrInvalidTriangle,
// mesh.ErrNonManifoldEdge) return the mesh together with the error.
func ParseOBJ(r io.Reader) (*mesh.Mesh, error) {
	s := newLineScanner(r)

	var d objData
	for {
		fields, ok := s.next()
		if !ok {
			break
		}
		if err := s.objRecord(&d, fields); err != nil {
			return nil, err
		}
	}
	if err := s.err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	return d.build()
}

func (s *lineScanner) objRecord(d *objData, fields []string) error {
	args := fields[1:]
	switch fields[0] {
	case "v":
		xyz, err := s.objFloats(args, 3, 3)
		if err != nil {
			return err
		}
		d.positions = append(d.positions, math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	case "vt":
		uv, err := s.objFloats(args, 1, 2)
		if err != nil {
			return err
		}
		d.texCoords = append(d.texCoords, math.Vec2{X: uv[0], Y: uv[1]})
	case "vn":
		xyz, err := s.objFloats(args, 3, 3)
		if err != nil {
			return err
		}
		d.normals = append(d.normals, math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	case "f":
		if len(args) < 3 {
			return s.recordErr(ErrInvalidOBJRecord, "face needs at least 3 vertices, got %d", len(args))
		}
		poly := make([]mesh.VertexIndex, len(args))
		for i, ref := range args {
			idx, err := s.objVertexRef(ref, len(d.positions))
			if err != nil {
				return err
			}
			poly[i] = idx
		}
		d.triangles = append(d.triangles, fan(poly)...)
	}
	return nil
}

// objFloats parses between required and want leading values; missing
// optional values are zero and extra values (w components, colors) are ignored.
func (s *lineScanner) objFloats(args []string, required, want int) ([]float64, error) {
	if len(args) < required {
		return nil, s.recordErr(ErrInvalidOBJRecord, "expected %d values, got %d", required, len(args))
	}
	vals, err := parseFloats(args[:min(len(args), want)])
	if err != nil {
		return nil, s.recordErr(ErrInvalidOBJRecord, "%v", err)
	}
	for len(vals) < want {
		vals = append(vals, 0)
	}
	return vals, nil
}

// objVertexRef resolves the position part of "v", "v/t", "v//n" or "v/t/n"
// against the n positions declared so far.
func (s *lineScanner) objVertexRef(ref string, n int) (mesh.VertexIndex, error) {
	pos, _, _ := strings.Cut(ref, "/")
	idx, err := strconv.Atoi(pos)
	if err != nil || idx == 0 {
		return 0, s.recordErr(ErrInvalidOBJRecord, "bad vertex reference %q", ref)
	}
	if idx < 0 {
		idx += n
	} else {
		idx--
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("line %d: %w: vertex reference %q with %d vertices", s.line, ErrIndexOutOfRange, ref, n)
	}
	return mesh.VertexIndex(idx), nil
}

func (d *objData) build() (*mesh.Mesh, error) {
	n := len(d.positions)
	if len(d.texCoords) > n {
		return nil, fmt.Errorf("%w: %d texture coordinates for %d vertices", ErrIndexOutOfRange, len(d.texCoords), n)
	}
	if len(d.normals) > n {
		return nil, fmt.Errorf("%w: %d normals for %d vertices", ErrIndexOutOfRange, len(d.normals), n)
	}

	m := mesh.New()
	for _, p := range d.positions {
		m.AddVertex(mesh.NewVertex(p))
	}
	if len(d.texCoords) > 0 || len(d.normals) > 0 {
		m.AddVerticesExtraDataContainer()
	}
	for i, tc := range d.texCoords {
		mesh.SetExtraData(m.Vertex(mesh.VertexIndex(i)), mesh.TexCoord{Vec2: tc})
	}
	for i, nrm := range d.normals {
		mesh.SetExtraData(m.Vertex(mesh.VertexIndex(i)), mesh.VertexNormal{Vec3: nrm})
	}
	for _, t := range d.triangles {
		m.AddTriangle(mesh.NewTriangle(t[0], t[1], t[2]))
	}

	return m, m.UpdateMeshConnectivity()
}

// ParseOBJFile reads a Wavefront OBJ mesh from disk. The file name must end
// in .obj.
func ParseOBJFile(path string) (*mesh.Mesh, error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".obj") {
		return nil, fmt.Errorf("%w: %q is not .obj", ErrWrongExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f)
}

// WriteOBJ writes m as Wavefront OBJ with 1-based indices. Texture
// coordinates and normals are written when every vertex carries one.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	if err := checkTriangles(m); err != nil {
		return err
	}
	hasTex, err := everyVertexHas[mesh.TexCoord](m)
	if err != nil {
		return err
	}
	hasNorm, err := everyVertexHas[mesh.VertexNormal](m)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices() {
		p := v.Position
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	if hasTex {
		for i := range mesh.VertexIndex(m.VertexCount()) {
			tc := mesh.GetExtraData[mesh.TexCoord](m.Vertex(i))
			fmt.Fprintf(bw, "vt %s %s\n", formatFloat(tc.X), formatFloat(tc.Y))
		}
	}
	if hasNorm {
		for i := range mesh.VertexIndex(m.VertexCount()) {
			n := mesh.GetExtraData[mesh.VertexNormal](m.Vertex(i))
			fmt.Fprintf(bw, "vn %s %s %s\n", formatFloat(n.X), formatFloat(n.Y), formatFloat(n.Z))
		}
	}
	for _, t := range m.Triangles() {
		fmt.Fprintf(bw, "f %s %s %s\n",
			objRef(t.Vertices[0], hasTex, hasNorm),
			objRef(t.Vertices[1], hasTex, hasNorm),
			objRef(t.Vertices[2], hasTex, hasNorm))
	}
	return bw.Flush()
}

// WriteOBJFile writes m to path as Wavefront OBJ.
func WriteOBJFile(m *mesh.Mesh, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteOBJ(w, m) })
}

func objRef(v mesh.VertexIndex, tex, norm bool) string {
	s := strconv.FormatUint(uint64(v)+1, 10)
	switch {
	case tex && norm:
		return s + "/" + s + "/" + s
	case tex:
		return s + "/" + s
	case norm:
		return s + "//" + s
	default:
		return s
	}
}

// everyVertexHas reports whether every vertex of m carries kind T. A kind
// present on some vertices only is ErrIncompleteExtraData.
func everyVertexHas[T any](m *mesh.Mesh) (bool, error) {
	if !m.HasVerticesExtraDataContainer() || m.VertexCount() == 0 {
		return false, nil
	}
	n := 0
	for i := range mesh.VertexIndex(m.VertexCount()) {
		if mesh.HasExtraData[T](m.Vertex(i)) {
			n++
		}
	}
	switch n {
	case 0:
		return false, nil
	case m.VertexCount():
		return true, nil
	default:
		var kind T
		return false, fmt.Errorf("%w: %T on %d of %d vertices", ErrIncompleteExtraData, kind, n, m.VertexCount())
	}
}
