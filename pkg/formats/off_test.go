package formats

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/trimesh/pkg/math"
	"github.com/Faultbox/trimesh/pkg/mesh"
)

func TestParseOFFFile_Cube(t *testing.T) {
	m, err := ParseOFFFile(filepath.Join("testdata", "cube.off"))
	if err != nil {
		t.Fatalf("ParseOFFFile failed: %v", err)
	}

	if m.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", m.VertexCount())
	}
	if m.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", m.TriangleCount())
	}
	if code := mesh.CheckIntegrity(m); code != mesh.MeshOK {
		t.Errorf("CheckIntegrity() = %v, want MeshOK", code)
	}
	for v := range mesh.VertexIndex(m.VertexCount()) {
		if m.IsBoundaryVertex(v) {
			t.Errorf("vertex %d is on a boundary of a closed cube", v)
		}
	}
}

func TestParseOFF_HeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"counts on own line", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"},
		{"counts on header line", "OFF 3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"},
		{"comments and blank lines", "# made by hand\n\nOFF\n# counts\n3 1 0\n0 0 0 # origin\n1 0 0\n\n0 1 0\n3 0 1 2 # face\n"},
		{"face colors", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2 255 0 0\n"},
		{"crlf", "OFF\r\n3 1 0\r\n0 0 0\r\n1 0 0\r\n0 1 0\r\n3 0 1 2\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseOFF(strings.NewReader(tt.data))
			if err != nil {
				t.Fatalf("ParseOFF failed: %v", err)
			}
			if m.VertexCount() != 3 || m.TriangleCount() != 1 {
				t.Fatalf("got %d vertices, %d triangles, want 3, 1", m.VertexCount(), m.TriangleCount())
			}
			if got := m.TriangleData(0).Vertices; got != [3]mesh.VertexIndex{0, 1, 2} {
				t.Errorf("triangle = %v, want [0 1 2]", got)
			}
			if got := m.VertexData(1).Position; got != (math.Vec3{X: 1}) {
				t.Errorf("vertex 1 = %v, want (1, 0, 0)", got)
			}
		})
	}
}

func TestParseOFF_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrInvalidOFFHeader},
		{"wrong keyword", "PLY\n3 1 0\n", ErrInvalidOFFHeader},
		{"missing counts", "OFF\n", ErrTruncatedOFFData},
		{"one count", "OFF\n3\n", ErrInvalidOFFHeader},
		{"negative count", "OFF\n-3 1 0\n", ErrInvalidOFFHeader},
		{"truncated vertices", "OFF\n3 1 0\n0 0 0\n1 0 0\n", ErrTruncatedOFFData},
		{"truncated faces", "OFF\n3 2 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n", ErrTruncatedOFFData},
		{"short vertex", "OFF\n3 1 0\n0 0\n1 0 0\n0 1 0\n3 0 1 2\n", ErrInvalidOFFRecord},
		{"bad coordinate", "OFF\n3 1 0\n0 x 0\n1 0 0\n0 1 0\n3 0 1 2\n", ErrInvalidOFFRecord},
		{"two-vertex face", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n2 0 1\n", ErrInvalidOFFRecord},
		{"short face", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n4 0 1 2\n", ErrInvalidOFFRecord},
		{"index out of range", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 3\n", ErrIndexOutOfRange},
		{"negative index", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 -1 2\n", ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseOFF(strings.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseOFF error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("expected nil mesh on format error")
			}
		})
	}
}

func TestParseOFF_PolygonFan(t *testing.T) {
	data := "OFF\n4 1 0\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n4 0 1 2 3\n"

	m, err := ParseOFF(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOFF failed: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("TriangleCount() = %d, want 2", m.TriangleCount())
	}

	want := [][3]mesh.VertexIndex{{0, 1, 2}, {0, 2, 3}}
	for i, w := range want {
		if got := m.TriangleData(mesh.TriangleIndex(i)).Vertices; got != w {
			t.Errorf("triangle %d = %v, want %v", i, got, w)
		}
	}
	if nb := m.TriangleData(0).Neighbors[1]; nb != 1 {
		t.Errorf("fan triangles not linked: neighbor = %d, want 1", nb)
	}
	if code := mesh.CheckIntegrity(m); code != mesh.MeshOK {
		t.Errorf("CheckIntegrity() = %v, want MeshOK", code)
	}
}

func TestParseOFF_ConnectivityProblemsKeepMesh(t *testing.T) {
	data := "OFF\n3 2 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n3 0 0 1\n"

	m, err := ParseOFF(strings.NewReader(data))
	if !errors.Is(err, mesh.ErrInvalidTriangle) {
		t.Fatalf("ParseOFF error = %v, want mesh.ErrInvalidTriangle", err)
	}
	if m == nil || m.TriangleCount() != 2 {
		t.Fatal("expected the mesh to be returned with its triangles")
	}
}

func TestWriteOFF(t *testing.T) {
	m := mesh.New()
	m.AddVertex(mesh.NewVertex(math.Vec3{}))
	m.AddVertex(mesh.NewVertex(math.Vec3{X: 1.5}))
	m.AddVertex(mesh.NewVertex(math.Vec3{Y: -2, Z: 1e-7}))
	m.AddTriangle(mesh.NewTriangle(0, 1, 2))

	var buf bytes.Buffer
	if err := WriteOFF(&buf, m); err != nil {
		t.Fatalf("WriteOFF failed: %v", err)
	}

	want := "OFF\n3 1 0\n0 0 0\n1.5 0 0\n0 -2 1e-07\n3 0 1 2\n"
	if buf.String() != want {
		t.Errorf("WriteOFF =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteOFF_InvalidTriangle(t *testing.T) {
	m := mesh.New()
	m.AddVertex(mesh.NewVertex(math.Vec3{}))
	m.AddTriangle(mesh.NewTriangle(0, 1, 2))

	if err := WriteOFF(&bytes.Buffer{}, m); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("WriteOFF error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestOFF_RoundTrip(t *testing.T) {
	src, err := ParseOFFFile(filepath.Join("testdata", "cube.off"))
	if err != nil {
		t.Fatalf("ParseOFFFile failed: %v", err)
	}
	src.VertexData(6).Position = math.Vec3{X: 0.1, Y: 1.0 / 3, Z: 1e300}

	path := filepath.Join(t.TempDir(), "cube.off")
	if err := WriteOFFFile(src, path); err != nil {
		t.Fatalf("WriteOFFFile failed: %v", err)
	}
	got, err := ParseOFFFile(path)
	if err != nil {
		t.Fatalf("ParseOFFFile failed: %v", err)
	}

	requireSameGeometry(t, src, got)
}

// requireSameGeometry compares positions exactly and triangle vertex triples.
func requireSameGeometry(t *testing.T, want, got *mesh.Mesh) {
	t.Helper()

	if got.VertexCount() != want.VertexCount() || got.TriangleCount() != want.TriangleCount() {
		t.Fatalf("got %d vertices, %d triangles, want %d, %d",
			got.VertexCount(), got.TriangleCount(), want.VertexCount(), want.TriangleCount())
	}
	for i, v := range want.Vertices() {
		if p := got.Vertices()[i].Position; p != v.Position {
			t.Errorf("vertex %d = %v, want %v", i, p, v.Position)
		}
	}
	for i, tri := range want.Triangles() {
		if vs := got.Triangles()[i].Vertices; vs != tri.Vertices {
			t.Errorf("triangle %d = %v, want %v", i, vs, tri.Vertices)
		}
	}
}
