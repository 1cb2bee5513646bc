// Package formats reads and writes triangle meshes in the OFF and Wavefront
// OBJ text formats.
package formats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/trimesh/pkg/mesh"
)

// Format errors.
var (
	ErrInvalidOFFHeader    = errors.New("invalid OFF header: expected 'OFF'")
	ErrTruncatedOFFData    = errors.New("truncated OFF data")
	ErrInvalidOFFRecord    = errors.New("invalid OFF record")
	ErrInvalidOBJRecord    = errors.New("invalid OBJ record")
	ErrWrongExtension      = errors.New("wrong file extension")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrUnsupportedFormat   = errors.New("unsupported mesh format")
	ErrIncompleteExtraData = errors.New("extra data present on some vertices only")
)

// Format identifies a mesh file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatOFF
	FormatOBJ
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatOFF:
		return "off"
	case FormatOBJ:
		return "obj"
	default:
		return "unknown"
	}
}

// FormatOf returns the format matching the extension of path.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".off":
		return FormatOFF
	case ".obj":
		return FormatOBJ
	default:
		return FormatUnknown
	}
}

// LoadFile reads the mesh at path, choosing the parser from the extension.
//
// The returned mesh has its connectivity built. When the only problems found
// are connectivity ones (see mesh.ErrNonManifoldEdge and
// mesh.ErrInvalidTriangle), the mesh is returned together with the error.
func LoadFile(path string) (*mesh.Mesh, error) {
	switch FormatOf(path) {
	case FormatOFF:
		return ParseOFFFile(path)
	case FormatOBJ:
		return ParseOBJFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// SaveFile writes m to path, choosing the writer from the extension.
func SaveFile(m *mesh.Mesh, path string) error {
	switch FormatOf(path) {
	case FormatOFF:
		return WriteOFFFile(m, path)
	case FormatOBJ:
		return WriteOBJFile(m, path)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// checkTriangles verifies every triangle references existing vertices, so
// writers never emit a file their own parsers would reject.
func checkTriangles(m *mesh.Mesh) error {
	n := m.VertexCount()
	for t, tri := range m.Triangles() {
		for _, v := range tri.Vertices {
			if int(v) >= n {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrIndexOutOfRange, t, v, n)
			}
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
