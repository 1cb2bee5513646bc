package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/trimesh/internal/logger"
	"github.com/Faultbox/trimesh/internal/preview"
	"github.com/Faultbox/trimesh/pkg/formats"
	"github.com/Faultbox/trimesh/pkg/math"
	"github.com/Faultbox/trimesh/pkg/mesh"
)

// loadMesh reads path. Connectivity problems are logged and the mesh is kept.
func loadMesh(path string) (*mesh.Mesh, error) {
	m, err := formats.LoadFile(path)
	if m == nil {
		return nil, err
	}
	if err != nil {
		logger.Warn("connectivity problems", zap.String("path", path), zap.Error(err))
	}
	logger.Debug("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()))
	return m, nil
}

func (a *app) cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: meshtool info <mesh>", errUsage)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	boundary, isolated := 0, 0
	for v := range mesh.VertexIndex(m.VertexCount()) {
		switch {
		case !m.VertexData(v).HasIncidentTriangle():
			isolated++
		case m.IsBoundaryVertex(v):
			boundary++
		}
	}

	a.p.Fprintf(a.out, "Mesh:      %s (%s)\n", args[0], formats.FormatOf(args[0]))
	a.p.Fprintf(a.out, "Vertices:  %d\n", m.VertexCount())
	a.p.Fprintf(a.out, "Triangles: %d\n", m.TriangleCount())
	a.p.Fprintf(a.out, "Boundary:  %d vertices\n", boundary)
	a.p.Fprintf(a.out, "Isolated:  %d vertices\n", isolated)

	if box, ok := m.Bounds(); ok {
		a.p.Fprintf(a.out, "Bounds:    %s .. %s\n", formatVec(box.Min), formatVec(box.Max))
	}

	var kinds []string
	if hasAny[mesh.TexCoord](m) {
		kinds = append(kinds, "texcoords")
	}
	if hasAny[mesh.VertexNormal](m) {
		kinds = append(kinds, "normals")
	}
	if len(kinds) > 0 {
		fmt.Fprintf(a.out, "Extra:     %s\n", strings.Join(kinds, ", "))
	}
	return nil
}

func (a *app) cmdCheck(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: meshtool check <mesh>", errUsage)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	finding := mesh.Inspect(m)
	if finding.Code == mesh.MeshOK {
		fmt.Fprintf(a.out, "%s: %s\n", args[0], finding.Code)
		return nil
	}

	fmt.Fprintf(a.out, "%s: %v\n", args[0], finding.Err())
	logger.Warn("integrity check failed",
		zap.String("path", args[0]),
		zap.Stringer("code", finding.Code))
	if a.cfg.Integrity.FailOnError {
		return errCheckFailed
	}
	return nil
}

func (a *app) cmdConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	withNormals := fs.Bool("normals", false, "Compute vertex normals before writing")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: meshtool convert [-normals] <in> <out>", errUsage)
	}

	m, err := loadMesh(fs.Arg(0))
	if err != nil {
		return err
	}
	if *withNormals {
		a.computeNormals(m)
	}
	return a.save(m, fs.Arg(1))
}

func (a *app) cmdNormals(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: meshtool normals <in> [out]", errUsage)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	a.computeNormals(m)

	degenerate := 0
	for t := range mesh.TriangleIndex(m.TriangleCount()) {
		n := mesh.GetExtraData[mesh.TriangleNormal](m.Triangle(t))
		if n != nil && n.Vec3 == (math.Vec3{}) {
			degenerate++
		}
	}
	a.p.Fprintf(a.out, "Triangle normals: %d (%d degenerate)\n", m.TriangleCount(), degenerate)
	if a.cfg.Normals.Smooth {
		a.p.Fprintf(a.out, "Vertex normals:   %d\n", m.VertexCount())
	}

	if len(args) > 1 {
		return a.save(m, args[1])
	}
	return nil
}

func (a *app) computeNormals(m *mesh.Mesh) {
	normalize := a.cfg.Normals.Normalize
	m.ComputeTriangleNormals(normalize)
	if a.cfg.Normals.Smooth {
		m.ComputeSmoothVertexNormals(normalize)
	}
	logger.Debug("normals computed",
		zap.Bool("normalize", normalize),
		zap.Bool("smooth", a.cfg.Normals.Smooth))
}

func (a *app) save(m *mesh.Mesh, path string) error {
	if err := formats.SaveFile(m, path); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", path), zap.Int("triangles", m.TriangleCount()))
	fmt.Fprintf(a.out, "Wrote: %s\n", path)
	return nil
}

func (a *app) cmdRing(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: meshtool ring <mesh> <vertex>", errUsage)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	idx, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || idx >= uint64(m.VertexCount()) {
		return fmt.Errorf("vertex %q: %w", args[1], formats.ErrIndexOutOfRange)
	}
	v := mesh.VertexIndex(idx)

	if !m.VertexData(v).HasIncidentTriangle() {
		fmt.Fprintf(a.out, "Vertex %d is isolated\n", v)
		return nil
	}

	var tris, verts []string
	for t := range m.TrianglesAroundVertex(v) {
		tris = append(tris, strconv.FormatUint(uint64(t), 10))
	}
	for n := range m.VerticesAroundVertex(v) {
		verts = append(verts, strconv.FormatUint(uint64(n), 10))
	}

	fmt.Fprintf(a.out, "Vertex:    %d %s\n", v, formatVec(m.Vertex(v).Position()))
	fmt.Fprintf(a.out, "Valence:   %d\n", len(tris))
	fmt.Fprintf(a.out, "Boundary:  %t\n", m.IsBoundaryVertex(v))
	fmt.Fprintf(a.out, "Triangles: %s\n", strings.Join(tris, " "))
	fmt.Fprintf(a.out, "Vertices:  %s\n", strings.Join(verts, " "))
	return nil
}

func (a *app) cmdPreview(args []string) error {
	cfg := a.cfg.Preview

	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	output := fs.String("o", "", "Output file (default: timestamped name in the output directory)")
	yaw := fs.Float64("yaw", cfg.Yaw, "Camera yaw in degrees")
	pitch := fs.Float64("pitch", cfg.Pitch, "Camera pitch in degrees")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: meshtool preview [-o file] [-yaw deg] [-pitch deg] <mesh>", errUsage)
	}

	path := fs.Arg(0)
	m, err := loadMesh(path)
	if err != nil {
		return err
	}
	m.ComputeTriangleNormals(true)

	cam := preview.NewOrbitCamera()
	if box, ok := m.Bounds(); ok {
		cam.FitToBounds(box)
	}
	cam.SetAngles(*yaw, *pitch)

	img := preview.Render(m, cam, preview.DefaultOptions(cfg.Width, cfg.Height))

	format := cfg.Format
	if *output != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(*output)), ".")
	}
	prefix := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	capture, err := preview.NewCapture(cfg.OutputDir, prefix, format)
	if err != nil {
		return err
	}

	written := *output
	if written == "" {
		written, err = capture.Save(img)
	} else {
		err = capture.SaveTo(img, written)
	}
	if err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}

	logger.Info("preview written",
		zap.String("path", written),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))
	fmt.Fprintf(a.out, "Wrote: %s\n", written)
	return nil
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// hasAny reports whether any vertex of m carries kind T.
func hasAny[T any](m *mesh.Mesh) bool {
	if !m.HasVerticesExtraDataContainer() {
		return false
	}
	for v := range mesh.VertexIndex(m.VertexCount()) {
		if mesh.HasExtraData[T](m.Vertex(v)) {
			return true
		}
	}
	return false
}
