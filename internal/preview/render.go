package preview

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	gomath "math"
	"slices"

	"golang.org/x/image/vector"

	"github.com/Faultbox/trimesh/pkg/math"
	"github.com/Faultbox/trimesh/pkg/mesh"
)

// Options control a preview render.
type Options struct {
	Width  int
	Height int

	Background color.RGBA
	Front      color.RGBA // base color of faces turned towards the camera
	Back       color.RGBA // base color of faces turned away

	// Light is the direction towards the light. Zero places it relative to the camera.
	Light   math.Vec3
	Ambient float64
}

// DefaultOptions returns options for a w×h preview.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:      w,
		Height:     h,
		Background: color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff},
		Front:      color.RGBA{R: 0xd8, G: 0xc8, B: 0xa0, A: 0xff},
		Back:       color.RGBA{R: 0x80, G: 0x60, B: 0x60, A: 0xff},
		Ambient:    0.25,
	}
}

// projected is one triangle ready to be filled.
type projected struct {
	screen [3]math.Vec2
	depth  float64 // view-space Z of the centroid; more negative is farther
	color  color.RGBA
}

// Render draws m as seen by cam with flat shading. Triangles are filled back
// to front (painter's order), so intersecting triangles may draw incorrectly.
// TriangleNormal extra data is used for shading when present.
func Render(m *mesh.Mesh, cam *OrbitCamera, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	tris := project(m, cam, opts)
	slices.SortStableFunc(tris, func(a, b projected) int {
		return cmp.Compare(a.depth, b.depth)
	})

	var z vector.Rasterizer
	for _, t := range tris {
		fill(&z, img, t)
	}
	return img
}

func project(m *mesh.Mesh, cam *OrbitCamera, opts Options) []projected {
	view := cam.ViewMatrix()
	aspect := float64(opts.Width) / float64(opts.Height)
	viewProj := cam.ProjectionMatrix(aspect).Mul(view)
	eye := cam.Position()

	light := opts.Light
	if light == (math.Vec3{}) {
		light = cameraLight(cam)
	}
	light = light.Normalize()

	useStored := m.HasTrianglesExtraDataContainer()
	n := m.VertexCount()
	out := make([]projected, 0, m.TriangleCount())

	for i, tri := range m.Triangles() {
		if tri.HasUnsetVertex() || int(tri.Vertices[0]) >= n || int(tri.Vertices[1]) >= n || int(tri.Vertices[2]) >= n {
			continue
		}
		pos := m.Triangle(mesh.TriangleIndex(i)).Positions()

		normal := pos[1].Sub(pos[0]).Cross(pos[2].Sub(pos[0]))
		if useStored {
			if tn := mesh.GetExtraData[mesh.TriangleNormal](m.Triangle(mesh.TriangleIndex(i))); tn != nil {
				normal = tn.Vec3
			}
		}
		normal = normal.Normalize()
		if normal == (math.Vec3{}) {
			continue
		}

		centroid := pos[0].Add(pos[1]).Add(pos[2]).Scale(1.0 / 3)
		base := opts.Front
		if normal.Dot(eye.Sub(centroid)) < 0 {
			base = opts.Back
			normal = normal.Negate()
		}

		p := projected{
			depth: view.TransformPoint(centroid).Z,
			color: shade(base, opts.Ambient+(1-opts.Ambient)*max(0, normal.Dot(light))),
		}
		for k, v := range pos {
			ndc := viewProj.TransformPoint(v)
			p.screen[k] = math.Vec2{
				X: (ndc.X + 1) / 2 * float64(opts.Width),
				Y: (1 - ndc.Y) / 2 * float64(opts.Height),
			}
		}
		out = append(out, p)
	}
	return out
}

// fill rasterizes one triangle, restricting the rasterizer to its bounding box.
func fill(z *vector.Rasterizer, img *image.RGBA, t projected) {
	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for _, p := range t.screen {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	r := image.Rect(int(gomath.Floor(minX)), int(gomath.Floor(minY)), int(gomath.Ceil(maxX)), int(gomath.Ceil(maxY)))
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}

	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	origin := math.Vec2{X: float64(r.Min.X), Y: float64(r.Min.Y)}
	for k, p := range t.screen {
		q := p.Sub(origin)
		if k == 0 {
			z.MoveTo(float32(q.X), float32(q.Y))
		} else {
			z.LineTo(float32(q.X), float32(q.Y))
		}
	}
	z.ClosePath()
	z.Draw(img, r, &image.Uniform{C: t.color}, image.Point{})
}

func shade(c color.RGBA, intensity float64) color.RGBA {
	intensity = max(0, min(1, intensity))
	return color.RGBA{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
		A: c.A,
	}
}
