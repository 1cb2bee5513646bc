// Package preview renders flat-shaded software previews of triangle meshes.
package preview

import (
	gomath "math"

	"github.com/Faultbox/trimesh/pkg/math"
	"github.com/Faultbox/trimesh/pkg/mesh"
)

// OrbitCamera orbits around a center point with Y up.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float64 // Distance from center
	Pitch    float64 // Vertical angle above the horizon, radians
	Yaw      float64 // Horizontal angle around Y, radians

	// Radius is the half height of the orthographic view volume.
	Radius float64

	MinPitch float64
	MaxPitch float64
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance: 3,
		Pitch:    0.5,
		Radius:   1,
		MinPitch: -1.57,
		MaxPitch: 1.57,
	}
}

// SetAngles sets yaw and pitch in degrees, clamping pitch short of the poles.
func (c *OrbitCamera) SetAngles(yawDeg, pitchDeg float64) {
	c.Yaw = yawDeg * gomath.Pi / 180
	c.Pitch = max(c.MinPitch, min(c.MaxPitch, pitchDeg*gomath.Pi/180))
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.Center.Add(sphereDirection(c.Yaw, c.Pitch).Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}

// ProjectionMatrix returns an orthographic projection covering Radius
// vertically and the same scale horizontally for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float64) math.Mat4 {
	r := c.Radius
	return math.Ortho(-r*aspect, r*aspect, -r, r, 0.01, c.Distance+2*r)
}

// FitToBounds centers the camera on box and backs off far enough to see all of it.
func (c *OrbitCamera) FitToBounds(box mesh.AABB) {
	c.Center = box.Center()

	c.Radius = box.Radius()
	if c.Radius == 0 {
		c.Radius = 1
	}
	c.Radius *= 1.05 // margin
	c.Distance = c.Radius * 3
}

// sphereDirection converts yaw/pitch to a unit vector. Yaw 0 looks down -Z
// from +Z; pitch is elevation from the horizon.
func sphereDirection(yaw, pitch float64) math.Vec3 {
	return math.Vec3{
		X: gomath.Cos(pitch) * gomath.Sin(yaw),
		Y: gomath.Sin(pitch),
		Z: gomath.Cos(pitch) * gomath.Cos(yaw),
	}
}
