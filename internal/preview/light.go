package preview

import (
	gomath "math"

	"github.com/Faultbox/trimesh/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a light
// direction. Longitude is rotation around the Y axis, latitude is elevation
// from the horizon. The result is a unit vector pointing towards the light.
func SunDirection(longitude, latitude float64) math.Vec3 {
	return sphereDirection(longitude*gomath.Pi/180, latitude*gomath.Pi/180)
}

// cameraLight places the light above and to the left of the camera so that
// faces turned towards the viewer are lit but not flat.
func cameraLight(c *OrbitCamera) math.Vec3 {
	yaw := c.Yaw*180/gomath.Pi - 35
	pitch := min(c.Pitch*180/gomath.Pi+30, 80)
	return SunDirection(yaw, pitch)
}
