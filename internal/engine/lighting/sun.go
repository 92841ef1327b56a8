package lighting

import (
	gomath "math"

	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit
// direction vector. Longitude rotates around Y, latitude is elevation from
// the horizon. The vector points towards the sun.
func SunDirection(longitude, latitude float64) math.Vec3 {
	lonRad := longitude * gomath.Pi / 180.0
	latRad := latitude * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}

// SunPosition places a point light at distance from center along the sun
// direction.
func SunPosition(longitude, latitude float64, distance float32, center math.Vec3) math.Vec3 {
	return center.Add(SunDirection(longitude, latitude).Scale(distance))
}
