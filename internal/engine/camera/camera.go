// Package camera provides the orbit camera used for perspective previews.
package camera

import (
	gomath "math"

	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Vertical field of view in radians
	FieldOfView float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32
}

// NewOrbitCamera creates a camera looking at the unit terrain from the
// south-east, about 35 degrees above the horizon.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Center:      math.Vec3{X: 0.5, Y: 0, Z: 0.5},
		Distance:    2.0,
		RotationX:   0.6,
		RotationY:   gomath.Pi / 4,
		FieldOfView: gomath.Pi / 4,
		MinDistance: 0.1,
		MaxDistance: 100.0,
		MinPitch:    0.02,
		MaxPitch:    1.55,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}

// ViewProjection returns projection * view for the given aspect ratio. The
// clip planes bracket the orbit sphere.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	near := c.Distance * 0.01
	far := c.Distance * 10
	return math.Perspective(c.FieldOfView, aspect, near, far).Mul(c.ViewMatrix())
}

// Orbit rotates the camera by yaw and pitch deltas in radians.
func (c *OrbitCamera) Orbit(yaw, pitch float32) {
	c.RotationY += yaw
	c.RotationX += pitch

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// FitToBounds centers the camera on b and backs off far enough to keep the
// whole box in view. Angles are left alone.
func (c *OrbitCamera) FitToBounds(b terrain.Bounds) {
	c.Center = b.Center()

	size := b.Max.Sub(b.Min)
	radius := size.Length() / 2
	if radius == 0 {
		radius = 0.5
	}

	half := float64(c.FieldOfView) / 2
	c.Distance = radius / float32(gomath.Sin(half))
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
