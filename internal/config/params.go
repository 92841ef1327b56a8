package config

import (
	gomath "math"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/engine/camera"
	"github.com/Faultbox/fractal-terrain/internal/engine/lighting"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene"
	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
	"github.com/Faultbox/fractal-terrain/internal/logger"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Roughness is clamped into this range before it reaches the generator,
// which rejects the open interval's endpoints.
const (
	MinRoughness = 0.01
	MaxRoughness = 0.99
)

var previewFilters = map[string]bool{
	"nearest":    true,
	"bilinear":   true,
	"catmullrom": true,
}

// Normalize pulls out-of-range values back into range, logging a warning for
// every value it changes.
func (c *Config) Normalize() {
	def := Default()

	t := &c.Terrain
	if t.LevelOfDetail < 1 || t.LevelOfDetail > terrain.MaxLevelOfDetail {
		clamped := min(max(t.LevelOfDetail, 1), terrain.MaxLevelOfDetail)
		warnClamped("terrain.level_of_detail", float64(t.LevelOfDetail), float64(clamped))
		t.LevelOfDetail = clamped
	}
	if gomath.IsNaN(t.Roughness) {
		warnClamped("terrain.roughness", t.Roughness, def.Terrain.Roughness)
		t.Roughness = def.Terrain.Roughness
	} else if t.Roughness < MinRoughness || t.Roughness > MaxRoughness {
		clamped := gomath.Min(gomath.Max(t.Roughness, MinRoughness), MaxRoughness)
		warnClamped("terrain.roughness", t.Roughness, clamped)
		t.Roughness = clamped
	}
	if !(t.Exaggeration > 0) {
		warnClamped("terrain.exaggeration", t.Exaggeration, def.Terrain.Exaggeration)
		t.Exaggeration = def.Terrain.Exaggeration
	}

	if c.Performance.Workers < 0 {
		warnClamped("performance.workers", float64(c.Performance.Workers), 1)
		c.Performance.Workers = 1
	}

	if c.Lighting.SunDistance <= 0 {
		warnClamped("lighting.sun_distance", float64(c.Lighting.SunDistance), float64(def.Lighting.SunDistance))
		c.Lighting.SunDistance = def.Lighting.SunDistance
	}

	if !previewFilters[c.Preview.Filter] {
		logger.Warn("unknown preview filter, using nearest", zap.String("filter", c.Preview.Filter))
		c.Preview.Filter = "nearest"
	}
	if c.Preview.Width <= 0 {
		c.Preview.Width = def.Preview.Width
	}
	if c.Preview.Height <= 0 {
		c.Preview.Height = def.Preview.Height
	}
	if c.Preview.GridEvery < 0 {
		c.Preview.GridEvery = 0
	}
	if c.Preview.CameraPitch < 1 || c.Preview.CameraPitch > 89 {
		clamped := gomath.Min(gomath.Max(c.Preview.CameraPitch, 1), 89)
		warnClamped("preview.camera_pitch", c.Preview.CameraPitch, clamped)
		c.Preview.CameraPitch = clamped
	}
	if !(c.Preview.FieldOfView >= 10 && c.Preview.FieldOfView <= 120) {
		warnClamped("preview.field_of_view", c.Preview.FieldOfView, def.Preview.FieldOfView)
		c.Preview.FieldOfView = def.Preview.FieldOfView
	}
}

func warnClamped(key string, from, to float64) {
	logger.Warn("config value out of range, clamped",
		zap.String("key", key),
		zap.Float64("value", from),
		zap.Float64("using", to))
}

// Workers resolves the worker count, expanding 0 to the CPU count.
func (c *Config) Workers() int {
	if c.Performance.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Performance.Workers
}

// LightPosition returns the configured light position, derived from the sun
// angles when UseSun is set. The sun orbits the terrain center at half the
// exaggerated height.
func (c *Config) LightPosition() math.Vec3 {
	if !c.Lighting.UseSun {
		p := c.Lighting.Position
		return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	center := math.Vec3{X: 0.5, Y: float32(c.Terrain.Exaggeration / 2), Z: 0.5}
	return lighting.SunPosition(c.Lighting.SunLongitude, c.Lighting.SunLatitude, c.Lighting.SunDistance, center)
}

// Params converts the config into scene generation parameters.
func (c *Config) Params() scene.Params {
	return scene.Params{
		LevelOfDetail: c.Terrain.LevelOfDetail,
		Roughness:     c.Terrain.Roughness,
		Exaggeration:  c.Terrain.Exaggeration,
		Light: lighting.PointLight{
			Position: c.LightPosition(),
			Ambient:  c.Lighting.Ambient,
			Diffuse:  c.Lighting.Diffuse,
		},
		Workers: c.Workers(),
	}
}

// Camera builds the perspective preview camera, framed on bounds.
func (c *Config) Camera(bounds terrain.Bounds) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.FieldOfView = float32(c.Preview.FieldOfView * gomath.Pi / 180)
	cam.RotationY = float32(c.Preview.CameraYaw * gomath.Pi / 180)
	cam.RotationX = 0
	cam.Orbit(0, float32(c.Preview.CameraPitch*gomath.Pi/180))
	cam.FitToBounds(bounds)
	return cam
}

// Source returns the random source for generation and the seed it uses.
// A zero seed is replaced by one derived from the clock.
func (c *Config) Source() (terrain.Source, uint64) {
	seed := c.Terrain.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return terrain.NewSource(seed), seed
}
