// Package scene runs the full terrain pipeline and owns its results:
// heightfield, mesh, shade map and composited colors.
package scene

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/engine/lighting"
	"github.com/Faultbox/fractal-terrain/internal/engine/shadow"
	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
	"github.com/Faultbox/fractal-terrain/internal/logger"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Params are the inputs of one generation pass.
type Params struct {
	LevelOfDetail int
	Roughness     float64
	Exaggeration  float64
	Light         lighting.PointLight
	Workers       int
}

// DefaultParams returns the parameters of the classic fractal terrain demo.
func DefaultParams() Params {
	return Params{
		LevelOfDetail: 5,
		Roughness:     0.5,
		Exaggeration:  0.7,
		Light:         lighting.DefaultPointLight(),
		Workers:       1,
	}
}

// Validate checks every parameter without generating anything.
func (p Params) Validate() error {
	gen := terrain.Generator{LevelOfDetail: p.LevelOfDetail, Roughness: p.Roughness}
	if err := gen.Validate(); err != nil {
		return err
	}
	if !(p.Exaggeration > 0) {
		return fmt.Errorf("%w: exaggeration %v must be positive", terrain.ErrInvalidParameter, p.Exaggeration)
	}
	return nil
}

// Scene is one complete, immutable generation result.
type Scene struct {
	Params Params
	Grid   *terrain.HeightGrid
	Mesh   *terrain.Mesh
	Shades *shadow.Map
	Shaded []math.RGB // per-vertex lit colors, Mesh.Vertices order
}

// Generate runs generator, mesh builder, shadow caster and compositor in
// order. No partial scene is ever returned.
func Generate(p Params, src terrain.Source) (*Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := logger.Named("scene")

	start := time.Now()
	gen := terrain.Generator{LevelOfDetail: p.LevelOfDetail, Roughness: p.Roughness, Workers: p.Workers}
	grid, err := gen.Generate(src)
	if err != nil {
		return nil, fmt.Errorf("generating heightfield: %w", err)
	}
	if err := grid.CheckRange(); err != nil {
		log.Warn("flat heightfield, altitudes collapse to 0", zap.Error(err))
	}
	log.Debug("heightfield ready",
		zap.Int("size", grid.Size()),
		zap.Float64("min", grid.Min()),
		zap.Float64("max", grid.Max()),
		zap.Duration("took", time.Since(start)))

	stage := time.Now()
	mesh, err := terrain.BuildMesh(grid, p.Exaggeration)
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}
	log.Debug("mesh ready", zap.Int("triangles", len(mesh.Triangles)), zap.Duration("took", time.Since(stage)))

	stage = time.Now()
	shades := shadow.Cast(grid, mesh, p.Light.Position, p.Workers)
	log.Debug("shadows cast",
		zap.Int("lit", shades.LitCount()),
		zap.Int("vertices", len(shades.Shade)),
		zap.Duration("took", time.Since(stage)))

	stage = time.Now()
	shaded := lighting.Compose(mesh, shades, p.Light, p.Workers)
	log.Debug("lighting composed", zap.Duration("took", time.Since(stage)))

	log.Info("terrain generated",
		zap.Int("lod", p.LevelOfDetail),
		zap.Float64("roughness", p.Roughness),
		zap.Float64("exaggeration", p.Exaggeration),
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Duration("took", time.Since(start)))

	return &Scene{
		Params: p,
		Grid:   grid,
		Mesh:   mesh,
		Shades: shades,
		Shaded: shaded,
	}, nil
}

func (s *Scene) mustBeGenerated() {
	if s == nil || s.Grid == nil || s.Mesh == nil {
		panic("scene: queried before Generate")
	}
}

// Altitude returns the normalized altitude at (x,z).
func (s *Scene) Altitude(x, z float64) float64 {
	s.mustBeGenerated()
	return s.Grid.Altitude(x, z)
}

// Color returns the unlit gradient color at (x,z).
func (s *Scene) Color(x, z float64) math.RGB {
	s.mustBeGenerated()
	return s.Grid.Color(x, z)
}

// Triangles returns the lit triangles for the renderer.
func (s *Scene) Triangles() []terrain.Triangle {
	s.mustBeGenerated()
	return s.Mesh.Triangles
}

// Vertices returns the mesh vertices for the renderer.
func (s *Scene) Vertices() []terrain.Vertex {
	s.mustBeGenerated()
	return s.Mesh.Vertices
}
