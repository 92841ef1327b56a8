// Package shadow casts hard terrain shadows by ray-marching each vertex
// toward the light through the heightfield.
package shadow

import (
	gomath "math"

	"github.com/Faultbox/fractal-terrain/internal/engine/parallel"
	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Shade factors.
const (
	Lit      float32 = 1
	Occluded float32 = 0
)

// Map holds one shade factor per mesh vertex, laid out like Mesh.Vertices.
type Map struct {
	Divisions int
	Shade     []float32
}

// At returns the shade factor of grid point (i,j).
func (m *Map) At(i, j int) float32 {
	return m.Shade[i*(m.Divisions+1)+j]
}

// LitCount returns how many vertices see the light.
func (m *Map) LitCount() int {
	lit := 0
	for _, s := range m.Shade {
		if s == Lit {
			lit++
		}
	}
	return lit
}

// Cast marches a ray from every mesh vertex toward light and records
// whether the terrain blocks it. Rows are split across workers.
func Cast(grid *terrain.HeightGrid, mesh *terrain.Mesh, light math.Vec3, workers int) *Map {
	if mesh == nil || grid.Divisions() != mesh.Divisions {
		panic("shadow: mesh does not match grid")
	}

	size := mesh.Divisions + 1
	m := &Map{
		Divisions: mesh.Divisions,
		Shade:     make([]float32, len(mesh.Vertices)),
	}
	parallel.Range(size, workers, func(from, to int) {
		for i := from; i < to; i++ {
			for j := range size {
				idx := i*size + j
				m.Shade[idx] = ShadeVertex(grid, mesh.Vertices[idx].Position, light, mesh.Exaggeration)
			}
		}
	})
	return m
}

// ShadeVertex returns Lit or Occluded for a single vertex position.
//
// The march length is N*sqrt(ray.x*ray.y + ray.z*ray.z). The x*y term is the
// defined distance proxy, not a typo for x*x. When it makes the radicand
// negative the length is NaN, no step is taken, and the vertex is lit.
func ShadeVertex(grid *terrain.HeightGrid, v, light math.Vec3, exaggeration float64) float32 {
	n := float64(grid.Divisions())
	rx := float64(light.X - v.X)
	ry := float64(light.Y - v.Y)
	rz := float64(light.Z - v.Z)
	distance := n * gomath.Sqrt(rx*ry+rz*rz)

	vx, vy, vz := float64(v.X), float64(v.Y), float64(v.Z)
	for t := 1.0; t < distance; t++ {
		f := t / distance
		sx := vx + rx*f
		sy := vy + ry*f
		sz := vz + rz*f
		if sx < 0 || sx > 1 || sz < 0 || sz > 1 {
			// Left the terrain footprint.
			return Lit
		}
		if exaggeration*grid.Altitude(sx, sz) >= sy {
			return Occluded
		}
	}
	return Lit
}
