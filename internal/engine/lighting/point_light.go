// Package lighting composites ambient and diffuse point-light terms with
// shadow factors into final terrain colors.
package lighting

import (
	"github.com/Faultbox/fractal-terrain/internal/engine/parallel"
	"github.com/Faultbox/fractal-terrain/internal/engine/shadow"
	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// PointLight is a single fixed light with inverse-square diffuse falloff.
type PointLight struct {
	Position math.Vec3
	Ambient  float32 // unattenuated base term
	Diffuse  float32 // diffuse strength before distance falloff
}

// DefaultPointLight returns the classic setup: a low sun off the +x edge.
func DefaultPointLight() PointLight {
	return PointLight{
		Position: math.Vec3{X: 3.6, Y: 3.9, Z: 0.6},
		Ambient:  0.3,
		Diffuse:  4.0,
	}
}

// Intensity returns the scalar lighting at position v with unit normal n
// and shade factor s:
//
//	ambient + diffuse * max(0, -dot(normalize(v-L), n)) / |v-L|^2 * s
func (l PointLight) Intensity(v, n math.Vec3, shade float32) float32 {
	toVertex := v.Sub(l.Position)
	dist2 := toVertex.Length2()
	if dist2 == 0 {
		return l.Ambient
	}
	d := toVertex.Normalize().Dot(n)
	return l.Ambient + l.Diffuse*max(0, -d)/dist2*shade
}

// Compose lights every vertex and writes each triangle's final color as the
// average of its three shaded vertex colors. It returns the per-vertex
// shaded colors in Mesh.Vertices order. Colors are not clamped.
func Compose(mesh *terrain.Mesh, shades *shadow.Map, light PointLight, workers int) []math.RGB {
	if shades == nil || len(shades.Shade) != len(mesh.Vertices) {
		panic("lighting: shade map does not match mesh")
	}

	shaded := make([]math.RGB, len(mesh.Vertices))
	parallel.Range(len(mesh.Vertices), workers, func(from, to int) {
		for k := from; k < to; k++ {
			v := &mesh.Vertices[k]
			shaded[k] = v.Color.Scale(light.Intensity(v.Position, v.UnitNormal(), shades.Shade[k]))
		}
	})

	parallel.Range(len(mesh.Triangles), workers, func(from, to int) {
		for k := from; k < to; k++ {
			t := &mesh.Triangles[k]
			var sum math.RGB
			for c := range 3 {
				sum = sum.Add(shaded[mesh.Index(t.I[c], t.J[c])])
			}
			t.Color = sum.Scale(1.0 / 3.0)
		}
	})
	return shaded
}
