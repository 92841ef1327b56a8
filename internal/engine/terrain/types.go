// Package terrain generates fractal heightfields and tessellates them into
// lit-ready triangle meshes.
package terrain

import (
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Vertex is one mesh vertex per grid sample.
type Vertex struct {
	Position math.Vec3 // x,z in [0,1]; y is normalized altitude * exaggeration
	Normal   math.Vec3 // sum of adjacent face normals, not normalized
	Color    math.RGB  // gradient color at this sample
}

// UnitNormal returns the accumulated normal scaled to unit length.
func (v Vertex) UnitNormal() math.Vec3 {
	return v.Normal.Normalize()
}

// Triangle references three vertices by grid index.
type Triangle struct {
	I, J   [3]int
	Normal math.Vec3 // unit face normal
	Color  math.RGB  // composited color, zero until the lighting pass runs
}

// Mesh holds the tessellated terrain ready for a renderer.
type Mesh struct {
	Divisions    int
	Exaggeration float64
	Vertices     []Vertex   // (Divisions+1)^2 entries, index i*(Divisions+1)+j
	Triangles    []Triangle // 2*Divisions^2 entries, two per cell
	Bounds       Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the center point of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Gradient is a two-segment linear color ramp over normalized altitude.
type Gradient struct {
	Low  math.RGB
	Mid  math.RGB
	High math.RGB
}

// DefaultGradient runs from water blue through grass green to snow white.
var DefaultGradient = Gradient{
	Low:  math.RGB{R: 0.0, G: 0.3, B: 1.0},
	Mid:  math.RGB{R: 0.0, G: 0.8, B: 0.1},
	High: math.RGB{R: 0.68, G: 0.68, B: 0.7},
}
