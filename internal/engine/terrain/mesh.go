package terrain

import (
	"fmt"

	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// BuildMesh tessellates the grid into 2*N^2 triangles. Vertex heights are
// normalized altitude scaled by exaggeration.
func BuildMesh(grid *HeightGrid, exaggeration float64) (*Mesh, error) {
	grid.mustBeBuilt()
	if !(exaggeration > 0) {
		return nil, fmt.Errorf("%w: exaggeration %v must be positive", ErrInvalidParameter, exaggeration)
	}

	n := grid.divisions
	size := n + 1
	mesh := &Mesh{
		Divisions:    n,
		Exaggeration: exaggeration,
		Vertices:     make([]Vertex, size*size),
		Triangles:    make([]Triangle, 0, 2*n*n),
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}

	for i := range size {
		for j := range size {
			x := float64(i) / float64(n)
			z := float64(j) / float64(n)
			pos := math.Vec3{
				X: float32(x),
				Y: float32(grid.Altitude(x, z) * exaggeration),
				Z: float32(z),
			}
			mesh.Vertices[i*size+j] = Vertex{Position: pos, Color: grid.Color(x, z)}
			updateBounds(&mesh.Bounds, pos)
		}
	}

	// Lower-left and upper-right halves of each cell, fixed winding.
	for i := range n {
		for j := range n {
			mesh.addTriangle(i, j, i+1, j, i, j+1)
			mesh.addTriangle(i+1, j, i+1, j+1, i, j+1)
		}
	}

	return mesh, nil
}

// addTriangle appends a triangle and accumulates its face normal into each
// of its vertices. The middle vertex is the pivot of the cross product.
func (m *Mesh) addTriangle(i0, j0, i1, j1, i2, j2 int) {
	v0 := m.VertexAt(i0, j0).Position
	v1 := m.VertexAt(i1, j1).Position
	v2 := m.VertexAt(i2, j2).Position
	normal := v0.Sub(v1).Cross(v2.Sub(v1)).Normalize()

	tri := Triangle{
		I:      [3]int{i0, i1, i2},
		J:      [3]int{j0, j1, j2},
		Normal: normal,
	}
	for k := range 3 {
		v := &m.Vertices[m.Index(tri.I[k], tri.J[k])]
		v.Normal = v.Normal.Add(normal)
	}
	m.Triangles = append(m.Triangles, tri)
}

// Index returns the flat vertex index of grid point (i,j).
func (m *Mesh) Index(i, j int) int {
	return i*(m.Divisions+1) + j
}

// VertexAt returns the vertex at grid point (i,j).
func (m *Mesh) VertexAt(i, j int) *Vertex {
	return &m.Vertices[m.Index(i, j)]
}

// Corners returns the three vertices of t.
func (m *Mesh) Corners(t *Triangle) [3]*Vertex {
	return [3]*Vertex{
		m.VertexAt(t.I[0], t.J[0]),
		m.VertexAt(t.I[1], t.J[1]),
		m.VertexAt(t.I[2], t.J[2]),
	}
}

// Positions returns non-indexed triangle positions as a flat float32 slice
// for GPU upload. Format: [x0, y0, z0, x1, y1, z1, ...], three vertices per
// triangle.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Triangles)*9)
	for k := range m.Triangles {
		for _, v := range m.Corners(&m.Triangles[k]) {
			out = append(out, v.Position.X, v.Position.Y, v.Position.Z)
		}
	}
	return out
}

// Normals returns unit vertex normals in the same layout as Positions.
func (m *Mesh) Normals() []float32 {
	out := make([]float32, 0, len(m.Triangles)*9)
	for k := range m.Triangles {
		for _, v := range m.Corners(&m.Triangles[k]) {
			n := v.UnitNormal()
			out = append(out, n.X, n.Y, n.Z)
		}
	}
	return out
}

// Colors returns each triangle's composited color repeated for its three
// vertices, so the mesh renders flat-shaded.
func (m *Mesh) Colors() []float32 {
	out := make([]float32, 0, len(m.Triangles)*9)
	for _, t := range m.Triangles {
		for range 3 {
			out = append(out, t.Color.R, t.Color.G, t.Color.B)
		}
	}
	return out
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
