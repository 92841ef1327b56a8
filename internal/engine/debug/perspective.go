package debug

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"

	"github.com/Faultbox/fractal-terrain/internal/engine/camera"
	"github.com/Faultbox/fractal-terrain/internal/engine/parallel"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Background fills pixels no triangle covers.
var Background = color.RGBA{R: 16, G: 16, B: 24, A: 255}

// screenVertex is a projected mesh vertex.
type screenVertex struct {
	pos     math.Vec2
	depth   float32
	visible bool
}

// Perspective rasterizes the lit triangles as seen through cam, flat shaded
// with a depth buffer. Rows are split into bands across workers; each band
// owns its pixels so the output does not depend on the worker count.
func Perspective(s *scene.Scene, cam *camera.OrbitCamera, width, height, workers int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	vp := cam.ViewProjection(float32(width) / float32(height))
	verts := s.Vertices()
	projected := make([]screenVertex, len(verts))
	for k, v := range verts {
		projected[k] = project(vp, v.Position, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	depth := make([]float32, width*height)
	for k := range depth {
		depth[k] = gomath.MaxFloat32
		img.SetRGBA(k%width, k/width, Background)
	}

	tris := s.Triangles()
	mesh := s.Mesh
	parallel.Range(height, workers, func(from, to int) {
		for t := range tris {
			tri := &tris[t]
			var sv [3]screenVertex
			for k := range 3 {
				sv[k] = projected[mesh.Index(tri.I[k], tri.J[k])]
			}
			rasterize(img, depth, sv, tri.Color.RGBA8(), from, to)
		}
	})

	return img, nil
}

// project maps a world position to pixel coordinates and NDC depth.
// Vertices behind the near plane are flagged invisible.
func project(vp math.Mat4, p math.Vec3, width, height int) screenVertex {
	clip := vp.Project(p)
	w := clip[3]
	if w <= 0 {
		return screenVertex{}
	}
	ndcX, ndcY, ndcZ := clip[0]/w, clip[1]/w, clip[2]/w
	if ndcZ < -1 || ndcZ > 1 {
		return screenVertex{}
	}
	return screenVertex{
		pos: math.Vec2{
			X: (ndcX + 1) / 2 * float32(width),
			Y: (1 - ndcY) / 2 * float32(height),
		},
		depth:   ndcZ,
		visible: true,
	}
}

// rasterize fills one triangle restricted to rows [rowFrom, rowTo), testing
// pixel centers with edge functions. Both windings are drawn.
func rasterize(img *image.RGBA, depth []float32, sv [3]screenVertex, c color.RGBA, rowFrom, rowTo int) {
	if !sv[0].visible || !sv[1].visible || !sv[2].visible {
		return
	}
	a, b, d := sv[0].pos, sv[1].pos, sv[2].pos
	area := b.Sub(a).Cross(d.Sub(a))
	if area == 0 {
		return
	}

	width := img.Bounds().Dx()
	minX := max(int(gomath.Floor(float64(min(a.X, b.X, d.X)))), 0)
	maxX := min(int(gomath.Ceil(float64(max(a.X, b.X, d.X)))), width-1)
	minY := max(int(gomath.Floor(float64(min(a.Y, b.Y, d.Y)))), rowFrom)
	maxY := min(int(gomath.Ceil(float64(max(a.Y, b.Y, d.Y)))), rowTo-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.Vec2{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := d.Sub(b).Cross(p.Sub(b)) / area
			w1 := a.Sub(d).Cross(p.Sub(d)) / area
			w2 := b.Sub(a).Cross(p.Sub(a)) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*sv[0].depth + w1*sv[1].depth + w2*sv[2].depth
			idx := y*width + x
			if z >= depth[idx] {
				continue
			}
			depth[idx] = z
			img.SetRGBA(x, y, c)
		}
	}
}
