package debug

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/Faultbox/fractal-terrain/internal/engine/scene"
	"github.com/Faultbox/fractal-terrain/internal/engine/shadow"
	"github.com/Faultbox/fractal-terrain/internal/engine/terrain"
)

// ErrUnknownFilter is returned by Resize for an unsupported filter name.
var ErrUnknownFilter = errors.New("unknown resize filter")

var filters = map[string]draw.Scaler{
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.BiLinear,
	"catmullrom": draw.CatmullRom,
}

// TopDown renders the lit scene as seen from above, one pixel per grid cell.
// Pixel (x,y) is cell (i=x, j=y) and shows the mean color of its two
// triangles. Image x follows world X and image y follows world Z.
func TopDown(s *scene.Scene) *image.RGBA {
	n := s.Mesh.Divisions
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	tris := s.Triangles()
	for cell := 0; cell < n*n; cell++ {
		c := tris[2*cell].Color.Add(tris[2*cell+1].Color).Scale(0.5)
		img.SetRGBA(cell/n, cell%n, c.RGBA8())
	}
	return img
}

// Heightmap renders raw heights as grayscale, one pixel per sample, black at
// the lowest sample and white at the highest. A flat grid renders black.
func Heightmap(grid *terrain.HeightGrid) *image.Gray {
	size := grid.Size()
	img := image.NewGray(image.Rect(0, 0, size, size))
	lo, span := grid.Min(), grid.Max()-grid.Min()
	if !(span > 0) {
		return img
	}
	for i := range size {
		for j := range size {
			v := (grid.At(i, j) - lo) / span
			img.SetGray(i, j, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}

// ShadowMask renders the shade map, white where a vertex sees the light.
func ShadowMask(m *shadow.Map) *image.Gray {
	size := m.Divisions + 1
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range size {
		for j := range size {
			if m.At(i, j) == shadow.Lit {
				img.SetGray(i, j, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// Resize scales src to width x height using the named filter: nearest,
// bilinear or catmullrom.
func Resize(src image.Image, width, height int, filter string) (*image.RGBA, error) {
	scaler, ok := filters[filter]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
