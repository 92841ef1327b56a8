package debug

import (
	"image"
	"image/color"
)

// GridColor is the default overlay line color.
var GridColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// GridOverlay draws cell boundaries onto a top-down preview. every selects
// how many grid cells each drawn cell spans; divisions is the grid size the
// preview was rendered from. The image may have been resized since.
func GridOverlay(img *image.RGBA, divisions, every int, c color.RGBA) {
	if img == nil || divisions <= 0 || every <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Vertical lines
	for i := 0; i <= divisions; i += every {
		x := b.Min.X + min(i*w/divisions, w-1)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Horizontal lines
	for j := 0; j <= divisions; j += every {
		y := b.Min.Y + min(j*h/divisions, h-1)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
