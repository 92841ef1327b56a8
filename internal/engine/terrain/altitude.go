package terrain

import (
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Altitude returns the normalized elevation in [0,1] at plane coordinate
// (x,z). Coordinates map to the nearest lower grid sample with no
// interpolation; values outside [0,1] clamp to the edge. A flat grid
// yields 0.
func (g *HeightGrid) Altitude(x, z float64) float64 {
	g.mustBeBuilt()
	if g.max == g.min {
		return 0
	}
	raw := g.at(g.cell(x), g.cell(z))
	return (raw - g.min) / (g.max - g.min)
}

// Color returns the DefaultGradient color for the altitude at (x,z).
func (g *HeightGrid) Color(x, z float64) math.RGB {
	return DefaultGradient.At(g.Altitude(x, z))
}

// cell maps a unit coordinate to floor(c*N), clamped to [0,N].
func (g *HeightGrid) cell(c float64) int {
	if !(c > 0) {
		return 0
	}
	if c >= 1 {
		return g.divisions
	}
	return int(c * float64(g.divisions))
}

// At maps normalized altitude a to a color: Low->Mid over [0,0.5) and
// Mid->High over [0.5,1].
func (gr Gradient) At(a float64) math.RGB {
	if a < 0.5 {
		return gr.Low.Lerp(gr.Mid, float32(a/0.5))
	}
	return gr.Mid.Lerp(gr.High, float32((a-0.5)/0.5))
}
