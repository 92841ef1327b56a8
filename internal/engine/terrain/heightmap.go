package terrain

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/fractal-terrain/internal/engine/parallel"
)

// Generation errors.
var (
	ErrInvalidParameter = errors.New("invalid terrain parameter")
	ErrDegenerateRange  = errors.New("degenerate height range: min equals max")
)

// MaxLevelOfDetail caps grid size at (2^14+1)^2 samples.
const MaxLevelOfDetail = 14

// HeightGrid is a square grid of (N+1)x(N+1) elevations with N = 2^lod.
// It is immutable once returned by Generate or FromSamples.
type HeightGrid struct {
	samples   []float64 // row-major, index i*(divisions+1)+j
	lod       int
	divisions int
	min, max  float64
}

// Generator runs the diamond-square algorithm.
type Generator struct {
	LevelOfDetail int
	Roughness     float64

	// Workers > 1 splits every diamond and square pass across goroutines.
	// Offsets are drawn in canonical order before each pass, so the result
	// does not depend on the worker count.
	Workers int
}

// Generate builds a grid with a single worker.
func Generate(levelOfDetail int, roughness float64, src Source) (*HeightGrid, error) {
	return Generator{LevelOfDetail: levelOfDetail, Roughness: roughness}.Generate(src)
}

// Validate checks the generator parameters.
func (g Generator) Validate() error {
	if g.LevelOfDetail <= 0 || g.LevelOfDetail > MaxLevelOfDetail {
		return fmt.Errorf("%w: level of detail %d outside [1, %d]", ErrInvalidParameter, g.LevelOfDetail, MaxLevelOfDetail)
	}
	if !(g.Roughness > 0 && g.Roughness < 1) {
		return fmt.Errorf("%w: roughness %v outside (0, 1)", ErrInvalidParameter, g.Roughness)
	}
	return nil
}

// RoughnessSchedule returns the displacement amplitude of every refinement
// level: roughness^(i+1) for i in [0, lod).
func RoughnessSchedule(levelOfDetail int, roughness float64) []float64 {
	if levelOfDetail <= 0 {
		return nil
	}
	amps := make([]float64, levelOfDetail)
	amp := roughness
	for i := range amps {
		amps[i] = amp
		amp *= roughness
	}
	return amps
}

// Generate runs diamond-square, drawing every random value from src.
func (g Generator) Generate(src Source) (*HeightGrid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		panic("terrain: Generate called with nil Source")
	}

	lod := g.LevelOfDetail
	n := 1 << lod
	grid := &HeightGrid{
		samples:   make([]float64, (n+1)*(n+1)),
		lod:       lod,
		divisions: n,
	}

	// Corners first; nothing else is known before refinement starts.
	grid.set(0, 0, src.Sample())
	grid.set(0, n, src.Sample())
	grid.set(n, n, src.Sample())
	grid.set(n, 0, src.Sample())

	for level, amp := range RoughnessSchedule(lod, g.Roughness) {
		step := 1 << (lod - level)
		half := step >> 1

		centers := diamondPoints(n, step)
		grid.refine(centers, src, amp, g.Workers, func(i, j int) float64 {
			return grid.diamondAverage(i, j, half)
		})

		edges := squarePoints(n, step)
		grid.refine(edges, src, amp, g.Workers, func(i, j int) float64 {
			return grid.squareAverage(i, j, half)
		})
	}

	grid.scanRange()
	return grid, nil
}

// FromSamples wraps externally produced elevations in a HeightGrid.
// samples must hold (2^lod+1)^2 values in row-major order.
func FromSamples(levelOfDetail int, samples []float64) (*HeightGrid, error) {
	if levelOfDetail <= 0 || levelOfDetail > MaxLevelOfDetail {
		return nil, fmt.Errorf("%w: level of detail %d outside [1, %d]", ErrInvalidParameter, levelOfDetail, MaxLevelOfDetail)
	}
	n := 1 << levelOfDetail
	if len(samples) != (n+1)*(n+1) {
		return nil, fmt.Errorf("%w: expected %d samples, got %d", ErrInvalidParameter, (n+1)*(n+1), len(samples))
	}
	grid := &HeightGrid{
		samples:   append([]float64(nil), samples...),
		lod:       levelOfDetail,
		divisions: n,
	}
	grid.scanRange()
	return grid, nil
}

// diamondPoints lists the centers of every step-sized cell.
func diamondPoints(n, step int) [][2]int {
	half := step >> 1
	points := make([][2]int, 0, (n/step)*(n/step))
	for x := 0; x < n; x += step {
		for y := 0; y < n; y += step {
			points = append(points, [2]int{x + half, y + half})
		}
	}
	return points
}

// squarePoints lists the edge midpoints left unset after a diamond pass.
func squarePoints(n, step int) [][2]int {
	half := step >> 1
	var points [][2]int
	for x := 0; x <= n; x += half {
		for y := (x + half) % step; y <= n; y += step {
			points = append(points, [2]int{x, y})
		}
	}
	return points
}

// refine assigns average(point)+offset*amp to every point. Offsets are drawn
// up front in list order; the writes then fan out across workers, and
// parallel.Range returns only once the whole pass is written.
func (g *HeightGrid) refine(points [][2]int, src Source, amp float64, workers int, average func(i, j int) float64) {
	offsets := make([]float64, len(points))
	for k := range offsets {
		offsets[k] = src.Sample() * amp
	}

	parallel.Range(len(points), workers, func(from, to int) {
		for k := from; k < to; k++ {
			p := points[k]
			g.set(p[0], p[1], average(p[0], p[1])+offsets[k])
		}
	})
}

// diamondAverage averages the four corners of the cell centered at (i,j).
func (g *HeightGrid) diamondAverage(i, j, half int) float64 {
	return (g.at(i-half, j-half) + g.at(i+half, j-half) +
		g.at(i+half, j+half) + g.at(i-half, j+half)) * 0.25
}

// squareAverage averages the axis neighbors at distance half that exist;
// boundary points have only two or three.
func (g *HeightGrid) squareAverage(i, j, half int) float64 {
	var sum float64
	var count int
	if i-half >= 0 {
		sum += g.at(i-half, j)
		count++
	}
	if j-half >= 0 {
		sum += g.at(i, j-half)
		count++
	}
	if i+half <= g.divisions {
		sum += g.at(i+half, j)
		count++
	}
	if j+half <= g.divisions {
		sum += g.at(i, j+half)
		count++
	}
	return sum / float64(count)
}

func (g *HeightGrid) scanRange() {
	g.min, g.max = g.samples[0], g.samples[0]
	for _, v := range g.samples[1:] {
		g.min = gomath.Min(g.min, v)
		g.max = gomath.Max(g.max, v)
	}
}

func (g *HeightGrid) index(i, j int) int { return i*(g.divisions+1) + j }

func (g *HeightGrid) at(i, j int) float64 { return g.samples[g.index(i, j)] }

func (g *HeightGrid) set(i, j int, v float64) { g.samples[g.index(i, j)] = v }

func (g *HeightGrid) mustBeBuilt() {
	if g == nil || g.samples == nil {
		panic("terrain: HeightGrid used before Generate")
	}
}

// LevelOfDetail returns the lod the grid was built with.
func (g *HeightGrid) LevelOfDetail() int {
	g.mustBeBuilt()
	return g.lod
}

// Divisions returns N, the number of cells along one side.
func (g *HeightGrid) Divisions() int {
	g.mustBeBuilt()
	return g.divisions
}

// Size returns N+1, the number of samples along one side.
func (g *HeightGrid) Size() int {
	g.mustBeBuilt()
	return g.divisions + 1
}

// At returns the raw elevation at grid index (i,j). Indices are clamped to
// the grid.
func (g *HeightGrid) At(i, j int) float64 {
	g.mustBeBuilt()
	return g.at(clampIndex(i, g.divisions), clampIndex(j, g.divisions))
}

// Min returns the lowest raw elevation.
func (g *HeightGrid) Min() float64 {
	g.mustBeBuilt()
	return g.min
}

// Max returns the highest raw elevation.
func (g *HeightGrid) Max() float64 {
	g.mustBeBuilt()
	return g.max
}

// Samples returns a copy of the raw elevations in row-major order.
func (g *HeightGrid) Samples() []float64 {
	g.mustBeBuilt()
	return append([]float64(nil), g.samples...)
}

// CheckRange reports ErrDegenerateRange for a perfectly flat grid.
func (g *HeightGrid) CheckRange() error {
	g.mustBeBuilt()
	if g.max == g.min {
		return fmt.Errorf("%w (%v)", ErrDegenerateRange, g.min)
	}
	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
