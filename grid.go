package coplot

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// cellData is a rectangular grid of values at the given cell center
// coordinates. It implements plotter.GridXYZ.
type cellData struct {
	xs, ys []float64 // cell centers, ascending
	z      [][]float64
}

func (d cellData) Dims() (c, r int)   { return len(d.xs), len(d.ys) }
func (d cellData) Z(c, r int) float64 { return d.z[c][r] }
func (d cellData) X(c int) float64    { return d.xs[c] }
func (d cellData) Y(r int) float64    { return d.ys[r] }

// edges computes the cell boundaries for a list of cell centers: the
// midpoints between neighbours, extrapolated by half a step at the ends.
func edges(centers []float64) []float64 {
	n := len(centers)
	e := make([]float64, n+1)
	if n == 1 {
		e[0], e[1] = centers[0]-0.5, centers[0]+0.5
		return e
	}
	for i := 1; i < n; i++ {
		e[i] = (centers[i-1] + centers[i]) / 2
	}
	e[0] = centers[0] - (centers[1]-centers[0])/2
	e[n] = centers[n-1] + (centers[n-1]-centers[n-2])/2
	return e
}

func indexCenters(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// -------------------------------------------------------------------------
// ColorGrid

// ColorGrid fills each grid cell with a color taken from Palette. Values
// are mapped linearly between Min and Max, or binned by Levels when those
// are set. NaN cells are skipped so that a background painted below the
// grid shows through. Out of range values clamp to the end colors.
type ColorGrid struct {
	Data    cellData
	Palette palette.Palette

	Min, Max float64
	Levels   []float64
}

// NewColorGrid builds a color grid over cell centers xs, ys with values
// z[i][j] at (xs[i], ys[j]).
func NewColorGrid(xs, ys []float64, z [][]float64, pal palette.Palette) *ColorGrid {
	g := &ColorGrid{
		Data:    cellData{xs: xs, ys: ys, z: z},
		Palette: pal,
	}
	g.Min, g.Max, _ = gridMinMax(z)
	return g
}

func (g *ColorGrid) Plotter() plot.Plotter { return g }

func (g *ColorGrid) colorIndex(v float64, n int) int {
	var k int
	if len(g.Levels) >= 2 {
		k = sort.SearchFloat64s(g.Levels, v)
		if k >= len(g.Levels) || (k > 0 && g.Levels[k] != v) {
			k-- // v sits inside the band below the insertion point
		}
		// Rescale the band index in case the palette resolution does
		// not match the number of bands.
		k = k * n / (len(g.Levels) - 1)
	} else if g.Max > g.Min {
		k = int(float64(n) * (v - g.Min) / (g.Max - g.Min))
	}
	if k < 0 {
		k = 0
	}
	if k > n-1 {
		k = n - 1
	}
	return k
}

// Plot implements plot.Plotter.
func (g *ColorGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	colors := g.Palette.Colors()
	if len(colors) == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)
	xe, ye := edges(g.Data.xs), edges(g.Data.ys)
	for i := range g.Data.xs {
		for j := range g.Data.ys {
			v := g.Data.z[i][j]
			if math.IsNaN(v) {
				continue
			}
			rect := vg.Rectangle{
				Min: vg.Point{X: trX(xe[i]), Y: trY(ye[j])},
				Max: vg.Point{X: trX(xe[i+1]), Y: trY(ye[j+1])},
			}
			c.SetColor(colors[g.colorIndex(v, len(colors))])
			c.Fill(rect.Path())
		}
	}
}

// DataRange implements plot.DataRanger; the range covers the outer cell
// boundaries, not just the centers.
func (g *ColorGrid) DataRange() (xmin, xmax, ymin, ymax float64) {
	xe, ye := edges(g.Data.xs), edges(g.Data.ys)
	return xe[0], xe[len(xe)-1], ye[0], ye[len(ye)-1]
}

// extent returns the drawn area in data coordinates.
func (g *ColorGrid) extent() (xmin, xmax, ymin, ymax float64) {
	return g.DataRange()
}

// -------------------------------------------------------------------------
// ContourLines

// ContourLines draws iso lines at the given levels, colored by the same
// palette as the fill they usually sit on.
type ContourLines struct {
	Levels []float64

	contour *plotter.Contour
}

func NewContourLines(xs, ys []float64, z [][]float64, levels []float64, pal palette.Palette) *ContourLines {
	c := plotter.NewContour(cellData{xs: xs, ys: ys, z: z}, levels, pal)
	return &ContourLines{Levels: levels, contour: c}
}

func (cl *ContourLines) Plotter() plot.Plotter { return cl.contour }
