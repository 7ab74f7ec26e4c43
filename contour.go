package coplot

import (
	"gonum.org/v1/plot/vg"
)

// Contour draws a 2-D filled contour plot of the values Z[i][j] sampled
// at (X[i], Y[j]), with a color bar explaining the fill. The fill is a
// color grid quantized at the computed fill levels, with iso lines drawn
// at the level boundaries.
type Contour struct {
	X, Y []float64
	Z    [][]float64

	// FileName, when set, makes Draw export the figure in FileFormat.
	FileName   string
	FileFormat string

	XLog, YLog bool
	XLim, YLim *Interval

	// FillRange clamps the color mapping to a fixed value range.
	FillRange *Interval

	XLabel, YLabel string
	FillLabel      string

	// FillTickCount levels span the data range, evenly spaced or, with
	// FillLog, at powers of FillLogBase.
	FillTickCount int
	FillLog       bool
	FillLogBase   float64

	PaletteName string
}

// NewContour returns a contour plot of z[i][j] sampled at (x[i], y[j])
// with the default settings.
func NewContour(x, y []float64, z [][]float64) *Contour {
	return &Contour{
		X: x, Y: y, Z: z,
		FileFormat:    "png",
		XLabel:        "x",
		YLabel:        "y",
		FillTickCount: 11,
		FillLogBase:   2,
		PaletteName:   "turbo",
	}
}

// Draw renders the contour plot. Empty input or an input whose grid
// shape does not match X and Y yields an empty figure, not an error.
func (c *Contour) Draw() (*Figure, error) {
	fig, err := c.draw()
	if err != nil {
		return nil, err
	}
	return fig, fig.saveIf(c.FileName, c.FileFormat)
}

func (c *Contour) draw() (*Figure, error) {
	fig, err := NewFigure()
	if err != nil {
		return nil, err
	}
	if len(c.X) == 0 || len(c.Y) == 0 ||
		len(c.X) != len(c.Z) || len(c.Y) != len(c.Z[0]) {
		return fig, nil
	}

	zmin, zmax, ok := gridMinMax(c.Z)
	if !ok {
		return fig, nil
	}
	var levels []float64
	if c.FillLog {
		levels = LogLevels(zmin, zmax, c.FillLogBase, c.FillTickCount)
	} else {
		levels = LinearLevels(zmin, zmax, c.FillTickCount)
	}
	nbands := len(levels) - 1
	if nbands < 1 {
		nbands = 1
	}
	pal, err := PaletteByName(c.PaletteName, nbands)
	if err != nil {
		return nil, err
	}

	grid := NewColorGrid(c.X, c.Y, c.Z, pal)
	cbMin, cbMax := zmin, zmax
	if c.FillRange != nil {
		// Clamp the color mapping instead of banding by level.
		grid.Min, grid.Max = c.FillRange.Min, c.FillRange.Max
		cbMin, cbMax = c.FillRange.Min, c.FillRange.Max
	} else if len(levels) >= 2 {
		grid.Levels = levels
		cbMin, cbMax = levels[0], levels[len(levels)-1]
	}

	ax := fig.Axes[0]
	ax.Add(grid)
	if len(levels) >= 2 {
		ax.Add(NewContourLines(c.X, c.Y, c.Z, levels, pal))
	}
	ax.SetLog(c.XLog, c.YLog)
	ax.SetXLim(c.XLim)
	ax.SetYLim(c.YLim)
	ax.Plot.X.Label.Text = c.XLabel
	ax.Plot.Y.Label.Text = c.YLabel

	// Ticks at the fill levels, dropping levels that a clamped range
	// pushes off the bar.
	var ticks []float64
	if len(levels) >= 2 {
		for _, l := range levels {
			if l >= cbMin && l <= cbMax {
				ticks = append(ticks, l)
			}
		}
	}
	cb, err := newColorBar(pal, cbMin, cbMax, c.FillLog, ticks, c.FillLabel, 1)
	if err != nil {
		return nil, err
	}
	fig.SetColorBar(cb)
	return fig, nil
}

// ContourScatter is a contour plot with additional data points drawn on
// top, optionally colored, sized and labeled per point.
type ContourScatter struct {
	Contour

	PointX, PointY []float64
	Colors         []string
	Labels         []string
	Marker         string
	Sizes          []float64
}

// NewContourScatter returns a contour plot with overlay points at
// (px[i], py[i]).
func NewContourScatter(x, y []float64, z [][]float64, px, py []float64) *ContourScatter {
	return &ContourScatter{
		Contour: *NewContour(x, y, z),
		PointX:  px,
		PointY:  py,
		Marker:  "o",
	}
}

func (c *ContourScatter) Draw() (*Figure, error) {
	fig, err := c.Contour.draw()
	if err != nil {
		return nil, err
	}
	ax := fig.Axes[0]
	pts, err := NewPoints(c.PointX, c.PointY)
	if err != nil {
		return nil, err
	}
	pts.Colors = parseColors(c.Colors)
	pts.Glyph = String2Glyph(c.Marker)
	if c.Sizes != nil {
		sizes := make([]vg.Length, len(c.Sizes))
		for i, s := range c.Sizes {
			sizes[i] = vg.Points(s)
		}
		pts.Sizes = sizes
	}
	ax.Add(pts)
	if c.Labels != nil {
		ax.Add(NewPointLabels(c.PointX, c.PointY, c.Labels))
	}
	return fig, fig.saveIf(c.FileName, c.FileFormat)
}

// ContourVLines is a contour plot with vertical reference lines at the
// given x positions. A single color or style entry is broadcast over all
// lines.
type ContourVLines struct {
	Contour

	X0     []float64
	Colors []string
	Styles []string
}

// NewContourVLines returns a contour plot with vertical rules at x0.
func NewContourVLines(x, y []float64, z [][]float64, x0 []float64) *ContourVLines {
	return &ContourVLines{Contour: *NewContour(x, y, z), X0: x0}
}

func (c *ContourVLines) Draw() (*Figure, error) {
	fig, err := c.Contour.draw()
	if err != nil {
		return nil, err
	}
	ax := fig.Axes[0]
	colors := broadcast(c.Colors, len(c.X0), "")
	styles := broadcast(c.Styles, len(c.X0), "-")
	for i, x := range c.X0 {
		ax.Add(NewVertLine(x, colorOrDefault(colors[i], DefaultColor), styles[i]))
	}
	return fig, fig.saveIf(c.FileName, c.FileFormat)
}
